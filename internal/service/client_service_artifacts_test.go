package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/mock"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestArtifactSvc(t *testing.T) (ClientArtifactService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientArtifactService(mockAdapter, logger.Nop()), mockAdapter
}

func TestClientArtifactService_Notes(t *testing.T) {
	svc, mockAdapter := newTestArtifactSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().GetNotes(ctx, models.DocumentID("7")).Return(models.NotesArtifact{Text: "# Notes"}, nil)

	notes, err := svc.Notes(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "# Notes", notes.Text)
}

func TestClientArtifactService_Notes_Error(t *testing.T) {
	svc, mockAdapter := newTestArtifactSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().GetNotes(ctx, models.DocumentID("7")).Return(models.NotesArtifact{Text: "stale"}, assert.AnError)

	notes, err := svc.Notes(ctx, "7")
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, notes.Empty())
}

func TestClientArtifactService_Quiz_ErrorYieldsEmptySequences(t *testing.T) {
	svc, mockAdapter := newTestArtifactSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().GetQuiz(ctx, models.DocumentID("7")).Return(models.QuizArtifact{}, assert.AnError)

	quiz, err := svc.Quiz(ctx, "7")
	assert.Error(t, err)
	assert.NotNil(t, quiz.MCQs)
	assert.NotNil(t, quiz.TrueFalses)
}

func TestClientArtifactService_Flashcards(t *testing.T) {
	svc, mockAdapter := newTestArtifactSvc(t)
	ctx := context.Background()
	deck := models.FlashcardArtifact{Cards: []models.Flashcard{{Front: "Q", Back: "A"}}}

	mockAdapter.EXPECT().GetFlashcards(ctx, models.DocumentID("7")).Return(deck, nil)

	got, err := svc.Flashcards(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, deck, got)
}

func TestClientArtifactService_Flashcards_Error(t *testing.T) {
	svc, mockAdapter := newTestArtifactSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().GetFlashcards(ctx, models.DocumentID("7")).Return(models.FlashcardArtifact{}, assert.AnError)

	got, err := svc.Flashcards(ctx, "7")
	assert.Error(t, err)
	assert.NotNil(t, got.Cards)
	assert.Empty(t, got.Cards)
}
