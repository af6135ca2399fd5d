package service

import (
	"context"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/models"
)

type clientArtifactService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

// NewClientArtifactService creates a [ClientArtifactService] backed by
// serverAdapter. Errors are logged at warn level and returned so the view can
// fall back to its placeholder.
func NewClientArtifactService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientArtifactService {
	return &clientArtifactService{serverAdapter: serverAdapter, logger: logger}
}

func (c *clientArtifactService) Notes(ctx context.Context, id models.DocumentID) (models.NotesArtifact, error) {
	notes, err := c.serverAdapter.GetNotes(ctx, id)
	if err != nil {
		c.warn(err, "clientArtifactService.Notes", id)
		return models.NotesArtifact{}, err
	}
	return notes, nil
}

func (c *clientArtifactService) Quiz(ctx context.Context, id models.DocumentID) (models.QuizArtifact, error) {
	quiz, err := c.serverAdapter.GetQuiz(ctx, id)
	if err != nil {
		c.warn(err, "clientArtifactService.Quiz", id)
		return models.QuizArtifact{MCQs: []models.MCQ{}, TrueFalses: []models.TrueFalse{}}, err
	}
	return quiz, nil
}

func (c *clientArtifactService) Flashcards(ctx context.Context, id models.DocumentID) (models.FlashcardArtifact, error) {
	deck, err := c.serverAdapter.GetFlashcards(ctx, id)
	if err != nil {
		c.warn(err, "clientArtifactService.Flashcards", id)
		return models.FlashcardArtifact{Cards: []models.Flashcard{}}, err
	}
	return deck, nil
}

func (c *clientArtifactService) warn(err error, fn string, id models.DocumentID) {
	c.logger.Warn().Err(err).
		Str("func", fn).
		Str("document_id", id.String()).
		Msg("fetching artifact failed")
}
