// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/mindcraft-client/internal/mock"
	"github.com/MKhiriev/mindcraft-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const quizBody = `{
	"mcqs_json": [
		{"question": "2+2?", "options": ["3", "4"], "answer": "4", "explanation": "basic arithmetic"}
	],
	"tf_json": [
		{"statement": "Water is wet", "answer": "true", "reason": "it is"}
	]
}`

func newTestQuiz(t *testing.T, body string) (*QuizModel, *mock.MockClientAccuracyRecorder) {
	t.Helper()
	var quiz models.QuizArtifact
	require.NoError(t, json.Unmarshal([]byte(body), &quiz))

	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockClientArtifactService(ctrl)
	accuracy := mock.NewMockClientAccuracyRecorder(ctrl)
	artifacts.EXPECT().Quiz(gomock.Any(), models.DocumentID("9")).Return(quiz, nil).Times(1)

	m := NewQuizModel(context.Background(), artifacts, accuracy, "9")
	assert.Contains(t, m.View(), "Loading...")

	msgs := runCmd(m.Init())
	require.Len(t, msgs, 1)
	_, _ = m.Update(msgs[0])
	return m, accuracy
}

func TestQuizModel_Renders(t *testing.T) {
	m, _ := newTestQuiz(t, quizBody)
	view := m.View()

	for _, want := range []string{"2+2?", "3", "4", "basic arithmetic", "Water is wet", "True", "False", "it is"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Correct")
}

func TestQuizModel_AnswerRecordsAndReports(t *testing.T) {
	m, accuracy := newTestQuiz(t, quizBody)
	gomock.InOrder(
		accuracy.EXPECT().Record("mcq-0", false),
		accuracy.EXPECT().Record("mcq-0", true),
		accuracy.EXPECT().Record("tf-0", true),
	)

	// first option "3" is wrong
	_, _ = m.Update(keyType(tea.KeyEnter))
	correct, answered := m.Quiz().Recorded("mcq-0")
	assert.True(t, answered)
	assert.False(t, correct)
	assert.Contains(t, m.View(), "Incorrect")

	// re-answer with "4" overwrites
	_, _ = m.Update(keyType(tea.KeyDown))
	_, _ = m.Update(keyRunes(" "))
	correct, _ = m.Quiz().Recorded("mcq-0")
	assert.True(t, correct)

	// rows 2 and 3 are the True/False labels of the statement
	_, _ = m.Update(keyType(tea.KeyDown))
	_, _ = m.Update(keyType(tea.KeyEnter))
	correct, answered = m.Quiz().Recorded("tf-0")
	assert.True(t, answered)
	assert.True(t, correct)
}

func TestQuizModel_CursorStaysInRange(t *testing.T) {
	m, _ := newTestQuiz(t, quizBody)

	_, _ = m.Update(keyType(tea.KeyUp))
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		_, _ = m.Update(keyType(tea.KeyDown))
	}
	assert.Equal(t, len(m.rows)-1, m.cursor)
	assert.Len(t, m.rows, 4)
}

func TestQuizModel_EmptyQuiz(t *testing.T) {
	m, _ := newTestQuiz(t, `{}`)

	// no rows: answering must not reach the recorder
	_, _ = m.Update(keyType(tea.KeyEnter))

	assert.Contains(t, m.View(), "No questions yet")
	assert.Empty(t, m.Quiz().Answers())
}

func TestQuizModel_QuestionWithoutOptions(t *testing.T) {
	m, _ := newTestQuiz(t, `{"mcqs_json": [{"answer": "x"}]}`)

	assert.Empty(t, m.rows)
	assert.Contains(t, m.View(), "Q1")
}

func TestQuizModel_LoadFailureRendersEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockClientArtifactService(ctrl)
	artifacts.EXPECT().Quiz(gomock.Any(), models.DocumentID("9")).
		Return(models.QuizArtifact{MCQs: []models.MCQ{}, TrueFalses: []models.TrueFalse{}}, errors.New("boom"))

	m := NewQuizModel(context.Background(), artifacts, nil, "9")
	for _, msg := range runCmd(m.Init()) {
		_, _ = m.Update(msg)
	}

	assert.Contains(t, m.View(), "No questions yet")
}

func TestQuizModel_EscBackToDashboard(t *testing.T) {
	m, _ := newTestQuiz(t, quizBody)

	_, cmd := m.Update(keyType(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Path: RouteDashboard}, cmd())
}
