package tui

import (
	"github.com/MKhiriev/mindcraft-client/internal/state"
	"github.com/MKhiriev/mindcraft-client/models"
)

type submitDoneMsg struct {
	kind state.SubmissionKind
	err  error
}

type documentsLoadedMsg struct {
	documents []models.Document
}

type searchDoneMsg struct {
	result models.SearchResult
	ok     bool
}

type notesLoadedMsg struct {
	notes models.NotesArtifact
	err   error
}

type quizLoadedMsg struct {
	quiz models.QuizArtifact
	err  error
}

type flashcardsLoadedMsg struct {
	deck models.FlashcardArtifact
	err  error
}

type notesExportedMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}

type documentsRefreshedMsg struct {
	documents []models.Document
}
