package service

import (
	"context"
	"time"

	"github.com/MKhiriev/mindcraft-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService holds the bearer credential for the running process.
// It satisfies adapter.TokenSource.
type ClientSessionService interface {
	// Token returns the current credential, possibly empty.
	Token() string

	// SetToken replaces the credential. A non-empty value is persisted so the
	// next process start loads it; an empty value only clears memory.
	SetToken(ctx context.Context, token string) error
}

// ClientSubmissionService enqueues documents for processing.
type ClientSubmissionService interface {
	// SubmitPDF opens the file at path, checks that it is a PDF, and uploads
	// it. Returns [ErrEmptyPDFPath], [ErrNotPDF] or a wrapped adapter error.
	SubmitPDF(ctx context.Context, path string) error

	// SubmitYoutube enqueues a YouTube link. Returns [ErrEmptyYoutubeURL] or a
	// wrapped adapter error.
	SubmitYoutube(ctx context.Context, url string) error
}

// ClientDocumentService reads the document list and runs searches. Both
// operations are best-effort: failures are logged and degrade to an empty
// list or to no result.
type ClientDocumentService interface {
	// List returns the user's documents, or an empty slice on any failure.
	List(ctx context.Context) []models.Document

	// Search queries one document. ok is false when the search failed.
	Search(ctx context.Context, id models.DocumentID, query string) (result models.SearchResult, ok bool)
}

// ClientArtifactService fetches the generated artifacts of a document.
type ClientArtifactService interface {
	Notes(ctx context.Context, id models.DocumentID) (models.NotesArtifact, error)
	Quiz(ctx context.Context, id models.DocumentID) (models.QuizArtifact, error)
	Flashcards(ctx context.Context, id models.DocumentID) (models.FlashcardArtifact, error)
}

// ClientAccuracyRecorder mirrors quiz answers to the service without
// blocking the caller.
type ClientAccuracyRecorder interface {
	// Record sends one answer outcome on a detached goroutine. Its result is
	// logged and otherwise discarded.
	Record(questionID string, correct bool)

	// Wait blocks until every event started so far has finished.
	Wait()
}

// DocumentRefreshJob periodically re-lists documents while the dashboard is
// open.
type DocumentRefreshJob interface {
	// Start launches the background goroutine calling onRefresh with a fresh
	// list every interval. A non-positive interval leaves the job idle. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration, onRefresh func([]models.Document))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
