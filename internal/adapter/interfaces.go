// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the mindcraft processing service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to an [*APIError] that wraps one
// of the status sentinels in errors.go, so callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrNotFound] for 404) and [ErrorMessage]
// for the text shown to the user.
package adapter

import (
	"context"

	"github.com/MKhiriev/mindcraft-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource supplies the bearer credential attached to each request. It is
// read on every call so a credential change takes effect immediately.
type TokenSource interface {
	Token() string
}

// ServerAdapter defines transport-agnostic communication with the processing
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the values defined
// in this package.
type ServerAdapter interface {
	// SubmitPDF uploads a PDF as the multipart field "file" and enqueues it
	// for processing. The acknowledgment carries no data the client uses.
	SubmitPDF(ctx context.Context, upload models.PDFUpload) (models.ProcessingAck, error)

	// SubmitYoutube enqueues a YouTube link for download and transcription.
	SubmitYoutube(ctx context.Context, url string) (models.ProcessingAck, error)

	// ListDocuments returns the current user's documents. A null body yields
	// an empty, non-nil slice.
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// SemanticSearch runs a query against one document and returns the
	// response body verbatim.
	SemanticSearch(ctx context.Context, req models.SemanticSearchRequest) (models.SearchResult, error)

	// GetNotes fetches the notes artifact of a document.
	GetNotes(ctx context.Context, id models.DocumentID) (models.NotesArtifact, error)

	// GetQuiz fetches the quiz artifact of a document.
	GetQuiz(ctx context.Context, id models.DocumentID) (models.QuizArtifact, error)

	// GetFlashcards fetches the flashcard artifact of a document.
	GetFlashcards(ctx context.Context, id models.DocumentID) (models.FlashcardArtifact, error)

	// RecordAccuracy reports one quiz answer. Callers treat it as
	// fire-and-forget; the response body is ignored.
	RecordAccuracy(ctx context.Context, req models.AccuracyRequest) error
}
