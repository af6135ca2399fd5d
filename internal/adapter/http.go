package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/mindcraft-client/internal/config"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/utils"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and the
// optional request timeout. The bearer credential is read from tokens on
// every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		tokens: tokens,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SubmitPDF implements [ServerAdapter]. It POSTs upload.Content as the
// multipart field "file" to POST /process-pdf.
func (h *httpServerAdapter) SubmitPDF(ctx context.Context, upload models.PDFUpload) (models.ProcessingAck, error) {
	resp, err := h.authedRequest(ctx).
		SetFileReader("file", upload.FileName, upload.Content).
		Post("/process-pdf")
	if err != nil {
		return models.ProcessingAck{}, fmt.Errorf("submit pdf request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProcessingAck{}, err
	}

	return models.ProcessingAck{Raw: resp.Body()}, nil
}

// SubmitYoutube implements [ServerAdapter]. It POSTs {"url": ...} to
// POST /process-youtube.
func (h *httpServerAdapter) SubmitYoutube(ctx context.Context, url string) (models.ProcessingAck, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.YoutubeRequest{URL: url}).
		Post("/process-youtube")
	if err != nil {
		return models.ProcessingAck{}, fmt.Errorf("submit youtube request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProcessingAck{}, err
	}

	return models.ProcessingAck{Raw: resp.Body()}, nil
}

// ListDocuments implements [ServerAdapter]. It GETs /user/documents.
func (h *httpServerAdapter) ListDocuments(ctx context.Context) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get("/user/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []models.Document
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}
	if docs == nil {
		docs = []models.Document{}
	}

	return docs, nil
}

// SemanticSearch implements [ServerAdapter]. It POSTs the query to
// POST /semantic-search and keeps the response body as raw JSON.
func (h *httpServerAdapter) SemanticSearch(ctx context.Context, req models.SemanticSearchRequest) (models.SearchResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/semantic-search")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("semantic search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	return models.SearchResult{
		DocumentID: req.DocumentID,
		Query:      req.Query,
		Raw:        json.RawMessage(resp.Body()),
	}, nil
}

// GetNotes implements [ServerAdapter]. It GETs /notes/{id}.
func (h *httpServerAdapter) GetNotes(ctx context.Context, id models.DocumentID) (models.NotesArtifact, error) {
	var notes models.NotesArtifact
	if err := h.getArtifact(ctx, "/notes/{id}", id, &notes); err != nil {
		return models.NotesArtifact{}, fmt.Errorf("get notes: %w", err)
	}
	return notes, nil
}

// GetQuiz implements [ServerAdapter]. It GETs /quizzes/{id}.
func (h *httpServerAdapter) GetQuiz(ctx context.Context, id models.DocumentID) (models.QuizArtifact, error) {
	var quiz models.QuizArtifact
	if err := h.getArtifact(ctx, "/quizzes/{id}", id, &quiz); err != nil {
		return models.QuizArtifact{}, fmt.Errorf("get quiz: %w", err)
	}
	return quiz, nil
}

// GetFlashcards implements [ServerAdapter]. It GETs /flashcards/{id}.
func (h *httpServerAdapter) GetFlashcards(ctx context.Context, id models.DocumentID) (models.FlashcardArtifact, error) {
	var deck models.FlashcardArtifact
	if err := h.getArtifact(ctx, "/flashcards/{id}", id, &deck); err != nil {
		return models.FlashcardArtifact{}, fmt.Errorf("get flashcards: %w", err)
	}
	return deck, nil
}

// RecordAccuracy implements [ServerAdapter]. It POSTs one answer outcome to
// POST /accuracy.
func (h *httpServerAdapter) RecordAccuracy(ctx context.Context, req models.AccuracyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/accuracy")
	if err != nil {
		return fmt.Errorf("record accuracy request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) getArtifact(ctx context.Context, path string, id models.DocumentID, out any) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// authedRequest builds every outgoing request. The Authorization header is
// always sent, even with an empty credential; the service decides.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	requestID := h.ids.Generate()
	h.logger.Debug().
		Str("func", "httpServerAdapter.authedRequest").
		Str("request_id", requestID).
		Msg("outgoing request")

	token := ""
	if h.tokens != nil {
		token = h.tokens.Token()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader(RequestIDHeader, requestID)
}
