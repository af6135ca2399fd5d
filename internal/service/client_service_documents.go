package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/validators"
	"github.com/MKhiriev/mindcraft-client/models"
)

type clientDocumentService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	logger        *logger.Logger
}

// NewClientDocumentService creates a [ClientDocumentService] backed by
// serverAdapter.
func NewClientDocumentService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDocumentService {
	return &clientDocumentService{
		serverAdapter: serverAdapter,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

func (c *clientDocumentService) List(ctx context.Context) []models.Document {
	docs, err := c.serverAdapter.ListDocuments(ctx)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "clientDocumentService.List").
			Msg("listing documents failed, showing empty list")
		return []models.Document{}
	}
	if docs == nil {
		return []models.Document{}
	}

	return docs
}

func (c *clientDocumentService) Search(ctx context.Context, id models.DocumentID, query string) (models.SearchResult, bool) {
	req := models.SemanticSearchRequest{
		DocumentID: id,
		Query:      query,
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		c.logger.Warn().Err(err).
			Str("func", "clientDocumentService.Search").
			Msg("semantic search skipped")
		return models.SearchResult{}, false
	}

	res, err := c.serverAdapter.SemanticSearch(ctx, req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "clientDocumentService.Search").
			Str("document_id", id.String()).
			Int("query_len", len(strings.TrimSpace(query))).
			Msg("semantic search failed")
		return models.SearchResult{}, false
	}

	return res, true
}
