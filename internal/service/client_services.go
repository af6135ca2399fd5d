package service

import (
	"context"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
)

// ClientServices aggregates the services used by the terminal UI.
type ClientServices struct {
	Session           ClientSessionService
	SubmissionService ClientSubmissionService
	DocumentService   ClientDocumentService
	ArtifactService   ClientArtifactService
	AccuracyRecorder  ClientAccuracyRecorder
	RefreshJob        DocumentRefreshJob
}

// NewClientServices wires every client service to serverAdapter. session is
// the credential holder that serverAdapter reads its token from.
func NewClientServices(ctx context.Context, session ClientSessionService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	documentSvc := NewClientDocumentService(serverAdapter, logger)

	return &ClientServices{
		Session:           session,
		SubmissionService: NewClientSubmissionService(serverAdapter, logger),
		DocumentService:   documentSvc,
		ArtifactService:   NewClientArtifactService(serverAdapter, logger),
		AccuracyRecorder:  NewClientAccuracyRecorder(ctx, serverAdapter, session, logger),
		RefreshJob:        NewDocumentRefreshJob(documentSvc),
	}
}
