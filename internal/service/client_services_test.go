package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_WiresEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	svcs := NewClientServices(context.Background(), session, serverAdapter, logger.Nop())

	assert.Same(t, session, svcs.Session)
	assert.NotNil(t, svcs.SubmissionService)
	assert.NotNil(t, svcs.DocumentService)
	assert.NotNil(t, svcs.ArtifactService)
	assert.NotNil(t, svcs.AccuracyRecorder)
	assert.NotNil(t, svcs.RefreshJob)
}
