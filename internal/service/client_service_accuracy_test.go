package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/mock"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedToken string

func (f fixedToken) Token() string { return string(f) }

func TestClientAccuracyRecorder_UsesTokenSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-7"}).
		SignedString([]byte("k"))
	require.NoError(t, err)

	mockAdapter.EXPECT().
		RecordAccuracy(ctx, models.AccuracyRequest{UserID: "user-7", QuestionID: "mcq-0", Correct: true}).
		Return(nil)

	rec := NewClientAccuracyRecorder(ctx, mockAdapter, fixedToken(token), logger.Nop())
	rec.Record("mcq-0", true)
	rec.Wait()
}

func TestClientAccuracyRecorder_FallsBackToMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		RecordAccuracy(ctx, models.AccuracyRequest{UserID: DefaultAccuracyUserID, QuestionID: "tf-1", Correct: false}).
		Return(nil)

	rec := NewClientAccuracyRecorder(ctx, mockAdapter, fixedToken("opaque"), logger.Nop())
	rec.Record("tf-1", false)
	rec.Wait()
}

func TestClientAccuracyRecorder_FailureIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().RecordAccuracy(ctx, gomock.Any()).Return(assert.AnError).Times(2)

	rec := NewClientAccuracyRecorder(ctx, mockAdapter, nil, logger.Nop())
	assert.NotPanics(t, func() {
		rec.Record("mcq-0", true)
		rec.Record("mcq-0", false)
		rec.Wait()
	})
}

func TestClientAccuracyRecorder_DoesNotBlockCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	release := make(chan struct{})
	mockAdapter.EXPECT().RecordAccuracy(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.AccuracyRequest) error {
			<-release
			return nil
		},
	)

	rec := NewClientAccuracyRecorder(ctx, mockAdapter, nil, logger.Nop())
	// Record must return while the request is still blocked
	rec.Record("mcq-3", true)
	close(release)
	rec.Wait()
}

func TestClientAccuracyRecorder_InvalidQuestionIDIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	rec := NewClientAccuracyRecorder(context.Background(), mockAdapter, nil, logger.Nop())
	rec.Record("question", true)
	rec.Wait()
}
