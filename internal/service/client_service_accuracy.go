package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/utils"
	"github.com/MKhiriev/mindcraft-client/internal/validators"
	"github.com/MKhiriev/mindcraft-client/models"
)

// DefaultAccuracyUserID labels accuracy events when the credential carries no
// subject.
const DefaultAccuracyUserID = "me"

type clientAccuracyRecorder struct {
	serverAdapter adapter.ServerAdapter
	tokens        adapter.TokenSource
	validator     validators.Validator
	logger        *logger.Logger

	ctx context.Context
	wg  sync.WaitGroup
}

// NewClientAccuracyRecorder creates a [ClientAccuracyRecorder]. Every event
// runs under ctx; cancelling it aborts outstanding requests.
func NewClientAccuracyRecorder(ctx context.Context, serverAdapter adapter.ServerAdapter, tokens adapter.TokenSource, logger *logger.Logger) ClientAccuracyRecorder {
	return &clientAccuracyRecorder{
		serverAdapter: serverAdapter,
		tokens:        tokens,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
		ctx:           ctx,
	}
}

// Record implements [ClientAccuracyRecorder]. The request is detached from
// the caller: it neither blocks nor reports back, and its ordering relative
// to other events is not guaranteed.
func (r *clientAccuracyRecorder) Record(questionID string, correct bool) {
	req := models.AccuracyRequest{
		UserID:     r.userID(),
		QuestionID: questionID,
		Correct:    correct,
	}
	if err := r.validator.Validate(r.ctx, req); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "clientAccuracyRecorder.Record").
			Str("question_id", questionID).
			Msg("accuracy event skipped")
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		if err := r.serverAdapter.RecordAccuracy(r.ctx, req); err != nil {
			r.logger.Warn().Err(err).
				Str("func", "clientAccuracyRecorder.Record").
				Str("question_id", req.QuestionID).
				Msg("accuracy event dropped")
		}
	}()
}

// Wait implements [ClientAccuracyRecorder].
func (r *clientAccuracyRecorder) Wait() {
	r.wg.Wait()
}

func (r *clientAccuracyRecorder) userID() string {
	if r.tokens == nil {
		return DefaultAccuracyUserID
	}
	sub, err := utils.SubjectFromToken(r.tokens.Token())
	if err != nil {
		return DefaultAccuracyUserID
	}
	return sub
}
