// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/stretchr/testify/assert"
)

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Document{}), ErrUnsupportedType)
}

func TestRequestValidator_YoutubeRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		obj  any
		want error
	}{
		{name: "valid", obj: models.YoutubeRequest{URL: "https://youtu.be/abc"}, want: nil},
		{name: "valid pointer", obj: &models.YoutubeRequest{URL: "https://youtu.be/abc"}, want: nil},
		{name: "empty", obj: models.YoutubeRequest{URL: ""}, want: ErrEmptyURL},
		{name: "blank", obj: models.YoutubeRequest{URL: "   "}, want: ErrEmptyURL},
		{name: "unparsable", obj: models.YoutubeRequest{URL: "http://[::1"}, want: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequestValidator_PDFUpload(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PDFUpload{FileName: "a.pdf", Content: strings.NewReader("%PDF")}))
	assert.ErrorIs(t, v.Validate(ctx, models.PDFUpload{Content: strings.NewReader("%PDF")}), ErrEmptyFileName)
	assert.ErrorIs(t, v.Validate(ctx, &models.PDFUpload{FileName: "a.pdf"}), ErrEmptyContent)

	// scoped to the name only
	assert.NoError(t, v.Validate(ctx, models.PDFUpload{FileName: "a.pdf"}, FieldFileName))
}

func TestRequestValidator_SemanticSearchRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SemanticSearchRequest{DocumentID: "1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SemanticSearchRequest{Query: "x"}), ErrEmptyDocumentID)
}

func TestRequestValidator_AccuracyRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AccuracyRequest{UserID: "me", QuestionID: "mcq-0", Correct: true}))
	assert.NoError(t, v.Validate(ctx, models.AccuracyRequest{UserID: "me", QuestionID: "tf-12"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AccuracyRequest{QuestionID: "mcq-0"}), ErrEmptyUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.AccuracyRequest{UserID: "me", QuestionID: "q1"}), ErrInvalidQuestionID)
	assert.ErrorIs(t, v.Validate(ctx, models.AccuracyRequest{UserID: "me", QuestionID: ""}), ErrInvalidQuestionID)
}

func TestRequestValidator_UnknownField(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.YoutubeRequest{URL: "x"}, "title"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.AccuracyRequest{}, FieldURL), ErrUnknownField)
}
