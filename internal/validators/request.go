package validators

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/mindcraft-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldURL targets the link of a YouTube submission.
	FieldURL = "url"

	// FieldFileName targets the name of an uploaded file.
	FieldFileName = "file_name"

	// FieldContent targets the body reader of an uploaded file.
	FieldContent = "content"

	// FieldDocumentID targets the document a search or artifact refers to.
	FieldDocumentID = "document_id"

	// FieldUserID targets the user an accuracy event is attributed to.
	FieldUserID = "user_id"

	// FieldQuestionID targets the question key of an accuracy event.
	FieldQuestionID = "question_id"
)

// questionIDPattern matches the keys assigned by the quiz view.
var questionIDPattern = regexp.MustCompile(`^(mcq|tf)-\d+$`)

// RequestValidator validates the request models sent to the processing
// service.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.YoutubeRequest:
		return v.validateYoutubeRequest(ctx, value, fields...)
	case *models.YoutubeRequest:
		return v.validateYoutubeRequest(ctx, *value, fields...)

	case models.PDFUpload:
		return v.validatePDFUpload(ctx, value, fields...)
	case *models.PDFUpload:
		return v.validatePDFUpload(ctx, *value, fields...)

	case models.SemanticSearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SemanticSearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case models.AccuracyRequest:
		return v.validateAccuracyRequest(ctx, value, fields...)
	case *models.AccuracyRequest:
		return v.validateAccuracyRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateYoutubeRequest only requires a link that parses. Whether it points
// at a video is decided by the service.
func (v *RequestValidator) validateYoutubeRequest(_ context.Context, request models.YoutubeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			raw := strings.TrimSpace(request.URL)
			if raw == "" {
				return ErrEmptyURL
			}
			if _, err := url.Parse(raw); err != nil {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePDFUpload(_ context.Context, upload models.PDFUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(upload.FileName) == "" {
				return ErrEmptyFileName
			}
		case FieldContent:
			if upload.Content == nil {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSearchRequest accepts an empty query; the service decides what an
// empty search returns.
func (v *RequestValidator) validateSearchRequest(_ context.Context, request models.SemanticSearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDocumentID}
	}

	for _, f := range fields {
		switch f {
		case FieldDocumentID:
			if strings.TrimSpace(request.DocumentID.String()) == "" {
				return ErrEmptyDocumentID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAccuracyRequest(_ context.Context, request models.AccuracyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldQuestionID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(request.UserID) == "" {
				return ErrEmptyUserID
			}
		case FieldQuestionID:
			if !questionIDPattern.MatchString(request.QuestionID) {
				return ErrInvalidQuestionID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
