package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyURL          = errors.New("url is required")
	ErrInvalidURL        = errors.New("invalid url")
	ErrEmptyFileName     = errors.New("file name is required")
	ErrEmptyContent      = errors.New("file content is required")
	ErrEmptyDocumentID   = errors.New("document id is required")
	ErrEmptyUserID       = errors.New("user id is required")
	ErrInvalidQuestionID = errors.New("invalid question id")
)
