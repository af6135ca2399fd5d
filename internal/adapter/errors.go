package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels wrapped by [*APIError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// GenericErrorMessage is shown when a failure carries no server detail.
const GenericErrorMessage = "Error"

// APIError is a non-2xx response from the processing service.
type APIError struct {
	StatusCode int
	// Detail is the "detail" field of the JSON error body, if any.
	Detail string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.sentinel)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.sentinel, e.Detail)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// ErrorMessage extracts the user-facing message from err: the server's
// detail when there is one, otherwise [GenericErrorMessage]. Transport
// failures without a response also produce the generic message. The result
// is never empty.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return GenericErrorMessage
}
