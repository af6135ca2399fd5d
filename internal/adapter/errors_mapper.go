package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     extractDetail(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.sentinel = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.sentinel = ErrForbidden
	case http.StatusNotFound:
		apiErr.sentinel = ErrNotFound
	case http.StatusConflict:
		apiErr.sentinel = ErrConflict
	case http.StatusUnprocessableEntity:
		apiErr.sentinel = ErrUnprocessable
	case http.StatusBadGateway:
		apiErr.sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		apiErr.sentinel = ErrInternalServerError
	default:
		apiErr.sentinel = ErrUnexpectedStatus
	}

	return apiErr
}

// extractDetail reads the "detail" field of a JSON error body. A string is
// returned as is; any other non-null value is returned as compact JSON text.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return ""
	}
	return compact.String()
}
