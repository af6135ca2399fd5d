// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DocumentType names the kind of source a document was ingested from.
// The backend is free to send other values; they are carried verbatim.
type DocumentType string

const (
	// DocumentTypePDF marks a document created from an uploaded PDF file.
	DocumentTypePDF DocumentType = "pdf"
	// DocumentTypeYoutube marks a document created from a YouTube link.
	DocumentTypeYoutube DocumentType = "youtube"
)

// DocumentID is the backend-assigned document identifier. The backend may
// encode it either as a JSON string or as a JSON number; both decode into the
// same textual form so it can be used as a route segment.
type DocumentID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *DocumentID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode document id: %w", err)
		}
		*id = DocumentID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode document id: %w", err)
	}
	*id = DocumentID(n.String())
	return nil
}

// String returns the identifier as plain text.
func (id DocumentID) String() string {
	return string(id)
}

// Document is the read-only client copy of a user-submitted source tracked
// by the backend. Processing status is not part of the payload: a document is
// observed as "ready" only through the content of its artifact endpoints.
type Document struct {
	ID    DocumentID   `json:"id"`
	Title string       `json:"title"`
	Type  DocumentType `json:"type"`
}
