package models

import (
	"bytes"
	"encoding/json"
)

// SemanticSearchRequest is the body of POST /semantic-search.
type SemanticSearchRequest struct {
	DocumentID DocumentID `json:"document_id"`
	Query      string     `json:"query"`
}

// SearchResult is the opaque semantic-search response. The client never
// interprets it; it is rendered verbatim.
type SearchResult struct {
	DocumentID DocumentID
	Query      string
	Raw        json.RawMessage
}

// Pretty returns the raw response indented with two spaces. When the raw
// bytes are not valid JSON they are returned unchanged.
func (r SearchResult) Pretty() string {
	var out bytes.Buffer
	if err := json.Indent(&out, r.Raw, "", "  "); err != nil {
		return string(r.Raw)
	}
	return out.String()
}
