package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NotesArtifact is the structured notes generated for one document.
type NotesArtifact struct {
	// Text is the notes body. A non-string notes_json value is carried as
	// its indented JSON text.
	Text string
}

// UnmarshalJSON implements [json.Unmarshaler]. An empty object decodes into
// empty notes.
func (n *NotesArtifact) UnmarshalJSON(b []byte) error {
	var wire struct {
		NotesJSON json.RawMessage `json:"notes_json"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	n.Text = ""
	if isAbsent(wire.NotesJSON) {
		return nil
	}

	var s string
	if err := json.Unmarshal(wire.NotesJSON, &s); err == nil {
		n.Text = s
		return nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, wire.NotesJSON, "", "  "); err != nil {
		n.Text = string(wire.NotesJSON)
		return nil
	}
	n.Text = out.String()
	return nil
}

// Empty reports whether there is nothing to show yet.
func (n NotesArtifact) Empty() bool {
	return strings.TrimSpace(n.Text) == ""
}
