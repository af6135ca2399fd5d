package tui

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/yuin/goldmark"
)

var notesPageTemplate = template.Must(template.New("notes").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))

// renderNotesHTML converts markdown notes to HTML using goldmark. Text that
// goldmark rejects is escaped and kept verbatim.
func renderNotesHTML(notes string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(notes), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(notes) + "</pre>")
	}
	return template.HTML(buf.String())
}

// notesFileName is the export file name for document id. Characters that are
// unsafe in file names are replaced.
func notesFileName(id models.DocumentID) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, id.String())
	return "notes-" + safe + ".html"
}

// exportNotes writes the notes of document id as a standalone HTML page into
// dir and returns the file path.
func exportNotes(dir string, id models.DocumentID, notes string) (string, error) {
	var page bytes.Buffer
	err := notesPageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: "Structured Notes " + id.String(),
		Body:  renderNotesHTML(notes),
	})
	if err != nil {
		return "", fmt.Errorf("render notes page: %w", err)
	}

	path := filepath.Join(dir, notesFileName(id))
	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write notes page: %w", err)
	}
	return path, nil
}
