package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// NotesPlaceholder is shown while notes are loading or still empty.
const NotesPlaceholder = "Generating..."

// pageChromeHeight is the number of lines taken by the title bar and the
// page frame around scrollable content.
const pageChromeHeight = 14

const statusTimeout = 2 * time.Second

// NotesModel shows the structured notes of one document in a scrollable
// viewport. Notes can be copied to the clipboard or exported as HTML.
type NotesModel struct {
	ctx       context.Context
	artifacts service.ClientArtifactService
	id        models.DocumentID
	exportDir string

	notes    models.NotesArtifact
	viewport viewport.Model
	status   string
	errMsg   string

	copyToClipboard func(string) error
}

// NewNotesModel creates a [NotesModel] for document id. Exports are written
// into exportDir.
func NewNotesModel(ctx context.Context, artifacts service.ClientArtifactService, id models.DocumentID, exportDir string) *NotesModel {
	vp := viewport.New(80, 20)
	vp.SetContent(NotesPlaceholder)

	return &NotesModel{
		ctx:             ctx,
		artifacts:       artifacts,
		id:              id,
		exportDir:       exportDir,
		viewport:        vp,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init implements [tea.Model]. Fetches the notes once.
func (m *NotesModel) Init() tea.Cmd {
	ctx := m.ctx
	artifacts := m.artifacts
	id := m.id

	return func() tea.Msg {
		notes, err := artifacts.Notes(ctx, id)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.notes = msg.notes
		m.viewport.SetContent(m.Text())
		m.viewport.GotoTop()
		return m, nil
	case notesExportedMsg:
		if msg.err != nil {
			m.errMsg = "Export failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Saved to " + msg.path
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.viewport.Width = max(20, msg.Width-6)
		m.viewport.Height = max(5, msg.Height-pageChromeHeight)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateCmd(RouteDashboard)
		case key.Matches(msg, keys.copy):
			if m.notes.Empty() {
				m.status = "Nothing to copy"
				return m, cmdClearStatus()
			}
			if err := m.copyToClipboard(m.notes.Text); err != nil {
				m.errMsg = "Copy failed: " + err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.status = "Copied"
			return m, cmdClearStatus()
		case key.Matches(msg, keys.export):
			if m.notes.Empty() {
				m.status = "Nothing to export"
				return m, cmdClearStatus()
			}
			return m, m.cmdExport()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *NotesModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("STRUCTURED NOTES", b.String(), "↑/↓: scroll │ c: copy │ e: export html │ esc: documents")
}

// Text is what the notes view shows: the notes body or the placeholder.
func (m *NotesModel) Text() string {
	if m.notes.Empty() {
		return NotesPlaceholder
	}
	return m.notes.Text
}

func (m *NotesModel) cmdExport() tea.Cmd {
	dir := m.exportDir
	id := m.id
	text := m.notes.Text

	return func() tea.Msg {
		path, err := exportNotes(dir, id, text)
		return notesExportedMsg{path: path, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
