package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel lists the user's documents and runs semantic searches
// against the selected one. The query input is shared by all documents.
type DashboardModel struct {
	ctx             context.Context
	documents       service.ClientDocumentService
	refreshJob      service.DocumentRefreshJob
	refreshInterval time.Duration

	items   []models.Document
	idx     int
	loading bool

	query     textinput.Model
	typing    bool
	searching bool
	result    models.SearchResult
	hasResult bool

	refreshCh chan []models.Document
	closeOnce sync.Once
}

// NewDashboardModel creates a [DashboardModel]. A positive refreshInterval
// re-lists documents in the background while the page is mounted.
func NewDashboardModel(ctx context.Context, documents service.ClientDocumentService, refreshJob service.DocumentRefreshJob, refreshInterval time.Duration) *DashboardModel {
	query := textinput.New()
	query.Placeholder = "Semantic search query"
	query.CharLimit = 512
	query.Width = 50

	return &DashboardModel{
		ctx:             ctx,
		documents:       documents,
		refreshJob:      refreshJob,
		refreshInterval: refreshInterval,
		loading:         true,
		query:           query,
	}
}

// Init implements [tea.Model]. Issues the single initial list request and
// starts the refresh job when enabled.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.startRefresh())
}

// CapturesText reports whether the query input is focused.
func (m *DashboardModel) CapturesText() bool {
	return m.typing
}

// Close stops the refresh job. Safe to call more than once.
func (m *DashboardModel) Close() {
	m.closeOnce.Do(func() {
		if m.refreshCh == nil {
			return
		}
		m.refreshJob.Stop()
		close(m.refreshCh)
	})
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		m.loading = false
		m.setItems(msg.documents)
		return m, nil
	case documentsRefreshedMsg:
		m.setItems(msg.documents)
		return m, waitForRefresh(m.refreshCh)
	case searchDoneMsg:
		m.searching = false
		m.result = msg.result
		m.hasResult = msg.ok
		return m, nil
	case tea.KeyMsg:
		if m.typing {
			return m.updateQuery(msg)
		}
		return m.updateList(msg)
	}

	if m.typing {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.typing = false
		m.query.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.typing = false
		m.query.Blur()
		return m, m.search()
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *DashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.editQuery):
		m.typing = true
		return m, m.query.Focus()
	case key.Matches(msg, keys.search):
		return m, m.search()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.notes):
		return m, m.open(NotesPath)
	case key.Matches(msg, keys.quiz):
		return m, m.open(QuizPath)
	case key.Matches(msg, keys.flashcards):
		return m, m.open(FlashcardsPath)
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No documents yet\n")
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\nSearch: [")
	b.WriteString(m.query.View())
	b.WriteString("]\n")

	if m.searching {
		b.WriteString(statusStyle.Render("Searching..."))
		b.WriteString("\n")
	}
	if m.hasResult {
		b.WriteString("\nResult for document ")
		b.WriteString(m.result.DocumentID.String())
		b.WriteString(":\n")
		b.WriteString(m.result.Pretty())
		b.WriteString("\n")
	}

	return renderPage("DOCUMENTS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ n: notes │ q: quiz │ f: flashcards │ /: edit query │ s: search │ r: refresh")
}

func (m *DashboardModel) renderTable() string {
	titleWidth := lipgloss.Width("Title")
	for _, d := range m.items {
		if w := lipgloss.Width(fitText(valueOrDash(d.Title), 48)); w > titleWidth {
			titleWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-*s │ %s\n", titleWidth, "Title", "Type"))
	b.WriteString(strings.Repeat("─", titleWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 10))
	b.WriteString("\n")

	for i, d := range m.items {
		title := fitText(valueOrDash(d.Title), 48)
		b.WriteString(fmt.Sprintf("%s %-*s │ %s\n", cursorMark(i == m.idx), titleWidth, title, valueOrDash(string(d.Type))))
	}
	return b.String()
}

// Selected returns the document under the cursor.
func (m *DashboardModel) Selected() (models.Document, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Document{}, false
	}
	return m.items[m.idx], true
}

func (m *DashboardModel) setItems(items []models.Document) {
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *DashboardModel) open(path func(models.DocumentID) string) tea.Cmd {
	doc, ok := m.Selected()
	if !ok {
		return nil
	}
	return navigateCmd(path(doc.ID))
}

// search queries the selected document with the query text as it is now.
func (m *DashboardModel) search() tea.Cmd {
	doc, ok := m.Selected()
	if !ok {
		return nil
	}
	m.searching = true
	return m.cmdSearch(doc.ID, m.query.Value())
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	documents := m.documents

	return func() tea.Msg {
		return documentsLoadedMsg{documents: documents.List(ctx)}
	}
}

func (m *DashboardModel) cmdSearch(id models.DocumentID, query string) tea.Cmd {
	ctx := m.ctx
	documents := m.documents

	return func() tea.Msg {
		result, ok := documents.Search(ctx, id, query)
		return searchDoneMsg{result: result, ok: ok}
	}
}

func (m *DashboardModel) startRefresh() tea.Cmd {
	if m.refreshJob == nil || m.refreshInterval <= 0 {
		return nil
	}

	ch := make(chan []models.Document, 1)
	m.refreshCh = ch
	m.refreshJob.Start(m.ctx, m.refreshInterval, func(docs []models.Document) {
		select {
		case ch <- docs:
		default:
		}
	})
	return waitForRefresh(ch)
}

// waitForRefresh blocks until the refresh job delivers a list. It yields
// nothing once the channel is closed.
func waitForRefresh(ch <-chan []models.Document) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		docs, ok := <-ch
		if !ok {
			return nil
		}
		return documentsRefreshedMsg{documents: docs}
	}
}
