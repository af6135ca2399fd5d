package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/internal/state"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FlashcardsModel reviews the flashcard deck of one document, one card at a
// time.
type FlashcardsModel struct {
	ctx       context.Context
	artifacts service.ClientArtifactService
	id        models.DocumentID

	loading bool
	deck    *state.Deck
}

func NewFlashcardsModel(ctx context.Context, artifacts service.ClientArtifactService, id models.DocumentID) *FlashcardsModel {
	return &FlashcardsModel{
		ctx:       ctx,
		artifacts: artifacts,
		id:        id,
		loading:   true,
		deck:      state.NewDeck(nil),
	}
}

// Init implements [tea.Model]. Fetches the deck once.
func (m *FlashcardsModel) Init() tea.Cmd {
	ctx := m.ctx
	artifacts := m.artifacts
	id := m.id

	return func() tea.Msg {
		deck, err := artifacts.Flashcards(ctx, id)
		return flashcardsLoadedMsg{deck: deck, err: err}
	}
}

func (m *FlashcardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flashcardsLoadedMsg:
		m.loading = false
		m.deck = state.NewDeck(msg.deck.Cards)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateCmd(RouteDashboard)
		case key.Matches(msg, keys.flip):
			m.deck.Flip()
		case key.Matches(msg, keys.easy):
			m.deck.Mark(state.DifficultyEasy)
		case key.Matches(msg, keys.medium):
			m.deck.Mark(state.DifficultyMedium)
		case key.Matches(msg, keys.hard):
			m.deck.Mark(state.DifficultyHard)
		}
	}
	return m, nil
}

func (m *FlashcardsModel) View() string {
	var b strings.Builder

	b.WriteString(m.deck.Header())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(cardBoxStyle.Render("Loading..."))
	case m.deck.Len() == 0:
		b.WriteString(cardBoxStyle.Render("No flashcards yet"))
	default:
		b.WriteString(helpStyle.Render(m.deck.Face().String()))
		b.WriteString("\n")
		b.WriteString(cardBoxStyle.Render(m.deck.VisibleText()))
	}

	b.WriteString("\n\n")
	for i, d := range state.Difficulties {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString("[")
		b.WriteString(string(rune('1' + i)))
		b.WriteString(" ")
		b.WriteString(string(d))
		b.WriteString("]")
	}

	return renderPage("FLASHCARDS", b.String(), "space/enter: flip │ 1/2/3: easy/medium/hard │ esc: documents")
}

// Deck exposes the review cursor of the view.
func (m *FlashcardsModel) Deck() *state.Deck {
	return m.deck
}
