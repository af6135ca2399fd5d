// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/internal/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	uploadFocusPDF = iota
	uploadFocusYoutube
	uploadFocusNone = -1
)

// UploadModel is the submission page. It holds a PDF path input and a
// YouTube link input; enter submits the focused one. On success the router
// is asked to open the dashboard, on failure the message stays on the page.
type UploadModel struct {
	ctx        context.Context
	submission service.ClientSubmissionService

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	state   state.Submission
}

// NewUploadModel creates an [UploadModel] with the PDF path input focused.
func NewUploadModel(ctx context.Context, submission service.ClientSubmissionService) *UploadModel {
	pdfInput := textinput.New()
	pdfInput.Placeholder = "/path/to/file.pdf"
	pdfInput.CharLimit = 4096
	pdfInput.Width = 50
	pdfInput.Focus()

	youtubeInput := textinput.New()
	youtubeInput.Placeholder = "https://www.youtube.com/watch?v=..."
	youtubeInput.CharLimit = 2048
	youtubeInput.Width = 50

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &UploadModel{
		ctx:        ctx,
		submission: submission,
		inputs:     []textinput.Model{pdfInput, youtubeInput},
		spinner:    s,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UploadModel) Init() tea.Cmd {
	return textinput.Blink
}

// CapturesText reports whether an input is focused.
func (m *UploadModel) CapturesText() bool {
	return m.focus != uploadFocusNone
}

// Update implements [tea.Model]. Handled messages:
//   - [submitDoneMsg] completes the running attempt.
//   - tab / shift+tab move focus between the inputs.
//   - esc leaves the inputs so page hotkeys work.
//   - enter submits the focused input.
func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		if msg.err != nil {
			m.state.Fail(service.ErrorMessage(msg.err))
			return m, nil
		}
		if m.state.Succeed() {
			return m, navigateCmd(RouteDashboard)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.state.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, textinput.Blink
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, textinput.Blink
		case key.Matches(msg, keys.esc):
			m.setFocus(uploadFocusNone)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submitFocused()
		}
	}

	if m.focus == uploadFocusNone {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UploadModel) View() string {
	var b strings.Builder

	b.WriteString("Upload PDF\n")
	b.WriteString("[")
	b.WriteString(m.inputs[uploadFocusPDF].View())
	b.WriteString("]\n")
	b.WriteString(m.button("Process PDF", state.SubmissionPDF))
	b.WriteString("\n\n")

	b.WriteString("YouTube Link\n")
	b.WriteString("[")
	b.WriteString(m.inputs[uploadFocusYoutube].View())
	b.WriteString("]\n")
	b.WriteString(m.button("Transcribe & Process", state.SubmissionYoutube))
	b.WriteString("\n")

	if status := m.state.Status(); status != "" {
		b.WriteString("\n")
		if m.state.Busy() {
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
		}
		if m.state.Phase() == state.SubmissionFailed {
			b.WriteString(errorStyle.Render(status))
		} else {
			b.WriteString(statusStyle.Render(status))
		}
		b.WriteString("\n")
	}

	return renderPage("SUBMIT A DOCUMENT", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ esc: leave field │ v: version")
}

func (m *UploadModel) button(label string, kind state.SubmissionKind) string {
	if m.state.Busy() && m.state.Kind() == kind {
		return "[" + label + "...]"
	}
	return "[" + label + "]"
}

func (m *UploadModel) submitFocused() tea.Cmd {
	switch m.focus {
	case uploadFocusPDF:
		path := m.inputs[uploadFocusPDF].Value()
		if !m.state.BeginPDF(path) {
			return nil
		}
		return tea.Batch(m.cmdSubmitPDF(m.state.Input()), m.spinner.Tick)
	case uploadFocusYoutube:
		url := m.inputs[uploadFocusYoutube].Value()
		if !m.state.BeginYoutube(url) {
			return nil
		}
		return tea.Batch(m.cmdSubmitYoutube(m.state.Input()), m.spinner.Tick)
	}
	return nil
}

func (m *UploadModel) cmdSubmitPDF(path string) tea.Cmd {
	ctx := m.ctx
	submission := m.submission

	return func() tea.Msg {
		err := submission.SubmitPDF(ctx, path)
		return submitDoneMsg{kind: state.SubmissionPDF, err: err}
	}
}

func (m *UploadModel) cmdSubmitYoutube(url string) tea.Cmd {
	ctx := m.ctx
	submission := m.submission

	return func() tea.Msg {
		err := submission.SubmitYoutube(ctx, url)
		return submitDoneMsg{kind: state.SubmissionYoutube, err: err}
	}
}

func (m *UploadModel) setFocus(focus int) {
	if m.focus != uploadFocusNone {
		m.inputs[m.focus].Blur()
	}
	if focus == uploadFocusNone {
		m.focus = uploadFocusNone
		return
	}
	if focus < 0 {
		focus = 0
	}
	m.focus = focus
	m.inputs[m.focus].Focus()
}
