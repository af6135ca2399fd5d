// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/internal/state"
	"github.com/MKhiriev/mindcraft-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// quizRow is one selectable answer line: an MCQ option or a True/False label.
type quizRow struct {
	tf       bool
	question int
	option   int
	label    models.TFLabel
}

// QuizModel renders the multiple-choice and true/false sections of a quiz.
// Every answer is checked locally and mirrored to the accuracy recorder.
type QuizModel struct {
	ctx       context.Context
	artifacts service.ClientArtifactService
	accuracy  service.ClientAccuracyRecorder
	id        models.DocumentID

	loading  bool
	quiz     *state.Quiz
	rows     []quizRow
	cursor   int
	viewport viewport.Model
}

// NewQuizModel creates a [QuizModel] for document id.
func NewQuizModel(ctx context.Context, artifacts service.ClientArtifactService, accuracy service.ClientAccuracyRecorder, id models.DocumentID) *QuizModel {
	return &QuizModel{
		ctx:       ctx,
		artifacts: artifacts,
		accuracy:  accuracy,
		id:        id,
		loading:   true,
		quiz:      state.NewQuiz(models.QuizArtifact{}),
		viewport:  viewport.New(80, 20),
	}
}

// Init implements [tea.Model]. Fetches the quiz once.
func (m *QuizModel) Init() tea.Cmd {
	ctx := m.ctx
	artifacts := m.artifacts
	id := m.id

	return func() tea.Msg {
		quiz, err := artifacts.Quiz(ctx, id)
		return quizLoadedMsg{quiz: quiz, err: err}
	}
}

func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quizLoadedMsg:
		m.loading = false
		m.quiz = state.NewQuiz(msg.quiz)
		m.rows = buildQuizRows(m.quiz)
		m.cursor = 0
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.viewport.Width = max(20, msg.Width-6)
		m.viewport.Height = max(5, msg.Height-pageChromeHeight)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigateCmd(RouteDashboard)
		case key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.answer):
			m.answer()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *QuizModel) View() string {
	return renderPage("QUIZ", m.viewport.View(), "↑/↓: select │ enter/space: answer │ esc: documents")
}

// Quiz exposes the answer state of the view.
func (m *QuizModel) Quiz() *state.Quiz {
	return m.quiz
}

// answer records the row under the cursor and sends the accuracy event.
func (m *QuizModel) answer() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]

	var (
		qKey    state.QuestionKey
		correct bool
		ok      bool
	)
	if row.tf {
		qKey, correct, ok = m.quiz.AnswerTF(row.question, row.label)
	} else {
		qKey, correct, ok = m.quiz.AnswerMCQ(row.question, row.option)
	}
	if !ok {
		return
	}
	if m.accuracy != nil {
		m.accuracy.Record(string(qKey), correct)
	}
}

func buildQuizRows(q *state.Quiz) []quizRow {
	var rows []quizRow
	for i, mcq := range q.MCQs() {
		for j := range mcq.Choices {
			rows = append(rows, quizRow{question: i, option: j})
		}
	}
	for i := range q.TrueFalses() {
		for _, label := range models.TFLabels {
			rows = append(rows, quizRow{tf: true, question: i, label: label})
		}
	}
	return rows
}

// refresh re-renders the quiz into the viewport and scrolls so the cursor
// line stays visible.
func (m *QuizModel) refresh() {
	content, cursorLine := m.render()
	m.viewport.SetContent(content)

	if cursorLine < 0 {
		return
	}
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// render returns the quiz text and the line index of the cursor row.
func (m *QuizModel) render() (string, int) {
	if m.loading {
		return "Loading...", -1
	}
	if m.quiz.Len() == 0 {
		return "No questions yet", -1
	}

	var lines []string
	cursorLine := -1
	row := 0

	addRow := func(text string, highlighted bool) {
		selected := row == m.cursor
		if highlighted {
			text = highlightStyle.Render(text)
		}
		if selected {
			cursorLine = len(lines)
		}
		lines = append(lines, fmt.Sprintf("%s   %s", cursorMark(selected), text))
		row++
	}

	if len(m.quiz.MCQs()) > 0 {
		lines = append(lines, titleStyle.Render("Multiple choice"), "")
	}
	for i, mcq := range m.quiz.MCQs() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, m.quiz.MCQTitle(i)))
		for j, choice := range mcq.Choices {
			addRow(choice.Text, m.quiz.MCQOptionHighlighted(i, j))
		}
		lines = append(lines, m.feedback(state.MCQKey(i), mcq.Explanation)...)
		lines = append(lines, "")
	}

	if len(m.quiz.TrueFalses()) > 0 {
		lines = append(lines, titleStyle.Render("True / False"), "")
	}
	for i, tf := range m.quiz.TrueFalses() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, m.quiz.TFTitle(i)))
		for _, label := range models.TFLabels {
			addRow(string(label), m.quiz.TFLabelHighlighted(i, label))
		}
		lines = append(lines, m.feedback(state.TFKey(i), tf.Reason)...)
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), cursorLine
}

// feedback renders the verdict of an answered question and the
// explanation or reason, which is shown whenever the quiz carries one.
func (m *QuizModel) feedback(qKey state.QuestionKey, note string) []string {
	var out []string
	if correct, answered := m.quiz.Recorded(qKey); answered {
		verdict := "    Incorrect"
		if correct {
			verdict = "    Correct"
		}
		out = append(out, statusStyle.Render(verdict))
	}
	if strings.TrimSpace(note) != "" {
		out = append(out, "    "+note)
	}
	return out
}
