package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// runCmd executes cmd and unfolds batches. Commands must not block.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// unscope strips the router scope from msgs.
func unscope(msgs []tea.Msg) []tea.Msg {
	out := make([]tea.Msg, 0, len(msgs))
	for _, msg := range msgs {
		if s, ok := msg.(scopedMsg); ok {
			msg = s.msg
		}
		out = append(out, msg)
	}
	return out
}

// firstOf returns the first message of type T.
func firstOf[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
