package ui

import (
	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging/events"
	uistate "github.com/atomicstack/todo-popup/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// handleEntryKey edits the focused DOM input through the bubbles textinput.
// Enter commits: a change event on the new-item input, a keypress elsewhere.
// Esc leaves: a plain blur on the new-item input, a keyup elsewhere so the
// item editor can cancel.
func (m *Model) handleEntryKey(key tea.KeyMsg) tea.Cmd {
	el := m.entry
	if el == nil {
		m.mode = ModeBrowse
		return nil
	}
	switch key.Type {
	case tea.KeyEnter:
		value := m.input.Value()
		if el.HasClass("new-todo") {
			m.doc.Change(el, value)
			return nil
		}
		el.SetValue(value)
		m.doc.KeyPress(el, dom.KeyEnter)
		return nil
	case tea.KeyEsc:
		if el.HasClass("new-todo") {
			m.doc.Blur(el)
			return nil
		}
		m.doc.KeyUp(el, dom.KeyEscape)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	el.SetValue(m.input.Value())
	return cmd
}

func (m *Model) startJump() {
	if len(m.list.Rows) == 0 {
		m.errMsg = "nothing to jump to"
		return
	}
	m.mode = ModeJump
	m.jumpOrigin = m.list.Cursor
	m.jump.SetValue("")
	m.jump.Focus()
}

// handleJumpKey moves the cursor to the best match as the query changes; with
// no match it stays where the jump started. Enter keeps the match, Esc returns
// to where the jump started.
func (m *Model) handleJumpKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		m.endJump()
		return nil
	case tea.KeyEsc:
		m.list.Select(m.jumpOrigin)
		m.endJump()
		return nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(key)
	query := m.jump.Value()
	index := uistate.BestMatchIndex(m.list.Rows, query)
	events.UI.Jump(query, index)
	if query == "" || index < 0 {
		m.list.Select(m.jumpOrigin)
	} else {
		m.list.Select(index)
	}
	m.list.EnsureCursorVisible(m.maxVisibleRows())
	return cmd
}

func (m *Model) endJump() {
	m.mode = ModeBrowse
	m.jump.Blur()
	m.jump.SetValue("")
}
