package ui

import (
	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleBrowseKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyUp:
		m.moveCursor(m.list.MoveUp)
		return nil
	case tea.KeyDown:
		m.moveCursor(m.list.MoveDown)
		return nil
	case tea.KeyHome:
		m.moveCursor(m.list.MoveHome)
		return nil
	case tea.KeyEnd:
		m.moveCursor(m.list.MoveEnd)
		return nil
	case tea.KeyPgUp:
		m.moveCursor(func() bool { return m.list.MovePageUp(m.maxVisibleRows()) })
		return nil
	case tea.KeyPgDown:
		m.moveCursor(func() bool { return m.list.MovePageDown(m.maxVisibleRows()) })
		return nil
	case tea.KeySpace:
		m.clickInItem(".toggle")
		return nil
	case tea.KeyEnter:
		m.editCurrent()
		return nil
	case tea.KeyDelete:
		m.clickInItem(".destroy")
		return nil
	case tea.KeyEsc:
		return nil
	}

	switch key.String() {
	case "k":
		m.moveCursor(m.list.MoveUp)
	case "j":
		m.moveCursor(m.list.MoveDown)
	case "g":
		m.moveCursor(m.list.MoveHome)
	case "G":
		m.moveCursor(m.list.MoveEnd)
	case "x":
		m.clickInItem(".toggle")
	case "e":
		m.editCurrent()
	case "d":
		m.clickInItem(".destroy")
	case "a":
		m.click(selectorToggleAll)
	case "c":
		m.click(selectorClear)
	case "n", "i":
		m.doc.Focus(m.doc.QueryOne(selectorNewTodo, nil))
	case "1", "2", "3":
		m.selectFilter(int(key.Runes[0] - '1'))
	case "/":
		m.startJump()
	case "?":
		m.showHelp = !m.showHelp
	case "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		m.list.EnsureCursorVisible(m.maxVisibleRows())
		if row, ok := m.list.Current(); ok {
			events.UI.Cursor(m.list.Cursor, row.ID)
		}
	}
}

// clickInItem clicks the first element matching selector inside the row under
// the cursor.
func (m *Model) clickInItem(selector string) {
	li := m.itemElement()
	if li == nil {
		return
	}
	m.doc.Click(m.doc.QueryOne(selector, li))
}

// editCurrent double-clicks the label of the row under the cursor.
func (m *Model) editCurrent() {
	li := m.itemElement()
	if li == nil {
		return
	}
	m.doc.DoubleClick(m.doc.QueryOne("label", li))
}

// click activates the element matching selector unless it is hidden.
func (m *Model) click(selector string) {
	el := m.doc.QueryOne(selector, nil)
	if el == nil || el.Hidden() {
		return
	}
	m.doc.Click(el)
}

// selectFilter clicks the filter link at index and follows its href.
func (m *Model) selectFilter(index int) {
	links := m.doc.QueryAll(selectorFilterLink, nil)
	if index < 0 || index >= len(links) {
		return
	}
	link := links[index]
	if link.Hidden() {
		return
	}
	m.doc.Click(link)
	m.followLink(link)
}

func (m *Model) followLink(link *dom.Element) {
	href := link.Attr("href")
	if href == "" {
		return
	}
	events.UI.Navigate(href)
	if m.navigate != nil {
		m.navigate(href)
	}
}
