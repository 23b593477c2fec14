package ui

import (
	"strings"

	uistate "github.com/atomicstack/todo-popup/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

const (
	checkboxEmpty = "[ ]"
	checkboxDone  = "[x]"
	editingMarker = "✎"
)

// View renders the tree: header, new-item input, the list and the footer.
// Hidden regions are skipped the way a browser skips display:none.
func (m *Model) View() string {
	var lines []string

	if title := m.doc.QueryOne(selectorTitle, nil); title != nil {
		lines = append(lines, styles.Title.Render(title.TextContent()))
	}
	lines = append(lines, m.newTodoLine())

	if main := m.doc.QueryOne(selectorMain, nil); main != nil && !main.Hidden() {
		lines = append(lines, m.toggleAllLine())
		lines = append(lines, m.itemLines()...)
	}
	if footer := m.doc.QueryOne(selectorFooter, nil); footer != nil && !footer.Hidden() {
		lines = append(lines, m.footerLine())
	}
	if m.mode == ModeJump {
		lines = append(lines, styles.Prompt.Render("/")+m.jump.View())
	}
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(m.errMsg))
	}
	if m.showHelp {
		lines = append(lines, helpLines()...)
	}
	if m.showFooter {
		lines = append(lines, styles.Footer.Render(m.helpText()))
	}

	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) newTodoLine() string {
	prompt := styles.Prompt.Render("❯ ")
	el := m.doc.QueryOne(selectorNewTodo, nil)
	if el == nil {
		return prompt
	}
	if m.mode == ModeEntry && m.entry == el {
		return prompt + m.input.View()
	}
	if value := el.Value(); value != "" {
		return prompt + styles.Input.Render(value)
	}
	return prompt + styles.Placeholder.Render(el.Attr("placeholder"))
}

func (m *Model) toggleAllLine() string {
	el := m.doc.QueryOne(selectorToggleAll, nil)
	if el == nil {
		return ""
	}
	label := "Mark all as complete"
	if caption := m.doc.QueryOne(`label[for="toggle-all"]`, nil); caption != nil {
		label = caption.TextContent()
	}
	box := styles.Checkbox.Render(checkboxEmpty)
	if el.Checked() {
		box = styles.CheckboxDone.Render(checkboxDone)
	}
	return box + " " + styles.Info.Render(label)
}

func (m *Model) itemLines() []string {
	rows, start := m.list.Visible(m.maxVisibleRows())
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, m.itemLine(row, start+i == m.list.Cursor))
	}
	return lines
}

func (m *Model) itemLine(row uistate.Row, selected bool) string {
	if row.Editing && m.mode == ModeEntry && m.entry != nil && !m.entry.HasClass("new-todo") {
		return styles.EditingMarker.Render(editingMarker) + "   " + m.input.View()
	}
	box := styles.Checkbox.Render(checkboxEmpty)
	titleStyle := styles.Item
	if row.Completed {
		box = styles.CheckboxDone.Render(checkboxDone)
		titleStyle = styles.CompletedItem
	}
	if selected {
		titleStyle = styles.SelectedItem
	}
	marker := " "
	if selected {
		marker = ">"
	}
	return marker + " " + box + " " + titleStyle.Render(row.Title)
}

func (m *Model) footerLine() string {
	var parts []string
	if counter := m.doc.QueryOne(selectorCounter, nil); counter != nil {
		parts = append(parts, styles.Counter.Render(counter.TextContent()))
	}
	var filters []string
	for i, link := range m.doc.QueryAll(selectorFilterLink, nil) {
		text := link.TextContent()
		if i < 3 {
			text = string(rune('1'+i)) + ":" + text
		}
		if link.HasClass("selected") {
			filters = append(filters, styles.SelectedFilter.Render(text))
		} else {
			filters = append(filters, styles.Filter.Render(text))
		}
	}
	if len(filters) > 0 {
		parts = append(parts, strings.Join(filters, " "))
	}
	if button := m.doc.QueryOne(selectorClear, nil); button != nil && !button.Hidden() {
		if text := strings.TrimSpace(button.TextContent()); text != "" {
			parts = append(parts, styles.ClearCompleted.Render(text))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) helpText() string {
	switch m.mode {
	case ModeEntry:
		return "enter: save  esc: leave"
	case ModeJump:
		return "enter: select  esc: cancel"
	default:
		return "n: new  space: toggle  enter: edit  d: delete  1-3: filter  ?: help  q: quit"
	}
}

// maxVisibleRows is the number of list rows that fit under the height limit,
// or zero when the height is unbounded.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	// title, input, toggle-all and footer
	chrome := 4
	if m.showFooter {
		chrome++
	}
	if m.mode == ModeJump {
		chrome++
	}
	if m.errMsg != "" {
		chrome++
	}
	if m.showHelp {
		chrome += len(helpRows)
	}
	rows := m.height - chrome
	if rows < 1 {
		rows = 1
	}
	return rows
}
