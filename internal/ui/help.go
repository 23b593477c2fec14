package ui

import "github.com/atomicstack/todo-popup/internal/format/table"

var helpRows = [][]string{
	{"↑/k ↓/j", "move"},
	{"g/home G/end", "first / last item"},
	{"space/x", "toggle item"},
	{"enter/e", "edit item"},
	{"d/delete", "delete item"},
	{"a", "toggle all"},
	{"c", "clear completed"},
	{"n/i", "new item"},
	{"1 2 3", "all / active / completed"},
	{"/", "jump to item"},
	{"?", "close help"},
	{"q", "quit"},
}

// helpLines renders the key bindings as an aligned two-column table.
func helpLines() []string {
	lines := table.Format(helpRows, []table.Alignment{table.AlignRight, table.AlignLeft})
	for i, line := range lines {
		lines[i] = styles.Info.Render(line)
	}
	return lines
}
