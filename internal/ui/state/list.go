package state

// Row is one list item as the terminal host sees it.
type Row struct {
	ID        int
	Title     string
	Completed bool
	Editing   bool
}

// List tracks the rows currently rendered, the cursor and the viewport.
// The cursor follows the row id across re-renders, so replacing the list
// markup does not move the highlight to a different task.
type List struct {
	Rows           []Row
	Cursor         int
	ViewportOffset int

	currentID int
	hasID     bool
}

// SetRows replaces the rows. The cursor stays on the same id when it survives,
// otherwise it keeps its index, clamped to the new length.
func (l *List) SetRows(rows []Row) {
	l.Rows = cloneRows(rows)
	if l.hasID {
		if idx := l.IndexOf(l.currentID); idx >= 0 {
			l.Cursor = idx
		}
	}
	l.clamp()
	l.remember()
}

// IndexOf returns the row index for id, or -1.
func (l *List) IndexOf(id int) int {
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *List) Current() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// Select moves the cursor to index.
func (l *List) Select(index int) bool {
	if index < 0 || index >= len(l.Rows) {
		return false
	}
	old := l.Cursor
	l.Cursor = index
	l.remember()
	return old != l.Cursor
}

func (l *List) clamp() {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
}

func (l *List) remember() {
	row, ok := l.Current()
	l.currentID = row.ID
	l.hasID = ok
}

func cloneRows(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
