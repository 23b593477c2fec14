package state

// MoveUp moves the cursor one row up.
func (l *List) MoveUp() bool { return l.moveBy(-1) }

// MoveDown moves the cursor one row down.
func (l *List) MoveDown() bool { return l.moveBy(1) }

// MoveHome moves the cursor to the first row.
func (l *List) MoveHome() bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	return l.Select(0)
}

// MoveEnd moves the cursor to the last row.
func (l *List) MoveEnd() bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	return l.Select(len(l.Rows) - 1)
}

// MovePageUp moves the cursor up by one screenful.
func (l *List) MovePageUp(maxVisible int) bool { return l.moveBy(-l.pageSize(maxVisible)) }

// MovePageDown moves the cursor down by one screenful.
func (l *List) MovePageDown(maxVisible int) bool { return l.moveBy(l.pageSize(maxVisible)) }

func (l *List) moveBy(delta int) bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	target := l.Cursor + delta
	if target < 0 {
		target = 0
	}
	if target >= len(l.Rows) {
		target = len(l.Rows) - 1
	}
	return l.Select(target)
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Rows)
	if maxVisible <= 0 || maxVisible > total {
		maxVisible = total
	}
	if maxVisible < 1 {
		return 1
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is on screen.
func (l *List) EnsureCursorVisible(maxVisible int) {
	l.clamp()
	if len(l.Rows) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	switch {
	case l.Cursor < l.ViewportOffset:
		l.ViewportOffset = l.Cursor
	case l.Cursor >= l.ViewportOffset+maxVisible:
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Visible returns the rows inside the viewport and the index of the first one.
func (l *List) Visible(maxVisible int) ([]Row, int) {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(l.Rows) <= maxVisible {
		return l.Rows, 0
	}
	end := l.ViewportOffset + maxVisible
	if end > len(l.Rows) {
		end = len(l.Rows)
	}
	return l.Rows[l.ViewportOffset:end], l.ViewportOffset
}
