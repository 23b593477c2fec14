package dom

// The helpers below synthesise the raw events a user interaction produces.
// Hosts translate their own input into these calls; tests use them to drive
// the tree directly.

// Click activates el. A checkbox flips its checked state before listeners run,
// so handlers observe the new state.
func (d *Document) Click(el *Element) {
	if el == nil {
		return
	}
	if el.IsCheckbox() {
		el.SetChecked(!el.Checked())
	}
	d.Dispatch(el, &Event{Type: EventClick})
}

// DoubleClick fires a dblclick on el.
func (d *Document) DoubleClick(el *Element) {
	d.Dispatch(el, &Event{Type: EventDoubleClick})
}

// Change commits value into a form control and fires change.
func (d *Document) Change(el *Element, value string) {
	if el == nil {
		return
	}
	el.SetValue(value)
	d.Dispatch(el, &Event{Type: EventChange})
}

// KeyPress fires a keypress carrying key on el.
func (d *Document) KeyPress(el *Element, key string) {
	d.Dispatch(el, &Event{Type: EventKeyPress, Key: key})
}

// KeyUp fires a keyup carrying key on el.
func (d *Document) KeyUp(el *Element, key string) {
	d.Dispatch(el, &Event{Type: EventKeyUp, Key: key})
}
