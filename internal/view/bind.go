package view

import (
	"fmt"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging/events"
)

// Event names a semantic event the controller can subscribe to.
type Event int

const (
	EventNewTodo Event = iota
	EventRemoveCompleted
	EventToggleAll
	EventItemEdit
	EventItemRemove
	EventItemToggle
	EventItemEditDone
	EventItemEditCancel
)

var eventNames = [...]string{
	EventNewTodo:         "newTodo",
	EventRemoveCompleted: "removeCompleted",
	EventToggleAll:       "toggleAll",
	EventItemEdit:        "itemEdit",
	EventItemRemove:      "itemRemove",
	EventItemToggle:      "itemToggle",
	EventItemEditDone:    "itemEditDone",
	EventItemEditCancel:  "itemEditCancel",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// ItemRef identifies a list item.
type ItemRef struct {
	ID int
}

// ItemToggle carries the new completed state of one item.
type ItemToggle struct {
	ID        int
	Completed bool
}

// ItemTitle carries the edited title of one item.
type ItemTitle struct {
	ID    int
	Title string
}

// ToggleAllPayload carries the state of the toggle-all checkbox.
type ToggleAllPayload struct {
	Completed bool
}

// Binding pairs a semantic event with its handler. The set is closed: only the
// handler types below implement it.
type Binding interface {
	Event() Event
	binding()
}

// OnNewTodo receives the raw value of the new-item input when it changes.
type OnNewTodo func(title string)

// OnRemoveCompleted fires when the clear-completed button is clicked.
type OnRemoveCompleted func()

// OnToggleAll fires when the toggle-all checkbox is clicked.
type OnToggleAll func(ToggleAllPayload)

// OnItemEdit fires when an item label is double-clicked.
type OnItemEdit func(ItemRef)

// OnItemRemove fires when an item's destroy button is clicked.
type OnItemRemove func(ItemRef)

// OnItemToggle fires when an item's checkbox is clicked.
type OnItemToggle func(ItemToggle)

// OnItemEditDone fires when an edit input loses focus without being cancelled.
type OnItemEditDone func(ItemTitle)

// OnItemEditCancel fires when Escape is released inside an edit input.
type OnItemEditCancel func(ItemRef)

func (OnNewTodo) Event() Event         { return EventNewTodo }
func (OnRemoveCompleted) Event() Event { return EventRemoveCompleted }
func (OnToggleAll) Event() Event       { return EventToggleAll }
func (OnItemEdit) Event() Event        { return EventItemEdit }
func (OnItemRemove) Event() Event      { return EventItemRemove }
func (OnItemToggle) Event() Event      { return EventItemToggle }
func (OnItemEditDone) Event() Event    { return EventItemEditDone }
func (OnItemEditCancel) Event() Event  { return EventItemEditCancel }

func (OnNewTodo) binding()         {}
func (OnRemoveCompleted) binding() {}
func (OnToggleAll) binding()       {}
func (OnItemEdit) binding()        {}
func (OnItemRemove) binding()      {}
func (OnItemToggle) binding()      {}
func (OnItemEditDone) binding()    {}
func (OnItemEditCancel) binding()  {}

// Bind registers b. Handlers receive plain payloads extracted from the raw
// event; the view never consults application state. A nil handler or a
// binding type outside this package's set panics.
func (v *View) Bind(b Binding) {
	if b == nil {
		panic("view: nil binding")
	}
	events.View.Bind(b.Event().String())
	switch h := b.(type) {
	case OnNewTodo:
		mustHandler(h == nil, b)
		dom.On(v.newTodo, dom.EventChange, func(*dom.Event) {
			value := v.newTodo.Value()
			events.View.Emit(EventNewTodo.String(), value)
			h(value)
		}, false)
	case OnRemoveCompleted:
		mustHandler(h == nil, b)
		dom.On(v.clearCompleted, dom.EventClick, func(*dom.Event) {
			events.View.Emit(EventRemoveCompleted.String(), nil)
			h()
		}, false)
	case OnToggleAll:
		mustHandler(h == nil, b)
		dom.On(v.toggleAll, dom.EventClick, func(*dom.Event) {
			payload := ToggleAllPayload{Completed: v.toggleAll.Checked()}
			events.View.Emit(EventToggleAll.String(), payload)
			h(payload)
		}, false)
	case OnItemEdit:
		mustHandler(h == nil, b)
		v.delegateItem("li label", dom.EventDoubleClick, EventItemEdit, func(_ *dom.Element, id int) {
			h(ItemRef{ID: id})
		})
	case OnItemRemove:
		mustHandler(h == nil, b)
		v.delegateItem(".destroy", dom.EventClick, EventItemRemove, func(_ *dom.Element, id int) {
			h(ItemRef{ID: id})
		})
	case OnItemToggle:
		mustHandler(h == nil, b)
		v.delegateItem(".toggle", dom.EventClick, EventItemToggle, func(toggle *dom.Element, id int) {
			h(ItemToggle{ID: id, Completed: toggle.Checked()})
		})
	case OnItemEditDone:
		mustHandler(h == nil, b)
		v.bindItemEditDone(h)
	case OnItemEditCancel:
		mustHandler(h == nil, b)
		v.bindItemEditCancel(h)
	default:
		panic(fmt.Sprintf("view: unknown binding %T", b))
	}
}

// delegateItem delegates t on selector to the list container and resolves the
// id of the enclosing item before calling fn.
func (v *View) delegateItem(selector string, t dom.EventType, event Event, fn func(matched *dom.Element, id int)) {
	dom.Delegate(v.todoList, selector, t, func(matched *dom.Element, _ *dom.Event) {
		id, ok := itemID(matched)
		if !ok {
			return
		}
		events.View.Emit(event.String(), id)
		fn(matched, id)
	})
}

func mustHandler(isNil bool, b Binding) {
	if isNil {
		panic(fmt.Sprintf("view: nil handler for %s", b.Event()))
	}
}
