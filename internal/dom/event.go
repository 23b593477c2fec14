package dom

import "github.com/atomicstack/todo-popup/internal/logging/events"

// EventType names a raw UI event.
type EventType string

const (
	EventClick       EventType = "click"
	EventDoubleClick EventType = "dblclick"
	EventChange      EventType = "change"
	EventKeyPress    EventType = "keypress"
	EventKeyUp       EventType = "keyup"
	EventBlur        EventType = "blur"
	EventFocus       EventType = "focus"
)

// Key values carried by keyboard events.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// Bubbles reports whether events of this type propagate back up the tree
// after reaching their target. Focus changes do not.
func (t EventType) Bubbles() bool {
	return t != EventBlur && t != EventFocus
}

// Phase is the propagation phase an event is in.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCapture
	PhaseAtTarget
	PhaseBubble
)

// Event is a raw UI event travelling through the tree.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element
	Key           string
	Phase         Phase

	stopped bool
}

// StopPropagation prevents the event from reaching further nodes. Listeners
// on the current node still run.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Stopped reports whether StopPropagation was called.
func (ev *Event) Stopped() bool { return ev.stopped }

// Listener receives events delivered to an element.
type Listener func(ev *Event)

type listener struct {
	typ     EventType
	fn      Listener
	capture bool
}

// AddEventListener registers fn for events of type t. Capture listeners run
// while the event travels down towards its target, the others while it
// bubbles back up. Both kinds run when the element is the target itself.
func (e *Element) AddEventListener(t EventType, fn Listener, capture bool) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, listener{typ: t, fn: fn, capture: capture})
}

// Dispatch delivers ev to target: capture from the top of the tree down to the
// target's parent, then the target, then bubbling back up when the event type
// bubbles.
func (d *Document) Dispatch(target *Element, ev *Event) {
	if target == nil || ev == nil {
		return
	}
	ev.Target = target
	events.DOM.Dispatch(string(ev.Type), target.TagName(), target.ClassName())

	var path []*Element
	for p := target.Parent(); p != nil; p = p.Parent() {
		path = append(path, p)
	}

	ev.Phase = PhaseCapture
	for i := len(path) - 1; i >= 0; i-- {
		if ev.stopped {
			return
		}
		path[i].invoke(ev, func(l listener) bool { return l.capture })
	}

	if ev.stopped {
		return
	}
	ev.Phase = PhaseAtTarget
	target.invoke(ev, func(listener) bool { return true })

	if !ev.Type.Bubbles() {
		return
	}
	ev.Phase = PhaseBubble
	for _, p := range path {
		if ev.stopped {
			return
		}
		p.invoke(ev, func(l listener) bool { return !l.capture })
	}
}

func (e *Element) invoke(ev *Event, accept func(listener) bool) {
	// Listeners added while dispatching only see later events.
	snapshot := make([]listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.typ == ev.Type && accept(l) {
			snapshot = append(snapshot, l)
		}
	}
	if len(snapshot) == 0 {
		return
	}
	ev.CurrentTarget = e
	for _, l := range snapshot {
		l.fn(ev)
	}
}
