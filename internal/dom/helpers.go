package dom

import "strings"

// On attaches callback to target for events of type t. Focus changes do not
// bubble, so blur and focus listeners are always registered for the capture
// phase; that is what lets an ancestor observe them.
func On(target *Element, t EventType, callback Listener, useCapture bool) {
	if t == EventBlur || t == EventFocus {
		useCapture = true
	}
	target.AddEventListener(t, callback, useCapture)
}

// DelegateHandler runs for a delegated event with the element that matched
// the delegation selector.
type DelegateHandler func(matched *Element, ev *Event)

// Delegate attaches a single listener to target that runs handler whenever an
// event of type t originates from a descendant of target matching selector.
// The match set is recomputed for every event, so elements inserted after the
// call are covered without rebinding.
func Delegate(target *Element, selector string, t EventType, handler DelegateHandler) {
	compile(selector)
	doc := target.doc
	On(target, t, func(ev *Event) {
		for _, candidate := range doc.QueryAll(selector, target) {
			if candidate == ev.Target {
				handler(candidate, ev)
				return
			}
		}
	}, false)
}

// ParentWithTag returns the nearest ancestor of el whose tag name equals tag,
// ignoring case. Returns nil when the top of the tree is reached first.
func ParentWithTag(el *Element, tag string) *Element {
	if el == nil {
		return nil
	}
	for p := el.Parent(); p != nil; p = p.Parent() {
		if strings.EqualFold(p.TagName(), tag) {
			return p
		}
	}
	return nil
}
