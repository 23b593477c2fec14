// Package dom provides the UI tree the view layer renders into.
//
// The tree is a golang.org/x/net/html node graph. Every node is exposed through
// a stable *Element handle so listeners can be attached to it and so handles
// obtained from different queries compare equal when they name the same node.
// Properties a browser keeps separately from markup (value, checked, className,
// style.display) are mirrored into attributes, which keeps the selector engine
// and the terminal renderer looking at a single source of truth.
//
// On top of the tree sit the helpers the view relies on: QueryOne/QueryAll,
// On, Delegate and ParentWithTag.
package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns a UI tree and the handles, listeners and focus state attached
// to it. A Document is not safe for concurrent use; all access is expected to
// happen on one goroutine.
type Document struct {
	root    *html.Node
	handles map[*html.Node]*Element
	active  *Element
}

// Parse builds a document from a full HTML page.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root, handles: make(map[*html.Node]*Element)}, nil
}

// MustParse is Parse for markup known to be valid at compile time.
func MustParse(markup string) *Document {
	doc, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return doc
}

// CreateElement returns a new detached element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.element(n)
}

// ActiveElement returns the element that currently holds input focus.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// Focus moves input focus to el. The previously focused element receives a
// blur event before el receives focus. Detached elements cannot take focus.
func (d *Document) Focus(el *Element) {
	if el == nil || el.doc != d || d.active == el || !d.connected(el.node) {
		return
	}
	if prev := d.active; prev != nil {
		d.active = nil
		d.Dispatch(prev, &Event{Type: EventBlur})
	}
	d.active = el
	d.Dispatch(el, &Event{Type: EventFocus})
}

// Blur removes focus from el if it currently has it.
func (d *Document) Blur(el *Element) {
	if el == nil || d.active != el {
		return
	}
	d.active = nil
	d.Dispatch(el, &Event{Type: EventBlur})
}

// element returns the canonical handle for n, creating one on first use.
func (d *Document) element(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.handles[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.handles[n] = el
	return el
}

// forget drops handles for a subtree that left the document. A focused
// element inside the subtree loses focus without a blur event.
func (d *Document) forget(n *html.Node) {
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if d.active != nil && d.active.node == cur {
			d.active = nil
		}
		delete(d.handles, cur)
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			stack = append(stack, c)
		}
	}
}

func (d *Document) connected(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == d.root {
			return true
		}
	}
	return false
}
