package dom

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var selectors = struct {
	sync.Mutex
	compiled map[string]cascadia.Selector
}{compiled: make(map[string]cascadia.Selector)}

// compile returns the cached matcher for selector. Selectors are part of the
// program text, so a malformed one panics.
func compile(selector string) cascadia.Selector {
	selectors.Lock()
	defer selectors.Unlock()
	if sel, ok := selectors.compiled[selector]; ok {
		return sel
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		panic(fmt.Errorf("dom: invalid selector %q: %w", selector, err))
	}
	selectors.compiled[selector] = sel
	return sel
}

// QueryOne returns the first element under scope matching selector, in
// document order. A nil scope searches the whole document. The scope element
// itself is never returned. Returns nil when nothing matches.
func (d *Document) QueryOne(selector string, scope *Element) *Element {
	sel := compile(selector)
	var found *Element
	d.walk(scope, func(n *html.Node) bool {
		if sel.Match(n) {
			found = d.element(n)
			return false
		}
		return true
	})
	return found
}

// QueryAll returns every element under scope matching selector, in document
// order. The result is empty, never nil-dereferenced, when nothing matches.
func (d *Document) QueryAll(selector string, scope *Element) []*Element {
	sel := compile(selector)
	out := []*Element{}
	d.walk(scope, func(n *html.Node) bool {
		if sel.Match(n) {
			out = append(out, d.element(n))
		}
		return true
	})
	return out
}

// walk visits the element descendants of scope in document order until visit
// returns false.
func (d *Document) walk(scope *Element, visit func(*html.Node) bool) {
	start := d.root
	if scope != nil {
		start = scope.node
	}
	var stack []*html.Node
	for c := start.LastChild; c != nil; c = c.PrevSibling {
		stack = append(stack, c)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == html.ElementNode && !visit(n) {
			return
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}
