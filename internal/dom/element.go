package dom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrNotChild is returned when removing a node from an element that is not its
// parent.
var ErrNotChild = errors.New("dom: node is not a child of this element")

// Element is a handle on one node of a Document.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners []listener
}

// TagName returns the lower-case tag name, or "" for non-element nodes.
func (e *Element) TagName() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

// Parent returns the parent handle, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	return e.doc.element(e.node.Parent)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if other == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// Attr returns the attribute value, or "" when it is absent.
func (e *Element) Attr(key string) string {
	v, _ := e.lookupAttr(key)
	return v
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.lookupAttr(key)
	return ok
}

func (e *Element) lookupAttr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr adds or replaces an attribute.
func (e *Element) SetAttr(key, val string) {
	key = strings.ToLower(key)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	key = strings.ToLower(key)
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// ClassName returns the raw class attribute.
func (e *Element) ClassName() string { return e.Attr("class") }

// SetClassName replaces the class attribute. An empty value removes it.
func (e *Element) SetClassName(v string) {
	if strings.TrimSpace(v) == "" {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", v)
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.ClassName()) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list unless it is already there.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.SetClassName(strings.Join(append(strings.Fields(e.ClassName()), name), " "))
}

// RemoveClass drops every occurrence of name from the class list.
func (e *Element) RemoveClass(name string) {
	fields := strings.Fields(e.ClassName())
	kept := fields[:0]
	for _, c := range fields {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetClassName(strings.Join(kept, " "))
}

// Dataset returns the value of the data-<key> attribute.
func (e *Element) Dataset(key string) string { return e.Attr("data-" + key) }

// SetDataset sets the data-<key> attribute.
func (e *Element) SetDataset(key, val string) { e.SetAttr("data-"+key, val) }

// Value returns the current value of a form control.
func (e *Element) Value() string { return e.Attr("value") }

// SetValue replaces the value of a form control.
func (e *Element) SetValue(v string) { e.SetAttr("value", v) }

// Checked reports the checked state of a checkbox.
func (e *Element) Checked() bool { return e.HasAttr("checked") }

// SetChecked updates the checked state of a checkbox.
func (e *Element) SetChecked(checked bool) {
	if checked {
		e.SetAttr("checked", "")
		return
	}
	e.RemoveAttr("checked")
}

// IsCheckbox reports whether the element is an <input type="checkbox">.
func (e *Element) IsCheckbox() bool {
	return e.TagName() == "input" && strings.EqualFold(e.Attr("type"), "checkbox")
}

// Display returns the inline style.display value, "" when unset.
func (e *Element) Display() string {
	for _, decl := range strings.Split(e.Attr("style"), ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(prop), "display") {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// SetDisplay replaces the inline style.display value, keeping other
// declarations. An empty value removes the declaration.
func (e *Element) SetDisplay(v string) {
	var decls []string
	for _, decl := range strings.Split(e.Attr("style"), ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			continue
		}
		decls = append(decls, decl)
	}
	if v != "" {
		decls = append(decls, "display: "+v)
	}
	if len(decls) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", strings.Join(decls, "; "))
}

// Hidden reports whether the element or one of its ancestors is display:none.
func (e *Element) Hidden() bool {
	for cur := e; cur != nil; cur = cur.Parent() {
		if cur.node.Type == html.ElementNode && cur.Display() == "none" {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of every descendant text node.
func (e *Element) TextContent() string {
	var sb strings.Builder
	stack := []*html.Node{e.node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			continue
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.removeChildren()
	if text == "" {
		return
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// InnerHTML serialises the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

// SetInnerHTML replaces all children with nodes parsed from markup in the
// context of this element.
func (e *Element) SetInnerHTML(markup string) error {
	if e.node.Type != html.ElementNode {
		return fmt.Errorf("set inner html on %q: not an element", e.node.Data)
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("set inner html on <%s>: %w", e.node.Data, err)
	}
	e.removeChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child.doc != e.doc {
		return
	}
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
	e.doc.handles[child.node] = child
}

// RemoveChild detaches child from e.
func (e *Element) RemoveChild(child *Element) error {
	if child == nil || child.node.Parent != e.node {
		return ErrNotChild
	}
	e.node.RemoveChild(child.node)
	e.doc.forget(child.node)
	return nil
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		e.doc.forget(c)
		c = next
	}
}

// Focus moves input focus to the element.
func (e *Element) Focus() { e.doc.Focus(e) }

// Blur removes input focus from the element.
func (e *Element) Blur() { e.doc.Blur(e) }

// String renders the element and its subtree as markup.
func (e *Element) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return fmt.Sprintf("<%s>", e.node.Data)
	}
	return buf.String()
}
