// Package view abstracts the UI tree away from the controller.
//
// A View has two entry points:
//   - Render applies one Command (a closed set of UI mutations) to the tree.
//   - Bind registers a Binding (a closed set of semantic events) and translates
//     raw UI events into calls on the supplied handler.
//
// Render never calls back into the controller. Bindings on list items are
// delegated to the list container, so they keep working after ShowEntries
// replaces the list markup.
//
// Editing session, per item:
//   - EditItem appends the "editing" class and an input.edit pre-filled with the
//     title, then focuses it.
//   - Enter inside the input blurs it.
//   - Blur commits (OnItemEditDone) unless the input carries data-iscanceled="true".
//   - Escape sets data-iscanceled="true", blurs, then fires OnItemEditCancel, so
//     exactly one of commit or cancel fires per session.
//   - EditItemDone removes the input and the "editing" class and relabels the item.
package view

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/todo"
)

const (
	selectorTodoList       = ".todo-list"
	selectorTodoCount      = ".todo-count"
	selectorClearCompleted = ".clear-completed"
	selectorMain           = ".main"
	selectorFooter         = ".footer"
	selectorToggleAll      = ".toggle-all"
	selectorNewTodo        = ".new-todo"

	classCompleted = "completed"
	classEditing   = "editing"
	classSelected  = "selected"
	classEdit      = "edit"

	datasetCanceled = "iscanceled"
)

// Template produces the markup inserted into the list, counter and
// clear-completed regions.
type Template interface {
	Show(items []todo.Item) string
	ItemCounter(active int) string
	ClearCompletedButton(completed int) string
}

// View owns the stable regions of the page. They are resolved once in New and
// never replaced.
type View struct {
	doc      *dom.Document
	template Template

	todoList       *dom.Element
	todoItemCount  *dom.Element
	clearCompleted *dom.Element
	main           *dom.Element
	footer         *dom.Element
	toggleAll      *dom.Element
	newTodo        *dom.Element
}

// New resolves the stable regions in doc.
func New(doc *dom.Document, tmpl Template) (*View, error) {
	if doc == nil {
		return nil, fmt.Errorf("view: nil document")
	}
	if tmpl == nil {
		return nil, fmt.Errorf("view: nil template")
	}
	v := &View{doc: doc, template: tmpl}
	regions := []struct {
		selector string
		dst      **dom.Element
	}{
		{selectorTodoList, &v.todoList},
		{selectorTodoCount, &v.todoItemCount},
		{selectorClearCompleted, &v.clearCompleted},
		{selectorMain, &v.main},
		{selectorFooter, &v.footer},
		{selectorToggleAll, &v.toggleAll},
		{selectorNewTodo, &v.newTodo},
	}
	for _, r := range regions {
		el := doc.QueryOne(r.selector, nil)
		if el == nil {
			return nil, fmt.Errorf("view: missing region %q", r.selector)
		}
		*r.dst = el
	}
	return v, nil
}

// item returns the list item with the given id, or nil.
func (v *View) item(id int) *dom.Element {
	return v.doc.QueryOne(fmt.Sprintf(`[data-id="%d"]`, id), v.todoList)
}

// itemID recovers the id of the list item enclosing el.
func itemID(el *dom.Element) (int, bool) {
	li := dom.ParentWithTag(el, "li")
	if li == nil {
		return 0, false
	}
	id, err := strconv.Atoi(li.Dataset("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func displayFor(visible bool) string {
	if visible {
		return "block"
	}
	return "none"
}
