package view

import (
	"fmt"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging"
	"github.com/atomicstack/todo-popup/internal/logging/events"
	"github.com/atomicstack/todo-popup/internal/todo"
)

// Command is one UI mutation. The set of commands is closed: only the types in
// this file implement it.
type Command interface {
	Name() string
	command()
}

// ShowEntries replaces the whole list with markup for Items.
type ShowEntries struct{ Items []todo.Item }

// RemoveItem removes one list item.
type RemoveItem struct{ ID int }

// UpdateElementCount rewrites the remaining-items counter.
type UpdateElementCount struct{ Count int }

// ClearCompletedButton relabels and shows or hides the clear-completed button.
type ClearCompletedButton struct {
	Completed int
	Visible   bool
}

// ContentBlockVisibility shows or hides the main section and footer together.
type ContentBlockVisibility struct{ Visible bool }

// ToggleAll sets the toggle-all checkbox.
type ToggleAll struct{ Checked bool }

// SetFilter marks the filter link for Filter as selected.
type SetFilter struct{ Filter todo.Filter }

// ClearNewTodo empties the new-item input.
type ClearNewTodo struct{}

// ElementComplete sets an item's completed class and checkbox.
type ElementComplete struct {
	ID        int
	Completed bool
}

// EditItem starts an editing session on an item.
type EditItem struct {
	ID    int
	Title string
}

// EditItemDone ends an editing session and relabels the item.
type EditItemDone struct {
	ID    int
	Title string
}

func (ShowEntries) Name() string            { return "showEntries" }
func (RemoveItem) Name() string             { return "removeItem" }
func (UpdateElementCount) Name() string     { return "updateElementCount" }
func (ClearCompletedButton) Name() string   { return "clearCompletedButton" }
func (ContentBlockVisibility) Name() string { return "contentBlockVisibility" }
func (ToggleAll) Name() string              { return "toggleAll" }
func (SetFilter) Name() string              { return "setFilter" }
func (ClearNewTodo) Name() string           { return "clearNewTodo" }
func (ElementComplete) Name() string        { return "elementComplete" }
func (EditItem) Name() string               { return "editItem" }
func (EditItemDone) Name() string           { return "editItemDone" }

func (ShowEntries) command()            {}
func (RemoveItem) command()             {}
func (UpdateElementCount) command()     {}
func (ClearCompletedButton) command()   {}
func (ContentBlockVisibility) command() {}
func (ToggleAll) command()              {}
func (SetFilter) command()              {}
func (ClearNewTodo) command()           {}
func (ElementComplete) command()        {}
func (EditItem) command()               {}
func (EditItemDone) command()           {}

// Render applies cmd to the UI tree. Commands aimed at an item that is not in
// the list are ignored. A command type outside this package's set panics.
func (v *View) Render(cmd Command) {
	if cmd == nil {
		panic("view: nil render command")
	}
	events.View.Render(cmd.Name(), cmd)
	switch c := cmd.(type) {
	case ShowEntries:
		v.setMarkup(v.todoList, v.template.Show(c.Items))
	case RemoveItem:
		v.removeItem(c.ID)
	case UpdateElementCount:
		v.setMarkup(v.todoItemCount, v.template.ItemCounter(c.Count))
	case ClearCompletedButton:
		v.setMarkup(v.clearCompleted, v.template.ClearCompletedButton(c.Completed))
		v.clearCompleted.SetDisplay(displayFor(c.Visible))
	case ContentBlockVisibility:
		v.main.SetDisplay(displayFor(c.Visible))
		v.footer.SetDisplay(displayFor(c.Visible))
	case ToggleAll:
		v.toggleAll.SetChecked(c.Checked)
	case SetFilter:
		v.setFilter(c.Filter)
	case ClearNewTodo:
		v.newTodo.SetValue("")
	case ElementComplete:
		v.elementComplete(c.ID, c.Completed)
	case EditItem:
		v.editItem(c.ID, c.Title)
	case EditItemDone:
		v.editItemDone(c.ID, c.Title)
	default:
		panic(fmt.Sprintf("view: unknown render command %T", cmd))
	}
}

func (v *View) setMarkup(el *dom.Element, markup string) {
	if err := el.SetInnerHTML(markup); err != nil {
		logging.Error(err)
	}
}

func (v *View) removeItem(id int) {
	li := v.item(id)
	if li == nil {
		events.View.MissingItem("removeItem", id)
		return
	}
	if err := v.todoList.RemoveChild(li); err != nil {
		logging.Error(fmt.Errorf("remove item %d: %w", id, err))
	}
}

func (v *View) setFilter(filter todo.Filter) {
	target := v.doc.QueryOne(fmt.Sprintf(`.filters [href="#/%s"]`, string(filter)), nil)
	if target == nil {
		events.View.MissingFilter(filter.String())
		return
	}
	for _, selected := range v.doc.QueryAll(".filters .selected", nil) {
		selected.RemoveClass(classSelected)
	}
	target.AddClass(classSelected)
}

func (v *View) elementComplete(id int, completed bool) {
	li := v.item(id)
	if li == nil {
		events.View.MissingItem("elementComplete", id)
		return
	}
	if completed {
		li.AddClass(classCompleted)
	} else {
		li.RemoveClass(classCompleted)
	}
	// The toggle may have been flipped by the controller rather than a click.
	if toggle := v.doc.QueryOne("input", li); toggle != nil {
		toggle.SetChecked(completed)
	}
}
