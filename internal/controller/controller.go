// Package controller connects the task store to the view: it subscribes to
// every semantic view event, applies the change to the store and issues the
// render commands that bring the UI tree back in line.
package controller

import (
	"strings"

	"github.com/atomicstack/todo-popup/internal/logging/events"
	"github.com/atomicstack/todo-popup/internal/todo"
	"github.com/atomicstack/todo-popup/internal/view"
)

// View is the part of *view.View the controller drives.
type View interface {
	Render(cmd view.Command)
	Bind(b view.Binding)
}

// Controller owns the task data and decides when to render.
type Controller struct {
	view  View
	store todo.Store

	active    todo.Filter
	shown     bool
	lastShown todo.Filter
}

// New binds every view event to the controller.
func New(v View, store todo.Store) *Controller {
	c := &Controller{view: v, store: store}
	v.Bind(view.OnNewTodo(c.AddItem))
	v.Bind(view.OnItemEdit(func(ref view.ItemRef) { c.EditItem(ref.ID) }))
	v.Bind(view.OnItemEditDone(func(p view.ItemTitle) { c.EditItemSave(p.ID, p.Title) }))
	v.Bind(view.OnItemEditCancel(func(ref view.ItemRef) { c.EditItemCancel(ref.ID) }))
	v.Bind(view.OnItemRemove(func(ref view.ItemRef) { c.RemoveItem(ref.ID) }))
	v.Bind(view.OnItemToggle(func(p view.ItemToggle) { c.ToggleComplete(p.ID, p.Completed) }))
	v.Bind(view.OnRemoveCompleted(c.RemoveCompletedItems))
	v.Bind(view.OnToggleAll(func(p view.ToggleAllPayload) { c.ToggleAll(p.Completed) }))
	return c
}

// Filter returns the active filter.
func (c *Controller) Filter() todo.Filter { return c.active }

// SetView switches to the filter named by route ("#/", "#/active",
// "#/completed" or a bare filter name). Unknown routes show everything.
func (c *Controller) SetView(route string) {
	filter, _ := todo.ParseFilter(route)
	c.active = filter
	c.filter(false)
	c.view.Render(view.SetFilter{Filter: filter})
}

// AddItem stores a new task. Blank titles are ignored.
func (c *Controller) AddItem(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	c.store.Add(title)
	c.view.Render(view.ClearNewTodo{})
	c.filter(true)
}

// EditItem starts editing the item.
func (c *Controller) EditItem(id int) {
	item, ok := c.store.Find(id)
	if !ok {
		return
	}
	c.view.Render(view.EditItem{ID: id, Title: item.Title})
}

// EditItemSave commits an edit. An empty title removes the item.
func (c *Controller) EditItemSave(id int, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		c.RemoveItem(id)
		return
	}
	item, ok := c.store.Find(id)
	if !ok {
		return
	}
	item.Title = title
	c.store.Update(item)
	c.view.Render(view.EditItemDone{ID: id, Title: title})
}

// EditItemCancel ends editing and restores the stored title.
func (c *Controller) EditItemCancel(id int) {
	item, ok := c.store.Find(id)
	if !ok {
		return
	}
	c.view.Render(view.EditItemDone{ID: id, Title: item.Title})
}

// RemoveItem deletes the item.
func (c *Controller) RemoveItem(id int) {
	c.store.Remove(id)
	c.view.Render(view.RemoveItem{ID: id})
	c.filter(false)
}

// RemoveCompletedItems deletes every completed item.
func (c *Controller) RemoveCompletedItems() {
	for _, id := range c.store.RemoveCompleted() {
		c.view.Render(view.RemoveItem{ID: id})
	}
	c.filter(false)
}

// ToggleComplete records the completed state of one item.
func (c *Controller) ToggleComplete(id int, completed bool) {
	c.toggle(id, completed)
	c.filter(false)
}

// ToggleAll sets every item to completed.
func (c *Controller) ToggleAll(completed bool) {
	for _, item := range c.store.SetAllCompleted(completed) {
		c.view.Render(view.ElementComplete{ID: item.ID, Completed: completed})
	}
	c.filter(false)
}

func (c *Controller) toggle(id int, completed bool) {
	item, ok := c.store.Find(id)
	if !ok {
		return
	}
	item.Completed = completed
	c.store.Update(item)
	c.view.Render(view.ElementComplete{ID: id, Completed: completed})
}

func (c *Controller) updateCount() {
	counts := c.store.Counts()
	c.view.Render(view.UpdateElementCount{Count: counts.Active})
	c.view.Render(view.ClearCompletedButton{Completed: counts.Completed, Visible: counts.Completed > 0})
	c.view.Render(view.ToggleAll{Checked: counts.Total > 0 && counts.Completed == counts.Total})
	c.view.Render(view.ContentBlockVisibility{Visible: counts.Total > 0})
}

// filter refreshes the counters and, unless the unfiltered list is already on
// screen and the change cannot have hidden anything, re-renders the list.
func (c *Controller) filter(force bool) {
	c.updateCount()
	if force || !c.shown || c.lastShown != todo.FilterAll || c.active != todo.FilterAll {
		items := c.active.Apply(c.store.Items())
		c.view.Render(view.ShowEntries{Items: items})
		events.Todo.Filter(c.active.String(), len(items))
	}
	c.shown = true
	c.lastShown = c.active
}
