package view

import (
	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/logging"
	"github.com/atomicstack/todo-popup/internal/logging/events"
)

const selectorEditInput = "li ." + classEdit

func (v *View) editItem(id int, title string) {
	li := v.item(id)
	if li == nil {
		events.View.MissingItem("editItem", id)
		return
	}
	li.AddClass(classEditing)

	input := v.doc.QueryOne("input."+classEdit, li)
	if input == nil {
		input = v.doc.CreateElement("input")
		input.SetClassName(classEdit)
		li.AppendChild(input)
	}
	// A reused input may still carry the flag from an earlier Escape.
	input.RemoveAttr("data-" + datasetCanceled)
	input.Focus()
	input.SetValue(title)
}

func (v *View) editItemDone(id int, title string) {
	li := v.item(id)
	if li == nil {
		events.View.MissingItem("editItemDone", id)
		return
	}
	if input := v.doc.QueryOne("input."+classEdit, li); input != nil {
		if err := li.RemoveChild(input); err != nil {
			logging.Error(err)
		}
	}
	li.RemoveClass(classEditing)
	for _, label := range v.doc.QueryAll("label", li) {
		label.SetTextContent(title)
	}
}

func canceled(input *dom.Element) bool {
	return input.Dataset(datasetCanceled) == "true"
}

func (v *View) bindItemEditDone(handler func(ItemTitle)) {
	dom.Delegate(v.todoList, selectorEditInput, dom.EventBlur, func(input *dom.Element, _ *dom.Event) {
		if canceled(input) {
			return
		}
		id, ok := itemID(input)
		if !ok {
			return
		}
		payload := ItemTitle{ID: id, Title: input.Value()}
		events.View.Emit(EventItemEditDone.String(), payload)
		handler(payload)
	})
	dom.Delegate(v.todoList, selectorEditInput, dom.EventKeyPress, func(input *dom.Element, ev *dom.Event) {
		if ev.Key == dom.KeyEnter {
			// Behave like a submitted form: losing focus commits the edit.
			input.Blur()
		}
	})
}

func (v *View) bindItemEditCancel(handler func(ItemRef)) {
	dom.Delegate(v.todoList, selectorEditInput, dom.EventKeyUp, func(input *dom.Element, ev *dom.Event) {
		if ev.Key != dom.KeyEscape {
			return
		}
		// The flag must be set before blurring so the commit path sees it.
		input.SetDataset(datasetCanceled, "true")
		input.Blur()
		id, ok := itemID(input)
		if !ok {
			return
		}
		payload := ItemRef{ID: id}
		events.View.Emit(EventItemEditCancel.String(), payload)
		handler(payload)
	})
}
