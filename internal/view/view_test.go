package view

import (
	"strings"
	"testing"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/template"
	"github.com/atomicstack/todo-popup/internal/testutil"
	"github.com/atomicstack/todo-popup/internal/todo"
	"github.com/google/go-cmp/cmp"
)

func newTestView(t *testing.T) (*View, *dom.Document) {
	t.Helper()
	doc := testutil.NewDocument(t)
	v, err := New(doc, template.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v, doc
}

func showItems(v *View, items ...todo.Item) {
	v.Render(ShowEntries{Items: items})
}

func itemIDs(doc *dom.Document) []string {
	var ids []string
	for _, li := range doc.QueryAll(".todo-list li", nil) {
		ids = append(ids, li.Dataset("id"))
	}
	return ids
}

func TestNewRequiresEveryRegion(t *testing.T) {
	doc := dom.MustParse(`<html><body><ul class="todo-list"></ul></body></html>`)
	if _, err := New(doc, template.New()); err == nil {
		t.Fatalf("expected error for missing regions")
	}
	if _, err := New(nil, template.New()); err == nil {
		t.Fatalf("expected error for nil document")
	}
	if _, err := New(testutil.NewDocument(t), nil); err == nil {
		t.Fatalf("expected error for nil template")
	}
}

func TestShowEntriesReplacesList(t *testing.T) {
	v, doc := newTestView(t)
	showItems(v, todo.Item{ID: 1, Title: "a"}, todo.Item{ID: 2, Title: "b", Completed: true})
	showItems(v, todo.Item{ID: 3, Title: "<b>bold</b>"})

	if diff := cmp.Diff([]string{"3"}, itemIDs(doc)); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	label := testutil.MustQuery(t, doc, ".todo-list label", nil)
	if label.TextContent() != "<b>bold</b>" {
		t.Fatalf("expected escaped title rendered as text, got %q", label.TextContent())
	}
	if doc.QueryOne(".todo-list b", nil) != nil {
		t.Fatalf("expected no markup injected from the title")
	}
}

func TestShowEntriesMarksCompletedItems(t *testing.T) {
	v, doc := newTestView(t)
	showItems(v, todo.Item{ID: 1, Title: "a"}, todo.Item{ID: 2, Title: "b", Completed: true})
	first := testutil.MustQuery(t, doc, `[data-id="1"]`, nil)
	second := testutil.MustQuery(t, doc, `[data-id="2"]`, nil)
	if first.HasClass("completed") || testutil.MustQuery(t, doc, ".toggle", first).Checked() {
		t.Fatalf("expected active item unchecked")
	}
	if !second.HasClass("completed") || !testutil.MustQuery(t, doc, ".toggle", second).Checked() {
		t.Fatalf("expected completed item checked")
	}
}

func TestRemoveItem(t *testing.T) {
	v, doc := newTestView(t)
	showItems(v, todo.Item{ID: 1, Title: "a"}, todo.Item{ID: 2, Title: "b"})
	v.Render(RemoveItem{ID: 1})
	v.Render(RemoveItem{ID: 42})
	if diff := cmp.Diff([]string{"2"}, itemIDs(doc)); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestCounterAndClearCompleted(t *testing.T) {
	v, doc := newTestView(t)
	v.Render(UpdateElementCount{Count: 1})
	counter := testutil.MustQuery(t, doc, ".todo-count", nil)
	if counter.TextContent() != "1 item left" {
		t.Fatalf("expected singular counter, got %q", counter.TextContent())
	}
	v.Render(UpdateElementCount{Count: 3})
	if counter.TextContent() != "3 items left" {
		t.Fatalf("expected plural counter, got %q", counter.TextContent())
	}

	button := testutil.MustQuery(t, doc, ".clear-completed", nil)
	v.Render(ClearCompletedButton{Completed: 2, Visible: true})
	if button.Hidden() || button.TextContent() != "Clear completed" {
		t.Fatalf("expected visible clear button, got hidden=%v text=%q", button.Hidden(), button.TextContent())
	}
	v.Render(ClearCompletedButton{Completed: 0, Visible: false})
	if !button.Hidden() || button.TextContent() != "" {
		t.Fatalf("expected hidden empty clear button, got hidden=%v text=%q", button.Hidden(), button.TextContent())
	}
}

func TestContentBlockVisibility(t *testing.T) {
	v, doc := newTestView(t)
	main := testutil.MustQuery(t, doc, ".main", nil)
	footer := testutil.MustQuery(t, doc, ".footer", nil)
	v.Render(ContentBlockVisibility{Visible: false})
	if main.Display() != "none" || footer.Display() != "none" {
		t.Fatalf("expected both regions hidden, got %q %q", main.Display(), footer.Display())
	}
	v.Render(ContentBlockVisibility{Visible: true})
	if main.Display() != "block" || footer.Display() != "block" {
		t.Fatalf("expected both regions shown, got %q %q", main.Display(), footer.Display())
	}
}

func TestToggleAllAndClearNewTodo(t *testing.T) {
	v, doc := newTestView(t)
	v.Render(ToggleAll{Checked: true})
	if !testutil.MustQuery(t, doc, ".toggle-all", nil).Checked() {
		t.Fatalf("expected toggle-all checked")
	}
	input := testutil.MustQuery(t, doc, ".new-todo", nil)
	input.SetValue("draft")
	v.Render(ClearNewTodo{})
	if input.Value() != "" {
		t.Fatalf("expected new-todo cleared, got %q", input.Value())
	}
}

func TestSetFilterSelectsExactlyOneLink(t *testing.T) {
	v, doc := newTestView(t)
	selected := func() []string {
		var hrefs []string
		for _, a := range doc.QueryAll(".filters .selected", nil) {
			hrefs = append(hrefs, a.Attr("href"))
		}
		return hrefs
	}
	v.Render(SetFilter{Filter: todo.FilterActive})
	if diff := cmp.Diff([]string{"#/active"}, selected()); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
	v.Render(SetFilter{Filter: todo.FilterCompleted})
	v.Render(SetFilter{Filter: todo.FilterCompleted})
	if diff := cmp.Diff([]string{"#/completed"}, selected()); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
	v.Render(SetFilter{Filter: todo.Filter("bogus")})
	if diff := cmp.Diff([]string{"#/completed"}, selected()); diff != "" {
		t.Fatalf("expected unknown filter to leave selection alone (-want +got):\n%s", diff)
	}
	v.Render(SetFilter{Filter: todo.FilterAll})
	if diff := cmp.Diff([]string{"#/"}, selected()); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
}

func TestElementComplete(t *testing.T) {
	v, doc := newTestView(t)
	showItems(v, todo.Item{ID: 1, Title: "a"})
	li := testutil.MustQuery(t, doc, `[data-id="1"]`, nil)
	toggle := testutil.MustQuery(t, doc, ".toggle", li)

	v.Render(ElementComplete{ID: 1, Completed: true})
	if !li.HasClass("completed") || !toggle.Checked() {
		t.Fatalf("expected item completed")
	}
	v.Render(ElementComplete{ID: 1, Completed: false})
	if li.HasClass("completed") || toggle.Checked() {
		t.Fatalf("expected item active")
	}
	v.Render(ElementComplete{ID: 9, Completed: true})
}

func TestEditItemAndDone(t *testing.T) {
	v, doc := newTestView(t)
	showItems(v, todo.Item{ID: 1, Title: "a"})
	li := testutil.MustQuery(t, doc, `[data-id="1"]`, nil)

	v.Render(EditItem{ID: 1, Title: "a"})
	input := testutil.MustQuery(t, doc, "input.edit", li)
	if !li.HasClass("editing") {
		t.Fatalf("expected editing class")
	}
	if doc.ActiveElement() != input || input.Value() != "a" {
		t.Fatalf("expected focused edit input holding the title")
	}
	v.Render(EditItem{ID: 1, Title: "a"})
	if n := len(doc.QueryAll("input.edit", li)); n != 1 {
		t.Fatalf("expected one edit input after re-entering, got %d", n)
	}

	v.Render(EditItemDone{ID: 1, Title: "renamed"})
	if doc.QueryOne("input.edit", li) != nil || li.HasClass("editing") {
		t.Fatalf("expected editing session torn down")
	}
	if label := testutil.MustQuery(t, doc, "label", li); label.TextContent() != "renamed" {
		t.Fatalf("expected relabelled item, got %q", label.TextContent())
	}
	if doc.ActiveElement() != nil {
		t.Fatalf("expected focus dropped with the removed input")
	}
}

func TestItemCommandsIgnoreAbsentItems(t *testing.T) {
	v, doc := newTestView(t)
	showItems(v, todo.Item{ID: 1, Title: "a"}, todo.Item{ID: 2, Title: "b", Completed: true})
	list := testutil.MustQuery(t, doc, ".todo-list", nil)
	newTodo := testutil.MustQuery(t, doc, ".new-todo", nil)
	newTodo.Focus()
	before := list.InnerHTML()

	for _, cmd := range []Command{
		RemoveItem{ID: 42},
		ElementComplete{ID: 42, Completed: true},
		EditItem{ID: 42, Title: "x"},
		EditItemDone{ID: 42, Title: "x"},
	} {
		v.Render(cmd)
		if after := list.InnerHTML(); after != before {
			t.Fatalf("expected %T to leave the list untouched, got %q", cmd, after)
		}
		if doc.ActiveElement() != newTodo {
			t.Fatalf("expected %T to leave focus on the new-todo input", cmd)
		}
	}
}

func TestRenderNilPanics(t *testing.T) {
	v, _ := newTestView(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil command")
		}
	}()
	v.Render(nil)
}

func TestBindNilHandlerPanics(t *testing.T) {
	v, _ := newTestView(t)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for nil handler")
		}
		if !strings.Contains(r.(string), "itemToggle") {
			t.Fatalf("expected panic to name the event, got %v", r)
		}
	}()
	var h OnItemToggle
	v.Bind(h)
}

func TestCommandAndEventNames(t *testing.T) {
	cmds := []Command{
		ShowEntries{}, RemoveItem{}, UpdateElementCount{}, ClearCompletedButton{},
		ContentBlockVisibility{}, ToggleAll{}, SetFilter{}, ClearNewTodo{},
		ElementComplete{}, EditItem{}, EditItemDone{},
	}
	seen := map[string]bool{}
	for _, cmd := range cmds {
		if seen[cmd.Name()] {
			t.Fatalf("duplicate command name %q", cmd.Name())
		}
		seen[cmd.Name()] = true
	}
	if EventItemEditCancel.String() != "itemEditCancel" {
		t.Fatalf("expected itemEditCancel, got %q", EventItemEditCancel.String())
	}
	if Event(99).String() != "Event(99)" {
		t.Fatalf("expected fallback name, got %q", Event(99).String())
	}
}
