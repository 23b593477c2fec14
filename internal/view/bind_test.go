package view

import (
	"testing"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/testutil"
	"github.com/atomicstack/todo-popup/internal/todo"
	"github.com/google/go-cmp/cmp"
)

// bindAll records every semantic event the view emits.
func bindAll(v *View, r *testutil.Recorder) {
	v.Bind(OnNewTodo(func(title string) { r.Record("newTodo", title) }))
	v.Bind(OnRemoveCompleted(r.Func("removeCompleted")))
	v.Bind(OnToggleAll(func(p ToggleAllPayload) { r.Record("toggleAll", p) }))
	v.Bind(OnItemEdit(func(p ItemRef) { r.Record("itemEdit", p) }))
	v.Bind(OnItemRemove(func(p ItemRef) { r.Record("itemRemove", p) }))
	v.Bind(OnItemToggle(func(p ItemToggle) { r.Record("itemToggle", p) }))
	v.Bind(OnItemEditDone(func(p ItemTitle) { r.Record("itemEditDone", p) }))
	v.Bind(OnItemEditCancel(func(p ItemRef) { r.Record("itemEditCancel", p) }))
}

func TestNewTodoReceivesRawValue(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	doc.Change(testutil.MustQuery(t, doc, ".new-todo", nil), "  Buy milk ")
	want := []testutil.Call{{Name: "newTodo", Payload: "  Buy milk "}}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestToggleAllAndRemoveCompleted(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	toggleAll := testutil.MustQuery(t, doc, ".toggle-all", nil)
	doc.Click(toggleAll)
	doc.Click(toggleAll)
	doc.Click(testutil.MustQuery(t, doc, ".clear-completed", nil))
	want := []testutil.Call{
		{Name: "toggleAll", Payload: ToggleAllPayload{Completed: true}},
		{Name: "toggleAll", Payload: ToggleAllPayload{Completed: false}},
		{Name: "removeCompleted"},
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestItemBindingsSurviveRerender(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	// Items rendered after binding are still covered.
	showItems(v, todo.Item{ID: 4, Title: "x"}, todo.Item{ID: 5, Title: "y", Completed: true})

	second := testutil.MustQuery(t, doc, `[data-id="5"]`, nil)
	doc.Click(testutil.MustQuery(t, doc, ".toggle", second))
	doc.DoubleClick(testutil.MustQuery(t, doc, "label", second))
	doc.Click(testutil.MustQuery(t, doc, ".destroy", second))

	showItems(v, todo.Item{ID: 6, Title: "z"})
	doc.Click(testutil.MustQuery(t, doc, ".toggle", nil))

	want := []testutil.Call{
		{Name: "itemToggle", Payload: ItemToggle{ID: 5, Completed: false}},
		{Name: "itemEdit", Payload: ItemRef{ID: 5}},
		{Name: "itemRemove", Payload: ItemRef{ID: 5}},
		{Name: "itemToggle", Payload: ItemToggle{ID: 6, Completed: true}},
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestClicksOutsideItemsAreIgnored(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	showItems(v, todo.Item{ID: 1, Title: "a"})
	doc.Click(testutil.MustQuery(t, doc, ".todo-list", nil))
	doc.Click(testutil.MustQuery(t, doc, ".todo-list li", nil))
	doc.DoubleClick(testutil.MustQuery(t, doc, ".todo-count", nil))
	if len(r.Calls()) != 0 {
		t.Fatalf("expected no semantic events, got %v", r.Names())
	}
}

func startEdit(t *testing.T, v *View, doc *dom.Document, id int, title string) *dom.Element {
	t.Helper()
	v.Render(EditItem{ID: id, Title: title})
	return testutil.MustQuery(t, doc, "li .edit", nil)
}

func TestEnterCommitsOnce(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	showItems(v, todo.Item{ID: 1, Title: "Buy milk"})

	input := startEdit(t, v, doc, 1, "Buy milk")
	input.SetValue("Buy oat milk")
	doc.KeyPress(input, dom.KeyEnter)

	want := []testutil.Call{{Name: "itemEditDone", Payload: ItemTitle{ID: 1, Title: "Buy oat milk"}}}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
	if doc.ActiveElement() != nil {
		t.Fatalf("expected edit input blurred")
	}
}

func TestOtherKeysDoNotCommit(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	showItems(v, todo.Item{ID: 1, Title: "a"})
	input := startEdit(t, v, doc, 1, "a")
	doc.KeyPress(input, "a")
	doc.KeyUp(input, dom.KeyEnter)
	if len(r.Calls()) != 0 {
		t.Fatalf("expected no events, got %v", r.Names())
	}
	if doc.ActiveElement() != input {
		t.Fatalf("expected edit input still focused")
	}
}

func TestEscapeCancelsWithoutCommit(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	showItems(v, todo.Item{ID: 1, Title: "Buy milk"})

	input := startEdit(t, v, doc, 1, "Buy milk")
	input.SetValue("typo")
	doc.KeyUp(input, dom.KeyEscape)

	want := []testutil.Call{{Name: "itemEditCancel", Payload: ItemRef{ID: 1}}}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
	if input.Dataset("iscanceled") != "true" {
		t.Fatalf("expected cancel flag on the input")
	}
}

func TestBlurElsewhereCommits(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	showItems(v, todo.Item{ID: 1, Title: "a"}, todo.Item{ID: 2, Title: "b"})

	input := startEdit(t, v, doc, 2, "b")
	input.SetValue("bee")
	testutil.MustQuery(t, doc, ".new-todo", nil).Focus()

	want := []testutil.Call{{Name: "itemEditDone", Payload: ItemTitle{ID: 2, Title: "bee"}}}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestEachEditSessionFiresExactlyOneOutcome(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	// Emulate the controller: both outcomes end the session.
	v.Bind(OnItemEditDone(func(p ItemTitle) { v.Render(EditItemDone{ID: p.ID, Title: p.Title}) }))
	v.Bind(OnItemEditCancel(func(p ItemRef) { v.Render(EditItemDone{ID: p.ID, Title: "a"}) }))
	showItems(v, todo.Item{ID: 1, Title: "a"})

	input := startEdit(t, v, doc, 1, "a")
	doc.KeyUp(input, dom.KeyEscape)
	input = startEdit(t, v, doc, 1, "a")
	if input.Dataset("iscanceled") != "" {
		t.Fatalf("expected a fresh input without the cancel flag")
	}
	doc.KeyPress(input, dom.KeyEnter)

	if diff := cmp.Diff([]string{"itemEditCancel", "itemEditDone"}, r.Names()); diff != "" {
		t.Fatalf("unexpected outcomes (-want +got):\n%s", diff)
	}
	if doc.QueryOne("li .edit", nil) != nil {
		t.Fatalf("expected no edit input left behind")
	}
}

func TestReenteringEditAfterEscapeStartsFreshSession(t *testing.T) {
	v, doc := newTestView(t)
	var r testutil.Recorder
	bindAll(v, &r)
	showItems(v, todo.Item{ID: 1, Title: "a"})

	input := startEdit(t, v, doc, 1, "a")
	doc.KeyUp(input, dom.KeyEscape)
	r.Reset()

	v.Render(EditItem{ID: 1, Title: "a"})
	if again := testutil.MustQuery(t, doc, "input.edit", nil); again != input {
		t.Fatalf("expected the existing edit input to be reused")
	}
	if input.HasAttr("data-iscanceled") {
		t.Fatalf("expected cancel flag cleared, got %q", input.Dataset("iscanceled"))
	}
	input.SetValue("b")
	doc.KeyPress(input, dom.KeyEnter)

	want := []testutil.Call{{Name: "itemEditDone", Payload: ItemTitle{ID: 1, Title: "b"}}}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}
