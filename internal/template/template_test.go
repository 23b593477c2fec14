package template

import (
	"strings"
	"testing"

	"github.com/atomicstack/todo-popup/internal/todo"
)

func TestShowRendersItems(t *testing.T) {
	tmpl := New()
	got := tmpl.Show([]todo.Item{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Walk dog", Completed: true},
	})
	want := `<li data-id="1"><div class="view"><input class="toggle" type="checkbox"><label>Buy milk</label><button class="destroy"></button></div></li>` +
		`<li data-id="2" class="completed"><div class="view"><input class="toggle" type="checkbox" checked><label>Walk dog</label><button class="destroy"></button></div></li>`
	if got != want {
		t.Fatalf("unexpected markup\nexpected: %s\nactual:   %s", want, got)
	}
}

func TestShowEscapesTitles(t *testing.T) {
	got := New().Show([]todo.Item{{ID: 1, Title: `<script>alert("x")</script>`}})
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected title to be escaped, got %s", got)
	}
}

func TestShowEmpty(t *testing.T) {
	if got := New().Show(nil); got != "" {
		t.Fatalf("expected empty markup, got %q", got)
	}
}

func TestItemCounter(t *testing.T) {
	tmpl := New()
	cases := map[int]string{
		0: "<strong>0</strong> items left",
		1: "<strong>1</strong> item left",
		2: "<strong>2</strong> items left",
	}
	for n, want := range cases {
		if got := tmpl.ItemCounter(n); got != want {
			t.Fatalf("expected %q for %d, got %q", want, n, got)
		}
	}
}

func TestClearCompletedButton(t *testing.T) {
	tmpl := New()
	if got := tmpl.ClearCompletedButton(0); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
	if got := tmpl.ClearCompletedButton(3); got != "Clear completed" {
		t.Fatalf("expected label, got %q", got)
	}
}

func TestIndexHasRegions(t *testing.T) {
	for _, marker := range []string{`class="new-todo"`, `class="todo-list"`, `class="todo-count"`, `class="clear-completed"`, `class="main"`, `class="footer"`, `class="toggle-all"`, `href="#/active"`} {
		if !strings.Contains(Index, marker) {
			t.Fatalf("expected page skeleton to contain %s", marker)
		}
	}
}
