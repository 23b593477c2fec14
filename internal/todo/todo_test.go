package todo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"", FilterAll, true},
		{"#/", FilterAll, true},
		{"all", FilterAll, true},
		{"#/active", FilterActive, true},
		{"Active", FilterActive, true},
		{"#/completed", FilterCompleted, true},
		{"completed/", FilterCompleted, true},
		{"#/done", FilterAll, false},
	}
	for _, tc := range cases {
		got, ok := ParseFilter(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseFilter(%q): expected (%q, %v), got (%q, %v)", tc.in, tc.want, tc.ok, got, ok)
		}
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	items := []Item{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b", Completed: true},
		{ID: 3, Title: "c"},
	}
	if diff := cmp.Diff(items, FilterAll.Apply(items)); diff != "" {
		t.Fatalf("unexpected all (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Item{items[0], items[2]}, FilterActive.Apply(items)); diff != "" {
		t.Fatalf("unexpected active (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Item{items[1]}, FilterCompleted.Apply(items)); diff != "" {
		t.Fatalf("unexpected completed (-want +got):\n%s", diff)
	}
	if FilterAll.String() != "all" || FilterActive.String() != "active" {
		t.Fatalf("unexpected filter names %q %q", FilterAll.String(), FilterActive.String())
	}
}

func TestStoreAddAssignsIncreasingIDs(t *testing.T) {
	s := NewStore()
	a := s.Add("a")
	b := s.Add("b")
	s.Remove(b.ID)
	c := s.Add("c")
	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Fatalf("expected ids 1,2,3 got %d,%d,%d", a.ID, b.ID, c.ID)
	}
	want := []Item{{ID: 1, Title: "a"}, {ID: 3, Title: "c"}}
	if diff := cmp.Diff(want, s.Items()); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestStoreItemsAreCopies(t *testing.T) {
	s := NewStore()
	s.Add("a")
	items := s.Items()
	items[0].Title = "mutated"
	if got, _ := s.Find(1); got.Title != "a" {
		t.Fatalf("expected store unaffected by caller mutation, got %q", got.Title)
	}
}

func TestStoreUpdateAndFind(t *testing.T) {
	s := NewStore()
	item := s.Add("a")
	item.Title = "b"
	item.Completed = true
	if !s.Update(item) {
		t.Fatalf("expected update to succeed")
	}
	if s.Update(Item{ID: 99}) {
		t.Fatalf("expected update of unknown id to fail")
	}
	got, ok := s.Find(item.ID)
	if !ok || got != item {
		t.Fatalf("expected %+v, got %+v (ok=%v)", item, got, ok)
	}
	if _, ok := s.Find(99); ok {
		t.Fatalf("expected unknown id not found")
	}
	if s.Remove(99) {
		t.Fatalf("expected remove of unknown id to fail")
	}
}

func TestStoreRemoveCompletedAndCounts(t *testing.T) {
	s := NewStore()
	s.Add("a")
	b := s.Add("b")
	c := s.Add("c")
	for _, item := range []Item{b, c} {
		item.Completed = true
		s.Update(item)
	}
	if diff := cmp.Diff(Counts{Total: 3, Active: 1, Completed: 2}, s.Counts()); diff != "" {
		t.Fatalf("unexpected counts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, s.RemoveCompleted()); diff != "" {
		t.Fatalf("unexpected removed ids (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Counts{Total: 1, Active: 1}, s.Counts()); diff != "" {
		t.Fatalf("unexpected counts (-want +got):\n%s", diff)
	}
	if removed := s.RemoveCompleted(); len(removed) != 0 {
		t.Fatalf("expected nothing removed, got %v", removed)
	}
}

func TestStoreSetAllCompletedReturnsChanged(t *testing.T) {
	s := NewStore()
	s.Add("a")
	b := s.Add("b")
	b.Completed = true
	s.Update(b)

	changed := s.SetAllCompleted(true)
	if diff := cmp.Diff([]Item{{ID: 1, Title: "a", Completed: true}}, changed); diff != "" {
		t.Fatalf("unexpected changed items (-want +got):\n%s", diff)
	}
	if changed := s.SetAllCompleted(true); len(changed) != 0 {
		t.Fatalf("expected no changes, got %v", changed)
	}
	if got := s.SetAllCompleted(false); len(got) != 2 {
		t.Fatalf("expected both items to change, got %v", got)
	}
}
