package todo

import "github.com/atomicstack/todo-popup/internal/logging/events"

// Store holds the task list. The controller is its only writer.
type Store interface {
	Items() []Item
	Find(id int) (Item, bool)
	Add(title string) Item
	Update(item Item) bool
	Remove(id int) bool
	RemoveCompleted() []int
	SetAllCompleted(completed bool) []Item
	Counts() Counts
}

type memoryStore struct {
	items  []Item
	nextID int
}

// NewStore returns an empty in-memory store. Ids start at 1 and are never reused.
func NewStore() Store {
	return &memoryStore{nextID: 1}
}

func (s *memoryStore) Items() []Item {
	return cloneItems(s.items)
}

func (s *memoryStore) Find(id int) (Item, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	return Item{}, false
}

func (s *memoryStore) Add(title string) Item {
	item := Item{ID: s.nextID, Title: title}
	s.nextID++
	s.items = append(s.items, item)
	events.Todo.Added(item.ID, item.Title)
	return item
}

func (s *memoryStore) Update(item Item) bool {
	idx := s.indexOf(item.ID)
	if idx < 0 {
		return false
	}
	s.items[idx] = item
	events.Todo.Updated(item.ID, item.Title, item.Completed)
	return true
}

func (s *memoryStore) Remove(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	events.Todo.Removed([]int{id})
	return true
}

func (s *memoryStore) RemoveCompleted() []int {
	var removed []int
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Completed {
			removed = append(removed, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if len(removed) > 0 {
		events.Todo.Removed(removed)
	}
	return removed
}

// SetAllCompleted marks every item and returns the ones whose state changed.
func (s *memoryStore) SetAllCompleted(completed bool) []Item {
	var changed []Item
	for i := range s.items {
		if s.items[i].Completed == completed {
			continue
		}
		s.items[i].Completed = completed
		changed = append(changed, s.items[i])
		events.Todo.Updated(s.items[i].ID, s.items[i].Title, completed)
	}
	return changed
}

func (s *memoryStore) Counts() Counts {
	c := Counts{Total: len(s.items)}
	for _, item := range s.items {
		if item.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

func (s *memoryStore) indexOf(id int) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
