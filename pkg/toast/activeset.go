package toast

import "container/list"

type activeEntry struct {
	id     string
	record *Notification
}

// activeSet is the bounded, insertion-ordered collection of currently
// visible notifications. It is not safe for concurrent use on its own; the
// Manager serialises all access behind its mutex (single-writer discipline).
type activeSet struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = oldest, back = newest
}

func newActiveSet(capacity int) *activeSet {
	if capacity < 1 {
		capacity = 1
	}
	return &activeSet{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// insert adds a record and returns any records evicted to restore the
// capacity invariant, oldest first. Inserting an id that is already present
// replaces the record in place without changing its position.
func (s *activeSet) insert(n *Notification) []*Notification {
	if elem, ok := s.items[n.ID]; ok {
		elem.Value.(*activeEntry).record = n
		return nil
	}

	elem := s.order.PushBack(&activeEntry{id: n.ID, record: n})
	s.items[n.ID] = elem

	var evicted []*Notification
	for s.order.Len() > s.capacity {
		evicted = append(evicted, s.evictOldest())
	}
	return evicted
}

// remove deletes the record with the given id and returns it.
// Removing an unknown id is a no-op returning nil.
func (s *activeSet) remove(id string) *Notification {
	elem, ok := s.items[id]
	if !ok {
		return nil
	}

	s.order.Remove(elem)
	delete(s.items, id)
	return elem.Value.(*activeEntry).record
}

func (s *activeSet) get(id string) *Notification {
	elem, ok := s.items[id]
	if !ok {
		return nil
	}
	return elem.Value.(*activeEntry).record
}

// all returns the active records in insertion order.
func (s *activeSet) all() []*Notification {
	out := make([]*Notification, 0, s.order.Len())
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*activeEntry).record)
	}
	return out
}

func (s *activeSet) len() int {
	return s.order.Len()
}

// setCapacity changes the bound, evicting oldest records as needed to
// satisfy it immediately.
func (s *activeSet) setCapacity(capacity int) []*Notification {
	if capacity < 1 {
		capacity = 1
	}
	s.capacity = capacity

	var evicted []*Notification
	for s.order.Len() > s.capacity {
		evicted = append(evicted, s.evictOldest())
	}
	return evicted
}

func (s *activeSet) evictOldest() *Notification {
	elem := s.order.Front()
	entry := elem.Value.(*activeEntry)
	s.order.Remove(elem)
	delete(s.items, entry.id)
	return entry.record
}
