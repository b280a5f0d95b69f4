package cart

import "sync"

type subscriber struct {
	id int
	fn Listener
}

// Store is the authoritative cart state. Add, Remove and Clear are the only
// ways to mutate it.
type Store struct {
	mu    sync.RWMutex
	items []LineItem

	subMu  sync.Mutex
	subs   []subscriber
	nextID int
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add appends p with quantity 1, or increments the existing line for p.ID.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	if i := s.index(p.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, LineItem{
			ID:        p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Thumbnail: p.Thumbnail,
			Quantity:  1,
		})
	}
	snap := s.snapshot()
	s.mu.Unlock()
	s.notify(snap)
}

// Remove deletes the line with the given ID. Absent IDs are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	snap := s.snapshot()
	s.mu.Unlock()
	s.notify(snap)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = nil
	s.mu.Unlock()
	s.notify([]LineItem{})
}

// Products returns a copy of the line items in insertion order.
func (s *Store) Products() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Get returns the line for id.
func (s *Store) Get(id string) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return LineItem{}, false
	}
	return s.items[i], true
}

// Len is the number of distinct lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Quantity is the number of units across all lines.
func (s *Store) Quantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subscribe registers fn to run after every change. The returned func
// removes it again.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) notify(items []LineItem) {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		out := make([]LineItem, len(items))
		copy(out, items)
		sub.fn(out)
	}
}

// index must be called with mu held.
func (s *Store) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}
