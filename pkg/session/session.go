// Package session keeps one cart and its screens per device.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodorder/pkg/cart"
	"foodorder/pkg/catalog"
	"foodorder/pkg/checkout"
	"foodorder/pkg/logger"
	"foodorder/pkg/screen"
)

// Tracker records which session ids are alive.
type Tracker interface {
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Alive(ctx context.Context, id string) (bool, error)
}

// Session owns the state of one device.
type Session struct {
	ID         string
	Cart       *cart.Store
	Home       *screen.Home
	CartScreen *screen.Cart

	lastSeen time.Time
}

// Close detaches the screens from the cart.
func (s *Session) Close() {
	s.CartScreen.Close()
}

// Registry hands out sessions. Carts live only in this process.
type Registry struct {
	catalog *catalog.Catalog
	tracker Tracker
	log     *logger.Logger
	ttl     time.Duration
	now     func() time.Time
	newID   func() string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(c *catalog.Catalog, tracker Tracker, log *logger.Logger, ttl time.Duration) *Registry {
	return &Registry{
		catalog:  c,
		tracker:  tracker,
		log:      log,
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session for id. A blank or dead id gets a fresh
// session with a new id; an id the tracker still knows but this process
// does not gets a fresh, empty session under the same id.
func (r *Registry) Resolve(ctx context.Context, id string) (*Session, bool, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !ok && id != "" {
		alive, err := r.tracker.Alive(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("checking session: %w", err)
		}
		if !alive {
			id = ""
		}
	}
	if id == "" {
		id = r.newID()
	}
	if err := r.tracker.Touch(ctx, id, r.ttl); err != nil {
		return nil, false, fmt.Errorf("touching session: %w", err)
	}
	if ok {
		return s, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.lastSeen = r.now()
		return s, false, nil
	}
	s = r.newSession(ctx, id)
	r.sessions[id] = s
	return s, true, nil
}

func (r *Registry) newSession(ctx context.Context, id string) *Session {
	store := cart.NewStore()
	s := &Session{
		ID:         id,
		Cart:       store,
		Home:       screen.NewHome(r.catalog, store),
		CartScreen: screen.NewCart(store, checkout.NewService(store, r.log)),
		lastSeen:   r.now(),
	}
	r.log.Debug(ctx, "session created", "session", id)
	return s
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were dropped.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info(ctx, "stopping session sweeper")
			return
		case <-ticker.C:
		}
		now := r.now()
		if n := r.Sweep(now); n > 0 {
			r.log.Info(ctx, "sessions expired", "count", n, "live", r.Len())
		}
		if p, ok := r.tracker.(interface{ Prune(time.Time) int }); ok {
			p.Prune(now)
		}
	}
}

// MemoryTracker keeps session deadlines in process memory.
type MemoryTracker struct {
	mu        sync.RWMutex
	deadlines map[string]time.Time
	now       func() time.Time
}

// NewMemoryTracker creates an empty tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{deadlines: make(map[string]time.Time), now: time.Now}
}

// Touch extends id's deadline by ttl.
func (m *MemoryTracker) Touch(ctx context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deadlines[id] = m.now().Add(ttl)
	return nil
}

// Alive reports whether id's deadline has not passed.
func (m *MemoryTracker) Alive(ctx context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.deadlines[id]
	return ok && m.now().Before(d), nil
}

// Prune forgets ids whose deadline is before now.
func (m *MemoryTracker) Prune(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, d := range m.deadlines {
		if !now.Before(d) {
			delete(m.deadlines, id)
			n++
		}
	}
	return n
}
