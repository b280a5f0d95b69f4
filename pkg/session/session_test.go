package session

import (
	"context"
	"testing"
	"time"

	"foodorder/pkg/cart"
	"foodorder/pkg/catalog"
	"foodorder/pkg/logger"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestRegistry(t *testing.T) (*Registry, *MemoryTracker, *clock) {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	clk := &clock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	tracker := NewMemoryTracker()
	tracker.now = clk.now
	r := NewRegistry(c, tracker, logger.NewNop(), 30*time.Minute)
	r.now = clk.now
	ids := 0
	r.newID = func() string {
		ids++
		return "s" + string(rune('0'+ids))
	}
	return r, tracker, clk
}

func TestResolveCreatesAndReuses(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)

	s, created, err := r.Resolve(ctx, "")
	if err != nil || !created || s.ID != "s1" {
		t.Fatalf("resolve blank: %v created=%v id=%q", err, created, s.ID)
	}
	s.Cart.Add(cart.Product{ID: "1", Title: "X", Price: 100})

	again, created, err := r.Resolve(ctx, "s1")
	if err != nil || created || again != s {
		t.Fatalf("expected the same session back: %v created=%v", err, created)
	}
	if again.Cart.Len() != 1 {
		t.Fatalf("cart lost between requests")
	}
}

func TestResolveUnknownID(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)

	s, created, err := r.Resolve(ctx, "forged")
	if err != nil || !created {
		t.Fatalf("resolve: %v created=%v", err, created)
	}
	if s.ID == "forged" {
		t.Fatal("an id the tracker never issued was accepted")
	}
}

func TestResolveTrackedIDAfterRestart(t *testing.T) {
	ctx := context.Background()
	r, tracker, _ := newTestRegistry(t)
	if err := tracker.Touch(ctx, "kept", time.Hour); err != nil {
		t.Fatal(err)
	}

	s, created, err := r.Resolve(ctx, "kept")
	if err != nil || !created || s.ID != "kept" {
		t.Fatalf("resolve: %v created=%v id=%q", err, created, s.ID)
	}
	if s.Cart.Len() != 0 {
		t.Fatal("expected an empty cart for a session this process never saw")
	}
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	r, tracker, clk := newTestRegistry(t)

	old, _, _ := r.Resolve(ctx, "")
	clk.t = clk.t.Add(20 * time.Minute)
	fresh, _, _ := r.Resolve(ctx, "")

	if n := r.Sweep(clk.t.Add(15 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 expired session, got %d", n)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", r.Len())
	}
	if _, created, _ := r.Resolve(ctx, fresh.ID); created {
		t.Fatal("fresh session was swept")
	}

	clk.t = clk.t.Add(time.Hour)
	if alive, _ := tracker.Alive(ctx, old.ID); alive {
		t.Fatal("tracker still reports an expired id")
	}
	if n := tracker.Prune(clk.t); n != 2 {
		t.Fatalf("expected 2 pruned ids, got %d", n)
	}
}
