package cart

import (
	"sync"
	"testing"
)

var (
	burger = Product{ID: "1", Title: "X-Tudo Burger", Price: 1000, Thumbnail: "burger.png"}
	coke   = Product{ID: "7", Title: "Coca-Cola", Price: 500, Thumbnail: "coke.png"}
)

func TestAddNewProduct(t *testing.T) {
	s := NewStore()
	s.Add(burger)

	items := s.Products()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", items[0].Quantity)
	}
	if items[0].Title != burger.Title || items[0].Price != burger.Price || items[0].Thumbnail != burger.Thumbnail {
		t.Fatalf("unexpected line: %+v", items[0])
	}
}

func TestAddExistingIncrements(t *testing.T) {
	s := NewStore()
	s.Add(burger)
	s.Add(burger)

	renamed := burger
	renamed.Title = "ignored"
	renamed.Price = 1
	s.Add(renamed)

	items := s.Products()
	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	got := items[0]
	if got.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", got.Quantity)
	}
	if got.Title != burger.Title || got.Price != burger.Price {
		t.Fatalf("fields changed on increment: %+v", got)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add(burger)
	s.Add(coke)
	s.Add(Product{ID: "3", Title: "Combo", Price: 100})

	s.Remove("nope")
	if s.Len() != 3 {
		t.Fatalf("remove of absent id changed the cart: %+v", s.Products())
	}

	s.Remove(coke.ID)
	items := s.Products()
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "3" {
		t.Fatalf("unexpected order after remove: %+v", items)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(burger)
	s.Add(coke)
	s.Clear()
	if got := s.Products(); len(got) != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
	s.Clear()
}

func TestTotal(t *testing.T) {
	s := NewStore()
	s.Add(Product{ID: "a", Price: 10})
	s.Add(Product{ID: "a", Price: 10})
	s.Add(Product{ID: "b", Price: 5})
	s.Add(Product{ID: "b", Price: 5})
	s.Add(Product{ID: "b", Price: 5})

	if got := Total(s.Products()); got != 35 {
		t.Fatalf("expected total 35, got %d", got)
	}
	if s.Quantity() != 5 {
		t.Fatalf("expected 5 units, got %d", s.Quantity())
	}
}

func TestProductsIsACopy(t *testing.T) {
	s := NewStore()
	s.Add(burger)
	items := s.Products()
	items[0].Quantity = 99
	if got, _ := s.Get(burger.ID); got.Quantity != 1 {
		t.Fatalf("snapshot aliased store state: %+v", got)
	}
}

func TestSubscribe(t *testing.T) {
	s := NewStore()
	var calls []int
	unsubscribe := s.Subscribe(func(items []LineItem) {
		calls = append(calls, len(items))
	})

	s.Add(burger)
	s.Add(coke)
	s.Remove("nope")
	s.Remove(burger.ID)
	s.Clear()
	s.Clear()

	want := []int{1, 2, 1, 0}
	if len(calls) != len(want) {
		t.Fatalf("expected %d notifications, got %v", len(want), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("notification %d: got %d items, want %d", i, calls[i], want[i])
		}
	}

	unsubscribe()
	unsubscribe()
	s.Add(burger)
	if len(calls) != len(want) {
		t.Fatalf("listener called after unsubscribe: %v", calls)
	}
}

func TestListenerMayReadStore(t *testing.T) {
	s := NewStore()
	var seen int
	s.Subscribe(func([]LineItem) {
		seen = s.Quantity()
	})
	s.Add(burger)
	if seen != 1 {
		t.Fatalf("expected listener to observe quantity 1, got %d", seen)
	}
}

func TestConcurrentAdd(t *testing.T) {
	s := NewStore()
	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(burger)
		}()
	}
	wg.Wait()
	if got, _ := s.Get(burger.ID); got.Quantity != n {
		t.Fatalf("expected quantity %d, got %d", n, got.Quantity)
	}
}
