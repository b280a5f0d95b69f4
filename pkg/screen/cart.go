package screen

import (
	"context"
	"fmt"
	"sync"

	"foodorder/pkg/cart"
	"foodorder/pkg/checkout"
	"foodorder/pkg/dialog"
	"foodorder/pkg/money"
)

// EmptyMessage replaces the line list when the cart has nothing in it.
const EmptyMessage = "Seu carrinho esta vazio."

// Line is one rendered cart row.
type Line struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
	Thumbnail string `json:"thumbnail"`
}

// CartView is what the cart screen renders.
type CartView struct {
	Title        string `json:"title"`
	Lines        []Line `json:"lines"`
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message,omitempty"`
	Total        string `json:"total"`
	Address      string `json:"address"`
}

// Cart is the cart screen. It re-renders whenever the store changes.
type Cart struct {
	store    *cart.Store
	checkout *checkout.Service

	mu      sync.RWMutex
	address string
	view    CartView
	renders int

	unsubscribe func()
}

// NewCart renders the current cart and subscribes to further changes.
func NewCart(store *cart.Store, svc *checkout.Service) *Cart {
	c := &Cart{store: store, checkout: svc}
	c.render()
	c.unsubscribe = store.Subscribe(func([]cart.LineItem) { c.render() })
	return c
}

// Close stops listening to the store.
func (c *Cart) Close() {
	c.unsubscribe()
}

// View returns the last rendered view.
func (c *Cart) View() CartView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v := c.view
	v.Lines = append([]Line(nil), c.view.Lines...)
	v.Address = c.address
	return v
}

// Renders counts how many times the view was rebuilt.
func (c *Cart) Renders() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renders
}

// SetAddress stores the free-text delivery address.
func (c *Cart) SetAddress(address string) {
	c.mu.Lock()
	c.address = address
	c.mu.Unlock()
}

// Address returns the stored delivery address.
func (c *Cart) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

// RemovePrompt asks before dropping a line from the cart.
func RemovePrompt(title string) dialog.Prompt {
	return dialog.Prompt{
		Title:   "Remover",
		Message: fmt.Sprintf("Deseja remover %s do carrinho?", title),
	}
}

// Remove asks d before removing the line id. It reports whether the line
// was removed; unknown ids are a no-op.
func (c *Cart) Remove(ctx context.Context, id string, d dialog.Decider) bool {
	item, ok := c.store.Get(id)
	if !ok {
		return false
	}
	if d.Decide(ctx, RemovePrompt(item.Title)) != dialog.Confirm {
		return false
	}
	c.store.Remove(id)
	return true
}

// Submit sends the stored address through checkout. The address is reset
// once the order goes out, as the screen is left behind.
func (c *Cart) Submit(ctx context.Context, d dialog.Decider) (checkout.Outcome, error) {
	out, err := c.checkout.Submit(ctx, c.Address(), d)
	if err == nil && out.Submitted {
		c.SetAddress("")
	}
	return out, err
}

func (c *Cart) render() {
	items := c.store.Products()
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     money.Format(it.Price),
			Subtotal:  money.Format(it.Subtotal()),
			Thumbnail: it.Thumbnail,
		})
	}
	v := CartView{
		Title: "Seu Carrinho",
		Lines: lines,
		Empty: len(lines) == 0,
		Total: money.Format(cart.Total(items)),
	}
	if v.Empty {
		v.EmptyMessage = EmptyMessage
	}

	c.mu.Lock()
	c.view = v
	c.renders++
	c.mu.Unlock()
}
