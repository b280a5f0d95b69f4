// Package screen builds the view models for the menu and cart screens.
package screen

import (
	"errors"
	"fmt"
	"sync"

	"foodorder/pkg/cart"
	"foodorder/pkg/catalog"
)

// ErrUnknownCategory indicates a category the catalog does not declare.
var ErrUnknownCategory = errors.New("unknown category")

// CategoryButton is one entry of the horizontal category list.
type CategoryButton struct {
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

// HomeView is what the menu screen renders.
type HomeView struct {
	Title        string           `json:"title"`
	CartQuantity int              `json:"cart_quantity"`
	Categories   []CategoryButton `json:"categories"`
	Selected     string           `json:"selected"`
	Products     []catalog.Item   `json:"products"`
}

// Home is the menu screen state.
type Home struct {
	catalog *catalog.Catalog
	store   *cart.Store

	mu       sync.Mutex
	selected string
}

// NewHome selects the first category.
func NewHome(c *catalog.Catalog, store *cart.Store) *Home {
	h := &Home{catalog: c, store: store}
	if cats := c.Categories(); len(cats) > 0 {
		h.selected = cats[0]
	}
	return h
}

// Select switches the product list to category.
func (h *Home) Select(category string) error {
	if !h.catalog.HasCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	h.mu.Lock()
	h.selected = category
	h.mu.Unlock()
	return nil
}

// AddToCart puts one unit of the catalog item id in the cart.
func (h *Home) AddToCart(id string) (cart.Product, error) {
	p, err := h.catalog.Product(id)
	if err != nil {
		return cart.Product{}, err
	}
	h.store.Add(p)
	return p, nil
}

// View renders the current menu screen.
func (h *Home) View() HomeView {
	h.mu.Lock()
	selected := h.selected
	h.mu.Unlock()

	cats := h.catalog.Categories()
	buttons := make([]CategoryButton, 0, len(cats))
	for _, c := range cats {
		buttons = append(buttons, CategoryButton{Title: c, Selected: c == selected})
	}
	products := h.catalog.ByCategory(selected)
	if products == nil {
		products = []catalog.Item{}
	}
	return HomeView{
		Title:        "Faça seu pedido",
		CartQuantity: h.store.Quantity(),
		Categories:   buttons,
		Selected:     selected,
		Products:     products,
	}
}
