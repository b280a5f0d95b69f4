// Package cart holds the in-memory shopping cart of one device session.
package cart

import "foodorder/pkg/money"

// Product describes what the menu hands to the cart.
type Product struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Price     money.Amount `json:"price"`
	Thumbnail string       `json:"thumbnail"`
}

// LineItem is one distinct product in the cart with its own quantity.
type LineItem struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Price     money.Amount `json:"price"`
	Thumbnail string       `json:"thumbnail"`
	Quantity  int          `json:"quantity"`
}

// Subtotal is the unit price times quantity.
func (l LineItem) Subtotal() money.Amount {
	return l.Price.Mul(l.Quantity)
}

// Total sums every line's subtotal.
func Total(items []LineItem) money.Amount {
	var total money.Amount
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// Listener receives a snapshot of the cart after it changes.
type Listener func(items []LineItem)
