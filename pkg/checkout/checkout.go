// Package checkout turns the cart and a delivery address into an order
// summary and empties the cart once the user confirms.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodorder/pkg/cart"
	"foodorder/pkg/dialog"
	"foodorder/pkg/logger"
	"foodorder/pkg/money"
)

// ErrAddressRequired indicates a blank delivery address.
var ErrAddressRequired = errors.New("delivery address is required")

var (
	// AddressPrompt is shown when the address is blank.
	AddressPrompt = dialog.Prompt{Title: "Pedido", Message: "Informe os dados da entrega"}
	// SentNotice is shown after a confirmed submission.
	SentNotice = dialog.Prompt{Title: "Pedido Enviado", Message: "Seu pedido foi enviado"}
)

// Order is the summary of a submitted cart.
type Order struct {
	ID       string          `json:"id"`
	Address  string          `json:"address"`
	Items    []cart.LineItem `json:"items"`
	Total    money.Amount    `json:"total"`
	Summary  string          `json:"summary"`
	PlacedAt time.Time       `json:"placed_at"`
}

// Outcome tells the caller what to show next.
type Outcome struct {
	Submitted    bool          `json:"submitted"`
	Order        *Order        `json:"order,omitempty"`
	Prompt       dialog.Prompt `json:"prompt"`
	NavigateBack bool          `json:"navigate_back"`
}

// Summary renders the human-readable order message.
func Summary(address string, items []cart.LineItem, total money.Amount) string {
	var b strings.Builder
	b.WriteString("🍔 NOVO PEDIDO\n\n")
	fmt.Fprintf(&b, "Entregar em: %s\n\n", address)
	for _, it := range items {
		fmt.Fprintf(&b, "%d %s\n", it.Quantity, it.Title)
	}
	fmt.Fprintf(&b, "\nValor total: %s", money.Format(total))
	return b.String()
}

// ConfirmPrompt is what the user is asked before the order goes out.
func ConfirmPrompt(o Order) dialog.Prompt {
	return dialog.Prompt{Title: "Enviar pedido", Message: o.Summary}
}

// Service submits the cart it was built with.
type Service struct {
	store *cart.Store
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// NewService returns a Service bound to store.
func NewService(store *cart.Store, log *logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Prepare validates address and drafts the order without touching the cart.
func (s *Service) Prepare(address string) (Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Order{}, ErrAddressRequired
	}
	items := s.store.Products()
	total := cart.Total(items)
	return Order{
		ID:       s.newID(),
		Address:  address,
		Items:    items,
		Total:    total,
		Summary:  Summary(address, items, total),
		PlacedAt: s.now(),
	}, nil
}

// Submit asks d to confirm the drafted order. Only a confirmation clears the
// cart; a blank address returns ErrAddressRequired with AddressPrompt.
func (s *Service) Submit(ctx context.Context, address string, d dialog.Decider) (Outcome, error) {
	o, err := s.Prepare(address)
	if err != nil {
		s.log.Debug(ctx, "order rejected", "error", err)
		return Outcome{Prompt: AddressPrompt}, err
	}

	if d.Decide(ctx, ConfirmPrompt(o)) != dialog.Confirm {
		s.log.Debug(ctx, "order cancelled", "order_id", o.ID)
		return Outcome{}, nil
	}

	s.store.Clear()
	s.log.Info(ctx, "order submitted", "order_id", o.ID, "items", len(o.Items), "total", int64(o.Total))
	return Outcome{
		Submitted:    true,
		Order:        &o,
		Prompt:       SentNotice,
		NavigateBack: true,
	}, nil
}
