package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"foodorder/pkg/cart"
	"foodorder/pkg/dialog"
	"foodorder/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *cart.Store) {
	t.Helper()
	store := cart.NewStore()
	store.Add(cart.Product{ID: "1", Title: "X-Tudo Burger", Price: 1000})
	store.Add(cart.Product{ID: "1", Title: "X-Tudo Burger", Price: 1000})
	store.Add(cart.Product{ID: "7", Title: "Coca-Cola", Price: 500})
	svc := NewService(store, logger.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "order-1" }
	return svc, store
}

func TestSubmitBlankAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "\n\t"} {
		svc, store := newTestService(t)
		asked := false
		d := dialog.DeciderFunc(func(context.Context, dialog.Prompt) dialog.Choice {
			asked = true
			return dialog.Confirm
		})

		out, err := svc.Submit(context.Background(), addr, d)
		if !errors.Is(err, ErrAddressRequired) {
			t.Fatalf("address %q: expected ErrAddressRequired, got %v", addr, err)
		}
		if out.Prompt != AddressPrompt {
			t.Fatalf("address %q: unexpected prompt %+v", addr, out.Prompt)
		}
		if out.Submitted || out.NavigateBack || asked {
			t.Fatalf("address %q: submission went ahead: %+v", addr, out)
		}
		if store.Len() != 2 {
			t.Fatalf("address %q: cart changed: %+v", addr, store.Products())
		}
	}
}

func TestSubmitConfirm(t *testing.T) {
	svc, store := newTestService(t)
	var prompt dialog.Prompt
	d := dialog.DeciderFunc(func(_ context.Context, p dialog.Prompt) dialog.Choice {
		prompt = p
		return dialog.Confirm
	})

	out, err := svc.Submit(context.Background(), "  Rua A, 10 - Centro  ", d)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Submitted || !out.NavigateBack {
		t.Fatalf("expected submitted and navigate back, got %+v", out)
	}
	if out.Prompt != SentNotice {
		t.Fatalf("unexpected notice: %+v", out.Prompt)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty cart, got %+v", store.Products())
	}
	if out.Order == nil || out.Order.ID != "order-1" || out.Order.Total != 2500 || out.Order.Address != "Rua A, 10 - Centro" {
		t.Fatalf("unexpected order: %+v", out.Order)
	}
	if len(out.Order.Items) != 2 {
		t.Fatalf("order lost its items: %+v", out.Order.Items)
	}
	if prompt.Title != "Enviar pedido" || prompt.Message != out.Order.Summary {
		t.Fatalf("unexpected confirm prompt: %+v", prompt)
	}
}

func TestSubmitCancel(t *testing.T) {
	svc, store := newTestService(t)
	out, err := svc.Submit(context.Background(), "Rua A, 10", dialog.Always(dialog.Cancel))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Submitted || out.NavigateBack || out.Order != nil {
		t.Fatalf("cancel produced a submission: %+v", out)
	}
	if store.Len() != 2 {
		t.Fatalf("cancel changed the cart: %+v", store.Products())
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	store := cart.NewStore()
	svc := NewService(store, logger.NewNop())
	out, err := svc.Submit(context.Background(), "Rua A, 10", dialog.Always(dialog.Confirm))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Submitted || out.Order.Total != 0 {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestSummary(t *testing.T) {
	items := []cart.LineItem{
		{ID: "1", Title: "X-Tudo Burger", Price: 1000, Quantity: 2},
		{ID: "7", Title: "Coca-Cola", Price: 500, Quantity: 3},
	}
	got := Summary("Rua A, 10", items, cart.Total(items))
	want := "🍔 NOVO PEDIDO\n\nEntregar em: Rua A, 10\n\n2 X-Tudo Burger\n3 Coca-Cola\n\nValor total: R$ 35,00"
	if got != want {
		t.Fatalf("unexpected summary:\n%s\nwant:\n%s", got, want)
	}
	if !strings.Contains(got, "R$ 35,00") {
		t.Fatal("summary lacks the formatted total")
	}
}
