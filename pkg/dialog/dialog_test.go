package dialog

import (
	"context"
	"errors"
	"testing"
)

func TestParseChoice(t *testing.T) {
	for in, want := range map[string]Choice{"confirm": Confirm, "CANCEL": Cancel, " Confirm ": Confirm} {
		got, err := ParseChoice(in)
		if err != nil || got != want {
			t.Fatalf("ParseChoice(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseChoice("maybe"); !errors.Is(err, ErrUnknownChoice) {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
}

func TestAlways(t *testing.T) {
	var seen Prompt
	d := DeciderFunc(func(_ context.Context, p Prompt) Choice {
		seen = p
		return Confirm
	})
	if d.Decide(context.Background(), Prompt{Title: "Remover"}) != Confirm || seen.Title != "Remover" {
		t.Fatalf("DeciderFunc did not forward the prompt")
	}
	if Always(Cancel).Decide(context.Background(), Prompt{}) != Cancel {
		t.Fatal("Always(Cancel) confirmed")
	}
	if Confirm.String() != "confirm" || Cancel.String() != "cancel" {
		t.Fatal("unexpected Choice strings")
	}
}
