// Package dialog models confirmation prompts as a synchronous decision.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChoice indicates a choice string other than cancel or confirm.
var ErrUnknownChoice = errors.New("unknown choice")

// Choice is the user's answer to a Prompt.
type Choice int

const (
	Cancel Choice = iota
	Confirm
)

func (c Choice) String() string {
	switch c {
	case Confirm:
		return "confirm"
	default:
		return "cancel"
	}
}

// ParseChoice accepts "cancel" or "confirm" in any case.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cancel":
		return Cancel, nil
	case "confirm":
		return Confirm, nil
	}
	return Cancel, fmt.Errorf("%w: %q", ErrUnknownChoice, s)
}

// Prompt is the text of an alert shown to the user.
type Prompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Decider asks the user to confirm or cancel p.
type Decider interface {
	Decide(ctx context.Context, p Prompt) Choice
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, p Prompt) Choice

func (f DeciderFunc) Decide(ctx context.Context, p Prompt) Choice {
	return f(ctx, p)
}

// Always answers every prompt with c.
func Always(c Choice) Decider {
	return DeciderFunc(func(context.Context, Prompt) Choice { return c })
}
