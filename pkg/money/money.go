// Package money represents BRL prices as integer minor units.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit is the only currency the app deals in.
var Unit = currency.BRL

// Symbol is prefixed to every formatted amount.
const Symbol = "R$"

// ErrNegative indicates a price below zero.
var ErrNegative = errors.New("negative amount")

// Amount is a count of centavos.
type Amount int64

var (
	scale, _ = currency.Standard.Rounding(Unit)
	factor   = pow10(scale)
	printer  = message.NewPrinter(language.BrazilianPortuguese)
)

func pow10(n int) int64 {
	f := int64(1)
	for i := 0; i < n; i++ {
		f *= 10
	}
	return f
}

// Parse converts a decimal string such as "39.90" into minor units.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// FromDecimal rounds d half away from zero to the currency scale.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return 0, ErrNegative
	}
	return Amount(d.Shift(int32(scale)).Round(0).IntPart()), nil
}

// Decimal returns a in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -int32(scale))
}

// Mul returns the price of qty units.
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

// Sum adds all amounts.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}

// String implements fmt.Stringer using Format.
func (a Amount) String() string {
	return Format(a)
}

// Format renders a as pt-BR currency text, e.g. "R$ 1.234,56".
func Format(a Amount) string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	major := printer.Sprintf("%d", v/factor)
	if scale == 0 {
		return fmt.Sprintf("%s%s %s", sign, Symbol, major)
	}
	return fmt.Sprintf("%s%s %s,%0*d", sign, Symbol, major, scale, v%factor)
}
