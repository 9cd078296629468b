// Package core provides money parsing and handling utilities.
//
// Amounts are stored as integer cents and cross the persistence boundary as
// plain decimal numbers. Use cents for arithmetic; the decimal views exist
// for parsing and display only.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in cents.
type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ParseAmount converts a user-entered decimal string to Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// performs half-up rounding on the third decimal place. Zero, negative and
// unparsable input is rejected.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Round(2).Shift(2)
	if cents.Sign() <= 0 || !cents.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Decimal returns the amount as a decimal value (2550 cents -> 25.50).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Display formats the amount for the UI, always with two decimals.
func (m Money) Display() string {
	return "$" + m.Decimal().StringFixed(2)
}

// MarshalJSON writes the amount as a plain decimal number, matching the
// persisted slot layout (25.5, not a cents integer or a quoted string).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	m.Cents = d.Round(2).Shift(2).IntPart()
	return nil
}
