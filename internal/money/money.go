// Package money converts between the decimal amounts used at the edges
// (CSV columns, API payloads) and the fixed-point minor units the engine
// computes with.
package money

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by external amounts.
// One engine minor unit is 10^-Scale currency units.
const Scale = 4

var (
	// ErrNegative rejects amounts below zero; the engine has no signed funds.
	ErrNegative = errors.New("amount must not be negative")

	// ErrPrecision rejects amounts with more fractional digits than Scale.
	ErrPrecision = errors.New("amount exceeds supported precision")

	// ErrRange rejects amounts that do not fit the engine's minor units.
	ErrRange = errors.New("amount out of range")
)

// Parse converts a decimal string such as "1.5" into minor units.
func Parse(s string) (uint64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}

	scaled := d.Shift(Scale)
	if !scaled.IsInteger() {
		return 0, ErrPrecision
	}

	units := scaled.BigInt()
	if !units.IsUint64() {
		return 0, ErrRange
	}
	return units.Uint64(), nil
}

// Format renders minor units back to a decimal string without trailing zeros.
func Format(units uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -Scale).String()
}
