package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// centsPerUnit is the exponent between whole currency units and cents.
const centsPerUnit = 2

// MaxCents is the largest amount the cost_per_night INTEGER column holds.
const MaxCents = math.MaxInt32

// ToCents converts whole currency units into cents, rounding half away from zero.
// Callers check CentsInRange first; out-of-range amounts do not fit in int64.
func ToCents(units decimal.Decimal) int64 {
	return units.Shift(centsPerUnit).Round(0).IntPart()
}

// CentsInRange reports whether units converts to between 0 and MaxCents cents.
func CentsInRange(units decimal.Decimal) bool {
	cents := units.Shift(centsPerUnit).Round(0)
	return !cents.IsNegative() && cents.LessThanOrEqual(decimal.NewFromInt(MaxCents))
}

// FromCents converts cents back into whole currency units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsPerUnit)
}
