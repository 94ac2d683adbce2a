package kernel

import (
	"fmt"
	"math"

	"pedidos/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in integer cents.
// Arithmetic on cents keeps order totals exact; conversion to and from
// floating point happens only at the adapter edges, where prices travel as
// JSON numbers.
//
// Money is immutable. The zero value represents zero cents and is valid, so
// anonymous orders with free items still total correctly.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an integer amount of cents.
// Negative amounts are rejected: neither catalog prices nor order totals may
// be negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money from a floating point amount in currency
// units, rounding to the nearest cent.
func NewMoneyFromFloat(amount float64) (Money, error) {
	cents := int64(math.Round(amount * 100))
	return NewMoneyFromCents(cents)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units for serialization.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// MultiplyInt returns the amount multiplied by a non-negative quantity.
func (m Money) MultiplyInt(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "19.90".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
