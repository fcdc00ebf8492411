package kernel

import (
	"fmt"

	"parcelflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money represents a non-negative monetary amount in Tunisian dinars (TND).
// It wraps shopspring/decimal to avoid floating-point drift when summing
// parcel prices and reconciling payments. Money is an immutable value object;
// the zero value is a valid zero amount.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("12.500")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.Add(price) // 25.000
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount, used as the starting value for sums.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money from its decimal string form,
// e.g. "12.500". Used at deserialization boundaries.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsEqual compares two amounts by numeric value, so "5.5" equals "5.50".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with the three fractional digits
// conventional for TND.
func (m Money) String() string {
	return m.amount.StringFixed(3)
}
