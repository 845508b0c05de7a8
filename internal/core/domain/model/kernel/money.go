package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney, MoneyFromString, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is an immutable non-negative currency amount backed by exact decimal
// arithmetic. It is used for unit prices, surcharges, and collected payments.
// Derived figures that may legitimately go negative (payment due) are plain
// decimals computed by the pricing engine, not Money.
//
// Example:
//
//	price, err := kernel.MoneyFromString("1000.50")
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.Amount().Mul(decimal.NewFromInt(2))
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromString parses a decimal string into Money.
// Returns an error for malformed or negative values.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	m, _ := NewMoney(decimal.Zero)
	return m
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the plain decimal representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// setAmount validates and sets the amount.
// Note: pointer receiver for self-encapsulated construction validation,
// matching the private setter convention of the other value objects.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", amount))
	}

	m.amount = amount
	return nil
}
