// Package valueobject contains domain value objects for the Household Ledger system.
package valueobject

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is supplied.
const DefaultCurrency = "JPY"

// Money value object errors.
var (
	// ErrNegativeAmount is returned when a money amount is negative.
	ErrNegativeAmount = errors.New("money amount must not be negative")

	// ErrNonIntegerAmount is returned when a money amount has a fractional part.
	ErrNonIntegerAmount = errors.New("money amount must be an integer")

	// ErrInvalidCurrency is returned when the currency code is not a 3-letter code.
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")

	// ErrCurrencyMismatch is returned when arithmetic mixes currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrNegativeResult is returned when a subtraction would go below zero.
	ErrNegativeResult = errors.New("money subtraction must not go negative")

	// ErrNonIntegerFactor is returned when a multiplication factor has a fractional part.
	ErrNonIntegerFactor = errors.New("multiplication factor must be an integer")
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Money represents a whole-unit monetary amount in a single currency.
// The zero value is not valid; construct via NewMoney or MoneyFromInt.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money from an arbitrary decimal amount.
// The amount must be a non-negative integer value. An empty currency
// defaults to DefaultCurrency.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if !currencyCodeRegex.MatchString(currency) {
		return Money{}, ErrInvalidCurrency
	}
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if !amount.IsInteger() {
		return Money{}, ErrNonIntegerAmount
	}
	return Money{amount: amount, currency: currency}, nil
}

// MoneyFromInt creates a Money from a whole-unit integer amount.
func MoneyFromInt(amount int64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount), currency)
}

// Amount returns the monetary amount as a decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Int64 returns the monetary amount as a whole-unit integer.
func (m Money) Int64() int64 {
	return m.amount.IntPart()
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equal reports whether two Money values have the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Add returns the sum of two Money values. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two Money values. Currencies must
// match and the result must not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeResult
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply returns the Money scaled by an integer factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if !factor.IsInteger() {
		return Money{}, ErrNonIntegerFactor
	}
	result := m.amount.Mul(factor)
	if result.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: result, currency: m.currency}, nil
}
