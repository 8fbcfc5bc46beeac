// Package domain provides definitions of all entities and value types.
package domain

import (
	"errors"

	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount indicates a negative money amount.
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrCurrencyRequired indicates a missing currency.
	ErrCurrencyRequired = errors.New("currency is required")
	// ErrCurrencyMismatch indicates an operation on two different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInsufficientFunds indicates that a subtraction would go below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Money is a non-negative amount of a single currency.
type Money struct {
	Amount   decimal.Decimal      `json:"amount"`
	Currency currencypkg.Currency `json:"currency"`
}

// NewMoney returns Money for the given amount and currency.
func NewMoney(amount decimal.Decimal, currency currencypkg.Currency) (Money, error) {
	if currency.Code == "" {
		return Money{}, ErrCurrencyRequired
	}

	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}

	return Money{Amount: amount, Currency: currency}, nil
}

// ZeroMoney returns zero Money in the given currency.
func ZeroMoney(currency currencypkg.Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Subtract returns m minus other. The result is never negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}

	if m.Amount.LessThan(other.Amount) {
		return Money{}, ErrInsufficientFunds
	}

	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Equal reports whether m and other have the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}
