// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrCodeRequired indicates blank currency code input.
	ErrCodeRequired = errors.New("currency code is required")
	// ErrUnsupportedCode indicates that the currency code is not supported.
	ErrUnsupportedCode = errors.New("unsupported currency code")
)

// Constants for all supported currency codes.
const (
	USD = "USD"
	EUR = "EUR"
	EGP = "EGP"
)

// Currency is a supported currency with its display symbol.
// The zero value is not a valid currency; use FromCode.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

var supported = map[string]Currency{
	USD: {Code: USD, Symbol: "$"},
	EUR: {Code: EUR, Symbol: "€"},
	EGP: {Code: EGP, Symbol: "E£"},
}

// SupportedCurrencies holds all the supported currency codes.
var SupportedCurrencies = []string{
	USD,
	EUR,
	EGP,
}

// FromCode returns the currency for the given code.
// The code is case-insensitive and normalized to uppercase.
func FromCode(code string) (Currency, error) {
	if strings.TrimSpace(code) == "" {
		return Currency{}, ErrCodeRequired
	}

	c, ok := supported[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, ErrUnsupportedCode
	}

	return c, nil
}

// IsSupportedCurrency returns true if the currency code is supported.
func IsSupportedCurrency(code string) bool {
	_, err := FromCode(code)
	return err == nil
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}
	return false
}
