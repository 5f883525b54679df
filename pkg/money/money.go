// Package money provides amount parsing and ISO-4217 currency handling for
// extracted transaction values. Amounts are kept as decimals for precision;
// currency metadata (validity, minor-unit fraction) comes from go-money's
// ISO table rather than a hard-coded whitelist.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a bank-formatted amount string: optional thousands
// separators, optional decimal part. The result is always non-negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Abs(), nil
}

// IsCurrency reports whether code is a known ISO-4217 currency code.
func IsCurrency(code string) bool {
	return gomoney.GetCurrency(strings.ToUpper(code)) != nil
}

// Round rounds an amount to the currency's minor-unit fraction (3 for OMR,
// 2 for most others). Unknown currencies round to 2 places.
func Round(d decimal.Decimal, code string) decimal.Decimal {
	fraction := 2
	if c := gomoney.GetCurrency(strings.ToUpper(code)); c != nil {
		fraction = c.Fraction
	}
	return d.Round(int32(fraction))
}
