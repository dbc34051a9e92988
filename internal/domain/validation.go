package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultAmountPrecision is the number of fractional digits amounts are
// rendered with on output.
const DefaultAmountPrecision int32 = 4

// ValidateAmount rejects negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount.String())
	}
	return nil
}

// ParseAmount parses a decimal string exactly and validates it. An empty
// string yields an invalid NullDecimal.
func ParseAmount(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NewNullDecimal(amount), nil
}

// FormatAmount renders an amount with exactly precision fractional digits,
// rounding half away from zero. Only output is rounded; balances stay exact.
func FormatAmount(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
