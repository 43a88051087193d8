package validation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// DefaultCurrency is shown when a place carries no currency code.
const DefaultCurrency = "KES"

// MaxFractionDigits is the precision of every monetary amount.
const MaxFractionDigits = 2

// MaxAmount is the largest amount accepted for a single operation.
var MaxAmount = decimal.RequireFromString("999999999.99")

var (
	ErrAmountRequired  = errors.New("amount required")
	ErrNotANumber      = errors.New("not a valid number")
	ErrNotPositive     = errors.New("must be positive")
	ErrTooManyDecimals = errors.New("at most 2 decimal places")
	ErrAmountTooLarge  = errors.New("amount too large")
)

// Sanitize scrubs operator input down to digits and a single decimal point.
// Leading zeros before another digit are dropped and a leading point gets
// a "0" in front. It never fails.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 1)

	seenPoint := false
	for _, r := range raw {
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	s := b.String()

	i := 0
	for i < len(s)-1 && s[i] == '0' && isDigit(rune(s[i+1])) {
		i++
	}
	s = s[i:]

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return s
}

// Validate checks a raw or sanitized amount. Checks run in a fixed order
// and stop at the first failure.
func Validate(amount string) models.ValidationResult {
	if _, err := parse(amount); err != nil {
		return models.ValidationResult{IsValid: false, Error: err.Error()}
	}
	return models.ValidationResult{IsValid: true}
}

// ParseAmount validates amount and returns its value. Failures are
// reported as InvalidAmount API errors wrapping one of the Err* reasons.
func ParseAmount(amount string) (decimal.Decimal, error) {
	v, err := parse(amount)
	if err != nil {
		return decimal.Zero, apierrors.Wrap(apierrors.InvalidAmount, err.Error(), err)
	}
	return v, nil
}

// FormatAmount renders an amount with two decimals and its currency.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return FormatAmountNumber(amount) + " " + currency
}

// FormatAmountNumber renders an amount with two decimals.
func FormatAmountNumber(amount decimal.Decimal) string {
	return amount.StringFixed(MaxFractionDigits)
}

func parse(amount string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return decimal.Zero, ErrAmountRequired
	}

	if !isPlainNumber(s) {
		return decimal.Zero, ErrNotANumber
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}

	if v.Sign() <= 0 {
		return decimal.Zero, ErrNotPositive
	}

	// Counted on the text so "0.10" and "0.1" are judged as typed.
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > MaxFractionDigits {
		return decimal.Zero, ErrTooManyDecimals
	}

	if v.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrAmountTooLarge
	}

	return v, nil
}

// isPlainNumber accepts an optional sign, digits and at most one point.
// Exponents, NaN and Inf are rejected.
func isPlainNumber(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	digits, points := 0, 0
	for _, r := range s {
		switch {
		case isDigit(r):
			digits++
		case r == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
