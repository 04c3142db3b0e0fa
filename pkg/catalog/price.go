package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice converts a guide price string to euro cents.
//
// Accepted forms are "Free" (or an empty string), plain amounts with either
// decimal separator ("12", "13.50", "13,50", "€12") and ranges ("12-20"),
// for which the upper bound is returned so estimates never come out short.
// The second return value reports the free sentinel.
func ParsePrice(value string) (int64, bool, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "free") {
		return 0, true, nil
	}

	if lower, upper, found := strings.Cut(s, "-"); found {
		if _, err := parseAmount(lower); err != nil {
			return 0, false, err
		}
		cents, err := parseAmount(upper)
		if err != nil {
			return 0, false, err
		}
		return cents, false, nil
	}

	cents, err := parseAmount(s)
	if err != nil {
		return 0, false, err
	}
	return cents, false, nil
}

// parseAmount parses a non-negative decimal amount, rounding half up to cents.
func parseAmount(value string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if s == "" || strings.Trim(s, "0123456789.") != "" {
		return 0, ErrInvalidPrice
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	cents := amount.Round(2).Shift(2)
	if !cents.BigInt().IsInt64() {
		return 0, ErrInvalidPrice
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents as a plain decimal euro amount, e.g. "13.50".
func FormatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
