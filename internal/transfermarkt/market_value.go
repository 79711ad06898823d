package transfermarkt

import (
	"errors"
	"fmt"
	"strings"

	"oppstrength/internal/strength"

	"github.com/shopspring/decimal"
)

var ErrMarketValue = errors.New("invalid market value")

// ParseMarketValue converts a market value cell into millions, rounded to 2 decimals
// with strength.Round.
//
//	"€1.50bn" -> 1500
//	"€85.00m" -> 85
//	"85,00"   -> 85
func ParseMarketValue(text string) (float64, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), "€", ""))

	multiplier := 1.0
	switch {
	case strings.Contains(normalized, "bn"):
		normalized = strings.ReplaceAll(normalized, "bn", "")
		multiplier = 1000
	case strings.Contains(normalized, "m"):
		normalized = strings.ReplaceAll(normalized, "m", "")
	}
	normalized = strings.TrimSpace(strings.ReplaceAll(normalized, ",", "."))

	// plain decimal notation only, "inf", "nan" and hex floats are rejected
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMarketValue, text)
	}
	return strength.Round(value.InexactFloat64()*multiplier, 2), nil
}
