package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses live-typed numeric input. Anything unparsable becomes zero.
func ParseAmount(text string) decimal.Decimal {
	cleaned := cleanNumber(text)
	if cleaned == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// ParseRate parses an exchange rate. Unparsable or non-positive input becomes 1.
func ParseRate(text string) decimal.Decimal {
	v := ParseAmount(text)
	if !v.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return v
}

// cleanNumber drops whitespace, grouping commas and a dangling decimal point ("12." while typing).
func cleanNumber(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(s, ".")
	if s == "-" || s == "+" {
		return ""
	}
	return s
}
