package utils

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats an amount with the symbol, grouping and fraction digits of its currency.
// Example: 1234.5 USD returns "$1,234.50"; 1234.4 JPY returns "¥1,234".
// Unknown codes fall back to two decimals followed by the code.
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(strings.ToUpper(currencyCode))
	if cur == nil {
		return FormatWithPrecision(amount, 2) + " " + strings.ToUpper(currencyCode)
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSignedCurrency is FormatCurrency with an explicit "+" for gains.
func FormatSignedCurrency(amount decimal.Decimal, currencyCode string) string {
	if amount.IsPositive() {
		return "+" + FormatCurrency(amount, currencyCode)
	}
	return FormatCurrency(amount, currencyCode)
}

// FormatPercent formats a ratio as a percentage with one decimal: 0.125 returns "12.5%".
func FormatPercent(ratio decimal.Decimal) string {
	return ratio.Mul(hundred).StringFixed(1) + "%"
}

// FormatDuration formats fractional hours as "3h 25m". Negative durations format as zero.
func FormatDuration(hours decimal.Decimal) string {
	if hours.IsNegative() {
		hours = decimal.Zero
	}
	minutes := hours.Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatExchangeRate formats a rate with four decimal places.
func FormatExchangeRate(rate decimal.Decimal) string {
	return rate.StringFixed(4)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
