package domain

import "github.com/shopspring/decimal"

// ExchangeInputMode selects how users enter foreign-exchange transfers.
type ExchangeInputMode string

const (
	// ExchangeInputDirect: the user enters the rate; the received amount is derived.
	ExchangeInputDirect ExchangeInputMode = "direct"
	// ExchangeInputAmounts: the user enters both amounts; the rate is derived.
	ExchangeInputAmounts ExchangeInputMode = "amounts"
)

// Settings are the user-configured defaults. They are read-only at runtime.
type Settings struct {
	BaseCurrency       string                     `json:"baseCurrency"`
	HandsPerHourLive   int                        `json:"handsPerHourLive"`
	HandsPerHourOnline int                        `json:"handsPerHourOnline"`
	DefaultRates       map[string]decimal.Decimal `json:"defaultRates"`
	ExchangeInputMode  ExchangeInputMode          `json:"exchangeInputMode"`
}

// DefaultRate returns the configured rate (base units per one unit of code).
// The base currency is always 1; unknown currencies return zero.
func (s Settings) DefaultRate(code string) decimal.Decimal {
	if code == s.BaseCurrency {
		return decimal.NewFromInt(1)
	}
	if rate, ok := s.DefaultRates[code]; ok {
		return rate
	}
	return decimal.Zero
}
