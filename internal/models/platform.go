package models

import "github.com/shopspring/decimal"

// Platform is a row of the platforms table.
type Platform struct {
	PlatformID   string          `db:"platform_id"`
	Name         string          `db:"name"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"`
	LatestRate   decimal.Decimal `db:"latest_rate"`
	AuditFields
}
