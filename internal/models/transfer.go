package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit is a row of the deposits table.
type Deposit struct {
	DepositID         string          `db:"deposit_id"`
	PlatformID        string          `db:"platform_id"`
	DepositDate       time.Time       `db:"deposit_date"`
	AmountSent        decimal.Decimal `db:"amount_sent"`
	AmountReceived    decimal.Decimal `db:"amount_received"`
	IsForeignExchange bool            `db:"is_foreign_exchange"`
	EffectiveRate     decimal.Decimal `db:"effective_rate"`
	ProcessingFee     decimal.Decimal `db:"processing_fee"`
	Method            string          `db:"method"`
	Notes             string          `db:"notes"`
	AuditFields
}

// Withdrawal is a row of the withdrawals table.
type Withdrawal struct {
	WithdrawalID      string          `db:"withdrawal_id"`
	PlatformID        string          `db:"platform_id"`
	WithdrawalDate    time.Time       `db:"withdrawal_date"`
	AmountRequested   decimal.Decimal `db:"amount_requested"`
	AmountReceived    decimal.Decimal `db:"amount_received"`
	IsForeignExchange bool            `db:"is_foreign_exchange"`
	EffectiveRate     decimal.Decimal `db:"effective_rate"`
	ProcessingFee     decimal.Decimal `db:"processing_fee"`
	Method            string          `db:"method"`
	Notes             string          `db:"notes"`
	AuditFields
}

// Adjustment is a row of the adjustments table.
type Adjustment struct {
	AdjustmentID   string          `db:"adjustment_id"`
	PlatformID     *string         `db:"platform_id"` // Nullable FK
	Name           string          `db:"name"`
	Amount         decimal.Decimal `db:"amount"`
	AdjustmentDate time.Time       `db:"adjustment_date"`
	CurrencyCode   string          `db:"currency_code"`
	ExchangeRate   decimal.Decimal `db:"exchange_rate"`
	AmountBase     decimal.Decimal `db:"amount_base"`
	IsOnline       bool            `db:"is_online"`
	Location       string          `db:"location"`
	Notes          string          `db:"notes"`
	AuditFields
}
