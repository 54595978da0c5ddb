package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Adjustment is a signed, informational ledger correction (bonus, rakeback, unexplained
// difference). It never changes a platform balance.
type Adjustment struct {
	AdjustmentID string          `json:"adjustmentID"`
	PlatformID   *string         `json:"platformID"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	AmountBase   decimal.Decimal `json:"amountBase"`
	IsOnline     bool            `json:"isOnline"`
	Location     string          `json:"location"`
	Notes        string          `json:"notes"`
	AuditFields
}

// Derive validates the adjustment and computes AmountBase.
func (a *Adjustment) Derive() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: adjustment name is required", apperrors.ErrValidation)
	}
	if a.IsOnline && (a.PlatformID == nil || *a.PlatformID == "") {
		return fmt.Errorf("%w: online adjustments need a platform", apperrors.ErrValidation)
	}
	if !a.ExchangeRate.IsPositive() {
		return fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	a.CurrencyCode = strings.ToUpper(a.CurrencyCode)
	a.AmountBase = accounting.ConvertToBase(a.Amount, a.ExchangeRate)
	return nil
}
