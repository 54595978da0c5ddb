package domain

import (
	"github.com/shopspring/decimal"
)

// Platform is an external poker site or account with its own currency and running balance.
// Balance is always expressed in CurrencyCode.
type Platform struct {
	PlatformID   string          `json:"platformID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	// LatestRate converts one platform unit into the base currency.
	LatestRate decimal.Decimal `json:"latestRate"`
	AuditFields
}

// ApplyDeposit credits the amount that arrived on the platform.
func (p *Platform) ApplyDeposit(d Deposit) {
	p.Balance = p.Balance.Add(d.AmountReceived)
	if d.IsForeignExchange {
		if rate := d.BaseRate(); rate.IsPositive() {
			p.LatestRate = rate
		}
	}
}

// ApplyWithdrawal debits the amount requested from the platform.
func (p *Platform) ApplyWithdrawal(w Withdrawal) {
	p.Balance = p.Balance.Sub(w.AmountRequested)
	if w.IsForeignExchange && w.EffectiveRate.IsPositive() {
		p.LatestRate = w.EffectiveRate
	}
}

// CommitSessionBalance sets the running balance to an online session's closing balance.
func (p *Platform) CommitSessionBalance(s OnlineSession) {
	p.Balance = s.BalanceAfter
}
