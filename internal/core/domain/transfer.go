package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Deposit moves money from the base currency onto a platform.
// AmountSent is in the base currency, AmountReceived in the platform currency.
type Deposit struct {
	DepositID         string          `json:"depositID"`
	PlatformID        string          `json:"platformID"`
	Date              time.Time       `json:"date"`
	AmountSent        decimal.Decimal `json:"amountSent"`
	AmountReceived    decimal.Decimal `json:"amountReceived"`
	IsForeignExchange bool            `json:"isForeignExchange"`
	// EffectiveRate is platform units per base unit. Zero unless IsForeignExchange.
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	// ProcessingFee is in the base currency. Zero when IsForeignExchange.
	ProcessingFee decimal.Decimal `json:"processingFee"`
	Method        string          `json:"method"`
	Notes         string          `json:"notes"`
	AuditFields
}

// BaseRate is the deposit's rate expressed as base units per platform unit.
func (d Deposit) BaseRate() decimal.Decimal {
	return accounting.InvertRate(d.EffectiveRate)
}

// Price derives the rate or the fee. In direct mode the received amount follows from
// AmountSent and directRate; otherwise the rate follows from both amounts.
func (d *Deposit) Price(mode ExchangeInputMode, directRate decimal.Decimal) error {
	if d.PlatformID == "" {
		return fmt.Errorf("%w: platform is required", apperrors.ErrValidation)
	}
	if !d.AmountSent.IsPositive() {
		return fmt.Errorf("%w: amount sent must be positive", apperrors.ErrValidation)
	}
	sent, received, rate, fee, err := price(d.IsForeignExchange, mode, d.AmountSent, d.AmountReceived, directRate)
	if err != nil {
		return err
	}
	d.AmountSent, d.AmountReceived, d.EffectiveRate, d.ProcessingFee = sent, received, rate, fee
	return nil
}

// Withdrawal moves money off a platform into the base currency.
// AmountRequested is in the platform currency, AmountReceived in the base currency.
type Withdrawal struct {
	WithdrawalID      string          `json:"withdrawalID"`
	PlatformID        string          `json:"platformID"`
	Date              time.Time       `json:"date"`
	AmountRequested   decimal.Decimal `json:"amountRequested"`
	AmountReceived    decimal.Decimal `json:"amountReceived"`
	IsForeignExchange bool            `json:"isForeignExchange"`
	// EffectiveRate is base units per platform unit. Zero unless IsForeignExchange.
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	ProcessingFee decimal.Decimal `json:"processingFee"`
	Method        string          `json:"method"`
	Notes         string          `json:"notes"`
	AuditFields
}

// Price derives the rate or the fee, see Deposit.Price.
func (w *Withdrawal) Price(mode ExchangeInputMode, directRate decimal.Decimal) error {
	if w.PlatformID == "" {
		return fmt.Errorf("%w: platform is required", apperrors.ErrValidation)
	}
	if !w.AmountRequested.IsPositive() {
		return fmt.Errorf("%w: amount requested must be positive", apperrors.ErrValidation)
	}
	requested, received, rate, fee, err := price(w.IsForeignExchange, mode, w.AmountRequested, w.AmountReceived, directRate)
	if err != nil {
		return err
	}
	w.AmountRequested, w.AmountReceived, w.EffectiveRate, w.ProcessingFee = requested, received, rate, fee
	return nil
}

func price(fx bool, mode ExchangeInputMode, out, in, directRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	if in.IsNegative() {
		return out, in, decimal.Zero, decimal.Zero, fmt.Errorf("%w: amount received cannot be negative", apperrors.ErrValidation)
	}
	if !fx {
		fee := accounting.ProcessingFee(out, in)
		if fee.IsNegative() {
			return out, in, decimal.Zero, decimal.Zero, fmt.Errorf("%w: received amount exceeds sent amount on a same-currency transfer", apperrors.ErrValidation)
		}
		return out, in, decimal.Zero, fee, nil
	}
	if mode == ExchangeInputDirect {
		if !directRate.IsPositive() {
			return out, in, decimal.Zero, decimal.Zero, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		rate := directRate.Round(accounting.RatePrecision)
		return out, out.Mul(rate).Round(2), rate, decimal.Zero, nil
	}
	rate := accounting.EffectiveRate(out, in)
	if rate.IsZero() {
		return out, in, decimal.Zero, decimal.Zero, fmt.Errorf("%w: both amounts are required to derive the exchange rate", apperrors.ErrValidation)
	}
	return out, in, rate, decimal.Zero, nil
}
