package dto

import (
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/utils"
)

// CreateDepositRequest defines the data needed to record a deposit.
// AmountSent is in the base currency and AmountReceived in the platform currency.
// ExchangeRate is read only when the exchange input mode is "direct".
type CreateDepositRequest struct {
	PlatformID        string     `json:"platformID" binding:"required,max=64"`
	Date              *time.Time `json:"date"`
	AmountSent        Amount     `json:"amountSent" binding:"gt=0"`
	AmountReceived    Amount     `json:"amountReceived" binding:"gte=0"`
	IsForeignExchange bool       `json:"isForeignExchange"`
	ExchangeRate      *Rate      `json:"exchangeRate"`
	Method            string     `json:"method" binding:"max=50"`
	Notes             string     `json:"notes"`
}

// CreateWithdrawalRequest defines the data needed to record a withdrawal.
// AmountRequested is in the platform currency and AmountReceived in the base currency.
type CreateWithdrawalRequest struct {
	PlatformID        string     `json:"platformID" binding:"required,max=64"`
	Date              *time.Time `json:"date"`
	AmountRequested   Amount     `json:"amountRequested" binding:"gt=0"`
	AmountReceived    Amount     `json:"amountReceived" binding:"gte=0"`
	IsForeignExchange bool       `json:"isForeignExchange"`
	ExchangeRate      *Rate      `json:"exchangeRate"`
	Method            string     `json:"method" binding:"max=50"`
	Notes             string     `json:"notes"`
}

// ListTransfersParams filters transfer lists.
type ListTransfersParams struct {
	PlatformID string `form:"platformID" binding:"omitempty,max=64"`
}

// DepositResponse defines the data returned for a deposit.
type DepositResponse struct {
	domain.Deposit
	RateDisplay string `json:"rateDisplay,omitempty"`
}

// ToDepositResponse converts a domain.Deposit to DepositResponse DTO
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	resp := DepositResponse{Deposit: *d}
	if d.IsForeignExchange {
		resp.RateDisplay = utils.FormatExchangeRate(d.EffectiveRate)
	}
	return resp
}

// WithdrawalResponse defines the data returned for a withdrawal.
type WithdrawalResponse struct {
	domain.Withdrawal
	RateDisplay string `json:"rateDisplay,omitempty"`
}

// ToWithdrawalResponse converts a domain.Withdrawal to WithdrawalResponse DTO
func ToWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	resp := WithdrawalResponse{Withdrawal: *w}
	if w.IsForeignExchange {
		resp.RateDisplay = utils.FormatExchangeRate(w.EffectiveRate)
	}
	return resp
}

// ListDepositsResponse wraps a list of deposits.
type ListDepositsResponse struct {
	Deposits []DepositResponse `json:"deposits"`
}

// ToListDepositsResponse converts deposits to ListDepositsResponse DTO
func ToListDepositsResponse(deposits []domain.Deposit) ListDepositsResponse {
	res := make([]DepositResponse, len(deposits))
	for i := range deposits {
		res[i] = ToDepositResponse(&deposits[i])
	}
	return ListDepositsResponse{Deposits: res}
}

// ListWithdrawalsResponse wraps a list of withdrawals.
type ListWithdrawalsResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
}

// ToListWithdrawalsResponse converts withdrawals to ListWithdrawalsResponse DTO
func ToListWithdrawalsResponse(withdrawals []domain.Withdrawal) ListWithdrawalsResponse {
	res := make([]WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		res[i] = ToWithdrawalResponse(&withdrawals[i])
	}
	return ListWithdrawalsResponse{Withdrawals: res}
}
