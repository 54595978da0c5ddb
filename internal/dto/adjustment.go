package dto

import (
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/utils"
)

// CreateAdjustmentRequest defines the data needed to record an adjustment.
type CreateAdjustmentRequest struct {
	PlatformID   *string    `json:"platformID" binding:"omitempty,max=64"`
	Name         string     `json:"name" binding:"required,max=100"`
	Amount       Amount     `json:"amount"`
	Date         *time.Time `json:"date"`
	CurrencyCode string     `json:"currencyCode" binding:"required,iso4217"`
	// ExchangeRate defaults to the configured rate for CurrencyCode.
	ExchangeRate *Rate  `json:"exchangeRate"`
	IsOnline     bool   `json:"isOnline"`
	Location     string `json:"location" binding:"max=200"`
	Notes        string `json:"notes"`
}

// AdjustmentResponse defines the data returned for an adjustment.
type AdjustmentResponse struct {
	domain.Adjustment
	AmountDisplay string `json:"amountDisplay"`
}

// ToAdjustmentResponse converts a domain.Adjustment to AdjustmentResponse DTO
func ToAdjustmentResponse(a *domain.Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		Adjustment:    *a,
		AmountDisplay: utils.FormatSignedCurrency(a.Amount, a.CurrencyCode),
	}
}

// ListAdjustmentsResponse wraps a list of adjustments.
type ListAdjustmentsResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
}

// ToListAdjustmentsResponse converts adjustments to ListAdjustmentsResponse DTO
func ToListAdjustmentsResponse(adjustments []domain.Adjustment) ListAdjustmentsResponse {
	res := make([]AdjustmentResponse, len(adjustments))
	for i := range adjustments {
		res[i] = ToAdjustmentResponse(&adjustments[i])
	}
	return ListAdjustmentsResponse{Adjustments: res}
}
