package dto

import (
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/utils"
)

// CreatePlatformRequest defines the data needed to create a new platform.
type CreatePlatformRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	CurrencyCode   string  `json:"currencyCode" binding:"required,iso4217"`
	InitialBalance *Amount `json:"initialBalance" binding:"omitempty,gte=0"`
	// LatestRate defaults to the configured rate for the currency.
	LatestRate *Rate `json:"latestRate"`
}

// UpdatePlatformRequest defines the editable platform fields. The balance is not one of them.
type UpdatePlatformRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=100"`
	LatestRate *Rate   `json:"latestRate"`
}

// PlatformResponse defines the data returned for a platform.
type PlatformResponse struct {
	domain.Platform
	BalanceDisplay string `json:"balanceDisplay"`
	RateDisplay    string `json:"rateDisplay"`
}

// ToPlatformResponse converts a domain.Platform to PlatformResponse DTO
func ToPlatformResponse(p *domain.Platform) PlatformResponse {
	return PlatformResponse{
		Platform:       *p,
		BalanceDisplay: utils.FormatCurrency(p.Balance, p.CurrencyCode),
		RateDisplay:    utils.FormatExchangeRate(p.LatestRate),
	}
}

// ListPlatformsResponse wraps the list of platforms.
type ListPlatformsResponse struct {
	Platforms []PlatformResponse `json:"platforms"`
}

// ToListPlatformsResponse converts a slice of domain.Platform to ListPlatformsResponse DTO
func ToListPlatformsResponse(platforms []domain.Platform) ListPlatformsResponse {
	res := make([]PlatformResponse, len(platforms))
	for i := range platforms {
		res[i] = ToPlatformResponse(&platforms[i])
	}
	return ListPlatformsResponse{Platforms: res}
}

// SettingsResponse exposes the read-only settings.
type SettingsResponse struct {
	domain.Settings
}
