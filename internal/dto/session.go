package dto

import (
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/utils"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// GameInfoRequest carries optional game metadata.
type GameInfoRequest struct {
	GameType   *string `json:"gameType" binding:"omitempty,max=50"`
	SmallBlind *Amount `json:"smallBlind" binding:"omitempty,gte=0"`
	BigBlind   *Amount `json:"bigBlind" binding:"omitempty,gte=0"`
	Straddle   *Amount `json:"straddle" binding:"omitempty,gte=0"`
	Ante       *Amount `json:"ante" binding:"omitempty,gte=0"`
	TableSize  *int    `json:"tableSize" binding:"omitempty,gte=0,lte=12"`
}

// ToPatch converts the request into a domain patch.
func (g GameInfoRequest) ToPatch() domain.GameInfoPatch {
	return domain.GameInfoPatch{
		GameType:   g.GameType,
		SmallBlind: amountPtr(g.SmallBlind),
		BigBlind:   amountPtr(g.BigBlind),
		Straddle:   amountPtr(g.Straddle),
		Ante:       amountPtr(g.Ante),
		TableSize:  g.TableSize,
	}
}

// StartLiveSessionRequest defines the data needed to start a live session.
type StartLiveSessionRequest struct {
	Location     string          `json:"location" binding:"max=200"`
	CurrencyCode string          `json:"currencyCode" binding:"required,iso4217"`
	BuyInRate    *Rate           `json:"buyInRate"`
	CashOutRate  *Rate           `json:"cashOutRate"`
	Game         GameInfoRequest `json:"game"`
	// StartTime defaults to now.
	StartTime *time.Time `json:"startTime"`
	BuyIn     Amount     `json:"buyIn" binding:"gte=0"`
	Notes     string     `json:"notes"`
}

// UpdateLiveSessionRequest is an autosave change set. Omitted fields are left untouched.
type UpdateLiveSessionRequest struct {
	Location     *string         `json:"location" binding:"omitempty,max=200"`
	CurrencyCode *string         `json:"currencyCode" binding:"omitempty,iso4217"`
	BuyInRate    *Rate           `json:"buyInRate"`
	CashOutRate  *Rate           `json:"cashOutRate"`
	Game         GameInfoRequest `json:"game"`
	StartTime    *time.Time      `json:"startTime"`
	EndTime      *time.Time      `json:"endTime"`
	BreakMinutes *int            `json:"breakMinutes" binding:"omitempty,gte=0"`
	BuyIn        *Amount         `json:"buyIn" binding:"omitempty,gte=0"`
	CashOut      *Amount         `json:"cashOut" binding:"omitempty,gte=0"`
	Tips         *Amount         `json:"tips" binding:"omitempty,gte=0"`
	HandCount    *int            `json:"handCount" binding:"omitempty,gte=0"`
	Notes        *string         `json:"notes"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateLiveSessionRequest) ToPatch() domain.LiveSessionPatch {
	return domain.LiveSessionPatch{
		Location:     r.Location,
		CurrencyCode: r.CurrencyCode,
		BuyInRate:    ratePtr(r.BuyInRate),
		CashOutRate:  ratePtr(r.CashOutRate),
		Game:         r.Game.ToPatch(),
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		BreakMinutes: r.BreakMinutes,
		BuyIn:        amountPtr(r.BuyIn),
		CashOut:      amountPtr(r.CashOut),
		Tips:         amountPtr(r.Tips),
		HandCount:    r.HandCount,
		Notes:        r.Notes,
	}
}

// StopSessionRequest stamps the end of a session. EndTime defaults to now.
type StopSessionRequest struct {
	EndTime *time.Time `json:"endTime"`
}

// StartOnlineSessionRequest defines the data needed to start an online session.
type StartOnlineSessionRequest struct {
	PlatformID string          `json:"platformID" binding:"required,max=64"`
	Game       GameInfoRequest `json:"game"`
	TableCount int             `json:"tableCount" binding:"gte=0,lte=24"`
	StartTime  *time.Time      `json:"startTime"`
	// BalanceBefore defaults to the platform's current balance.
	BalanceBefore *Amount `json:"balanceBefore" binding:"omitempty,gte=0"`
	Notes         string  `json:"notes"`
}

// UpdateOnlineSessionRequest is an autosave change set. Omitted fields are left untouched.
type UpdateOnlineSessionRequest struct {
	PlatformID    *string         `json:"platformID" binding:"omitempty,max=64"`
	Game          GameInfoRequest `json:"game"`
	TableCount    *int            `json:"tableCount" binding:"omitempty,gte=1,lte=24"`
	StartTime     *time.Time      `json:"startTime"`
	EndTime       *time.Time      `json:"endTime"`
	BreakMinutes  *int            `json:"breakMinutes" binding:"omitempty,gte=0"`
	BalanceBefore *Amount         `json:"balanceBefore" binding:"omitempty,gte=0"`
	BalanceAfter  *Amount         `json:"balanceAfter" binding:"omitempty,gte=0"`
	HandCount     *int            `json:"handCount" binding:"omitempty,gte=0"`
	Notes         *string         `json:"notes"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateOnlineSessionRequest) ToPatch() domain.OnlineSessionPatch {
	return domain.OnlineSessionPatch{
		PlatformID:    r.PlatformID,
		Game:          r.Game.ToPatch(),
		TableCount:    r.TableCount,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		BreakMinutes:  r.BreakMinutes,
		BalanceBefore: amountPtr(r.BalanceBefore),
		BalanceAfter:  amountPtr(r.BalanceAfter),
		HandCount:     r.HandCount,
		Notes:         r.Notes,
	}
}

// ResolveDiscrepancyRequest records the user's decision on a balance discrepancy.
type ResolveDiscrepancyRequest struct {
	Action accounting.Remediation `json:"action" binding:"required,oneof=dismiss adjustment deposit withdrawal"`
}

// SessionDisplay holds preformatted figures for a session.
type SessionDisplay struct {
	Duration      string `json:"duration"`
	NetResult     string `json:"netResult"`
	NetResultBase string `json:"netResultBase"`
}

// LiveSessionResponse defines the data returned for a live session.
type LiveSessionResponse struct {
	domain.LiveSession
	State         domain.SessionState `json:"state"`
	DurationHours decimal.Decimal     `json:"durationHours"`
	Display       SessionDisplay      `json:"display"`
}

// ToLiveSessionResponse converts a domain.LiveSession to LiveSessionResponse DTO.
// Net figures are computed live so unsaved sessions still show a result.
func ToLiveSessionResponse(s *domain.LiveSession, baseCurrency string) LiveSessionResponse {
	duration := s.DurationHours()
	return LiveSessionResponse{
		LiveSession:   *s,
		State:         s.State(),
		DurationHours: duration,
		Display: SessionDisplay{
			Duration:      utils.FormatDuration(duration),
			NetResult:     utils.FormatSignedCurrency(s.NetResult(), s.CurrencyCode),
			NetResultBase: utils.FormatSignedCurrency(s.NetResultBase(), baseCurrency),
		},
	}
}

// OnlineSessionResponse defines the data returned for an online session.
type OnlineSessionResponse struct {
	domain.OnlineSession
	State         domain.SessionState `json:"state"`
	DurationHours decimal.Decimal     `json:"durationHours"`
	Display       SessionDisplay      `json:"display"`
}

// ToOnlineSessionResponse converts a domain.OnlineSession to OnlineSessionResponse DTO.
// The platform supplies the currency; without it the stored figures are shown.
func ToOnlineSessionResponse(s *domain.OnlineSession, platform *domain.Platform, baseCurrency string) OnlineSessionResponse {
	duration := s.DurationHours()
	resp := OnlineSessionResponse{
		OnlineSession: *s,
		State:         s.State(),
		DurationHours: duration,
		Display:       SessionDisplay{Duration: utils.FormatDuration(duration)},
	}
	if platform != nil {
		resp.Display.NetResult = utils.FormatSignedCurrency(s.NetResult(), platform.CurrencyCode)
		resp.Display.NetResultBase = utils.FormatSignedCurrency(s.NetResultBase(*platform, baseCurrency), baseCurrency)
	} else {
		resp.Display.NetResultBase = utils.FormatSignedCurrency(s.NetProfitLossBase, baseCurrency)
	}
	return resp
}

// ListLiveSessionsResponse wraps a page of live sessions.
type ListLiveSessionsResponse struct {
	Sessions  []LiveSessionResponse `json:"sessions"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ListOnlineSessionsResponse wraps a page of online sessions.
type ListOnlineSessionsResponse struct {
	Sessions  []OnlineSessionResponse `json:"sessions"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// DiscrepancyResponse reports the balance check of an online session.
type DiscrepancyResponse struct {
	SessionID       string                   `json:"sessionID"`
	PlatformBalance decimal.Decimal          `json:"platformBalance"`
	ExpectedBalance decimal.Decimal          `json:"expectedBalance"`
	Direction       accounting.Direction     `json:"direction"`
	Delta           decimal.Decimal          `json:"delta"`
	DeltaDisplay    string                   `json:"deltaDisplay"`
	Suggestions     []accounting.Remediation `json:"suggestions"`
	Resolved        bool                     `json:"resolved"`
}

// ToDiscrepancyResponse converts a check result into DiscrepancyResponse.
func ToDiscrepancyResponse(s *domain.OnlineSession, platform *domain.Platform, d accounting.Discrepancy) DiscrepancyResponse {
	return DiscrepancyResponse{
		SessionID:       s.SessionID,
		PlatformBalance: platform.Balance,
		ExpectedBalance: s.BalanceBefore,
		Direction:       d.Direction,
		Delta:           d.Delta,
		DeltaDisplay:    utils.FormatCurrency(d.Delta, platform.CurrencyCode),
		Suggestions:     d.Suggestions(),
		Resolved:        s.DiscrepancyResolved,
	}
}
