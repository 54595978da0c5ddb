package mapping

import (
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/models"
	"github.com/shopspring/decimal"
)

func toModelGame(g domain.GameInfo) models.Game {
	return models.Game{
		GameType:   g.GameType,
		SmallBlind: g.SmallBlind,
		BigBlind:   g.BigBlind,
		Straddle:   g.Straddle,
		Ante:       g.Ante,
		TableSize:  g.TableSize,
	}
}

func toDomainGame(m models.Game) domain.GameInfo {
	return domain.GameInfo{
		GameType:   m.GameType,
		SmallBlind: m.SmallBlind,
		BigBlind:   m.BigBlind,
		Straddle:   m.Straddle,
		Ante:       m.Ante,
		TableSize:  m.TableSize,
	}
}

func toDomainTiming(start time.Time, end *time.Time, breakMinutes int) domain.SessionTiming {
	t := domain.SessionTiming{StartTime: start.UTC(), BreakMinutes: breakMinutes}
	if end != nil {
		e := end.UTC()
		t.EndTime = &e
	}
	return t
}

// ToModelLiveSession converts a domain LiveSession to a model LiveSession
func ToModelLiveSession(d domain.LiveSession) models.LiveSession {
	return models.LiveSession{
		SessionID:         d.SessionID,
		Location:          d.Location,
		CurrencyCode:      d.CurrencyCode,
		BuyInRate:         d.BuyInRate,
		CashOutRate:       d.CashOutRate,
		Game:              toModelGame(d.Game),
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		BreakMinutes:      d.BreakMinutes,
		BuyIn:             d.BuyIn,
		CashOut:           d.CashOut,
		Tips:              d.Tips,
		HandCount:         d.HandCount,
		NetProfitLoss:     d.NetProfitLoss,
		NetProfitLossBase: d.NetProfitLossBase,
		Notes:             d.Notes,
		IsVerified:        d.IsVerified,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLiveSession converts a model LiveSession to a domain LiveSession
func ToDomainLiveSession(m models.LiveSession) domain.LiveSession {
	return domain.LiveSession{
		SessionID:         m.SessionID,
		Location:          m.Location,
		CurrencyCode:      m.CurrencyCode,
		BuyInRate:         m.BuyInRate,
		CashOutRate:       m.CashOutRate,
		Game:              toDomainGame(m.Game),
		SessionTiming:     toDomainTiming(m.StartTime, m.EndTime, m.BreakMinutes),
		BuyIn:             m.BuyIn,
		CashOut:           m.CashOut,
		Tips:              m.Tips,
		HandCount:         m.HandCount,
		NetProfitLoss:     m.NetProfitLoss,
		NetProfitLossBase: m.NetProfitLossBase,
		Notes:             m.Notes,
		IsVerified:        m.IsVerified,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLiveSessionSlice converts a slice of model LiveSessions to a slice of domain LiveSessions
func ToDomainLiveSessionSlice(ms []models.LiveSession) []domain.LiveSession {
	ds := make([]domain.LiveSession, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiveSession(m)
	}
	return ds
}

// ToModelOnlineSession converts a domain OnlineSession to a model OnlineSession
func ToModelOnlineSession(d domain.OnlineSession) models.OnlineSession {
	return models.OnlineSession{
		SessionID:           d.SessionID,
		PlatformID:          d.PlatformID,
		Game:                toModelGame(d.Game),
		TableCount:          d.TableCount,
		StartTime:           d.StartTime,
		EndTime:             d.EndTime,
		BreakMinutes:        d.BreakMinutes,
		BalanceBefore:       d.BalanceBefore,
		BalanceAfter:        d.BalanceAfter,
		HandCount:           d.HandCount,
		NetProfitLoss:       d.NetProfitLoss,
		NetProfitLossBase:   d.NetProfitLossBase,
		Notes:               d.Notes,
		IsVerified:          d.IsVerified,
		DiscrepancyResolved: d.DiscrepancyResolved,
		ResolvedBalance:     toNullDecimal(d.ResolvedBalance),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOnlineSession converts a model OnlineSession to a domain OnlineSession
func ToDomainOnlineSession(m models.OnlineSession) domain.OnlineSession {
	return domain.OnlineSession{
		SessionID:           m.SessionID,
		PlatformID:          m.PlatformID,
		Game:                toDomainGame(m.Game),
		TableCount:          m.TableCount,
		SessionTiming:       toDomainTiming(m.StartTime, m.EndTime, m.BreakMinutes),
		BalanceBefore:       m.BalanceBefore,
		BalanceAfter:        m.BalanceAfter,
		HandCount:           m.HandCount,
		NetProfitLoss:       m.NetProfitLoss,
		NetProfitLossBase:   m.NetProfitLossBase,
		Notes:               m.Notes,
		IsVerified:          m.IsVerified,
		DiscrepancyResolved: m.DiscrepancyResolved,
		ResolvedBalance:     fromNullDecimal(m.ResolvedBalance),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOnlineSessionSlice converts a slice of model OnlineSessions to a slice of domain OnlineSessions
func ToDomainOnlineSessionSlice(ms []models.OnlineSession) []domain.OnlineSession {
	ds := make([]domain.OnlineSession, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOnlineSession(m)
	}
	return ds
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
