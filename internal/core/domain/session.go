package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// SessionState is the lifecycle position of a persisted session.
// The pre-start form state never reaches the store.
type SessionState string

const (
	SessionActive  SessionState = "active"
	SessionStopped SessionState = "stopped"
)

// SessionKind distinguishes live and online sessions.
type SessionKind string

const (
	KindLive   SessionKind = "live"
	KindOnline SessionKind = "online"
)

func errNegative(field string) error {
	return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrValidation, field)
}

// SessionTiming holds the timing fields shared by both session kinds.
type SessionTiming struct {
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime"` // nil while active
	BreakMinutes int        `json:"breakMinutes"`
}

// State derives the lifecycle state from the end timestamp.
func (t SessionTiming) State() SessionState {
	if t.EndTime == nil {
		return SessionActive
	}
	return SessionStopped
}

// IsActive reports whether the session has not been stopped yet.
func (t SessionTiming) IsActive() bool { return t.EndTime == nil }

// DurationHours is the played time from the stored timestamps. Active sessions report zero;
// elapsed-time clocks are a presentation concern.
func (t SessionTiming) DurationHours() decimal.Decimal {
	if t.EndTime == nil {
		return decimal.Zero
	}
	return accounting.SessionDuration(t.StartTime, *t.EndTime, t.BreakMinutes)
}

func (t *SessionTiming) stop(end time.Time) error {
	if t.EndTime != nil {
		return fmt.Errorf("%w: session is already stopped", apperrors.ErrValidation)
	}
	if end.Before(t.StartTime) {
		return fmt.Errorf("%w: end time precedes start time", apperrors.ErrValidation)
	}
	t.EndTime = &end
	return nil
}

func (t *SessionTiming) applyTiming(start, end *time.Time, breakMinutes *int) error {
	if breakMinutes != nil && *breakMinutes < 0 {
		return errNegative("break minutes")
	}
	if end != nil && t.EndTime == nil {
		return fmt.Errorf("%w: an active session is stopped, not edited", apperrors.ErrValidation)
	}
	newStart := t.StartTime
	if start != nil {
		newStart = *start
	}
	newEnd := t.EndTime
	if end != nil {
		newEnd = end
	}
	if newEnd != nil && newEnd.Before(newStart) {
		return fmt.Errorf("%w: end time precedes start time", apperrors.ErrValidation)
	}
	t.StartTime = newStart
	t.EndTime = newEnd
	if breakMinutes != nil {
		t.BreakMinutes = *breakMinutes
	}
	return nil
}

// LiveSession is a cash game played in a card room.
// BuyInRate and CashOutRate convert one session unit into the base currency at the moment
// each leg happened.
type LiveSession struct {
	SessionID    string          `json:"sessionID"`
	Location     string          `json:"location"`
	CurrencyCode string          `json:"currencyCode"`
	BuyInRate    decimal.Decimal `json:"buyInRate"`
	CashOutRate  decimal.Decimal `json:"cashOutRate"`
	Game         GameInfo        `json:"game"`
	SessionTiming
	BuyIn   decimal.Decimal `json:"buyIn"`
	CashOut decimal.Decimal `json:"cashOut"`
	// Tips are recorded for reference and never part of any net figure.
	Tips              decimal.Decimal `json:"tips"`
	HandCount         int             `json:"handCount"`
	NetProfitLoss     decimal.Decimal `json:"netProfitLoss"`
	NetProfitLossBase decimal.Decimal `json:"netProfitLossBase"`
	Notes             string          `json:"notes"`
	IsVerified        bool            `json:"isVerified"`
	AuditFields
}

// NetResult is cash-out minus buy-in in the session currency.
func (s *LiveSession) NetResult() decimal.Decimal {
	return accounting.SessionNetResult(s.BuyIn, s.CashOut)
}

// NetResultBase converts each leg with its own rate.
func (s *LiveSession) NetResultBase() decimal.Decimal {
	return accounting.LiveNetResultBase(s.BuyIn, s.BuyInRate, s.CashOut, s.CashOutRate)
}

// EffectiveHands is the manual hand count when set, otherwise the estimate.
func (s *LiveSession) EffectiveHands(handsPerHour int) int {
	return accounting.EffectiveHands(s.HandCount, accounting.EstimatedHands(s.DurationHours(), handsPerHour, 1))
}

// Stop stamps the end time.
func (s *LiveSession) Stop(end time.Time) error { return s.stop(end) }

// Finalize stores the derived net figures and hand count.
func (s *LiveSession) Finalize(settings Settings) {
	s.NetProfitLoss = s.NetResult()
	s.NetProfitLossBase = s.NetResultBase()
	s.HandCount = s.EffectiveHands(settings.HandsPerHourLive)
}

// LiveSessionPatch carries an autosave change set. Nil fields are left untouched.
type LiveSessionPatch struct {
	Location     *string
	CurrencyCode *string
	BuyInRate    *decimal.Decimal
	CashOutRate  *decimal.Decimal
	Game         GameInfoPatch
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes *int
	BuyIn        *decimal.Decimal
	CashOut      *decimal.Decimal
	Tips         *decimal.Decimal
	HandCount    *int
	Notes        *string
}

// ApplyPatch applies p, enforcing verification locks and field validation.
// Nothing is modified when an error is returned.
func (s *LiveSession) ApplyPatch(p LiveSessionPatch) error {
	if s.IsVerified {
		if changedDecimal(p.BuyIn, s.BuyIn) || changedDecimal(p.CashOut, s.CashOut) ||
			(p.CurrencyCode != nil && !strings.EqualFold(*p.CurrencyCode, s.CurrencyCode)) {
			return fmt.Errorf("%w: buy-in, cash-out and currency of a verified session", apperrors.ErrLocked)
		}
	}
	for name, v := range map[string]*decimal.Decimal{"buy-in": p.BuyIn, "cash-out": p.CashOut, "tips": p.Tips} {
		if v != nil && v.IsNegative() {
			return errNegative(name)
		}
	}
	for _, v := range []*decimal.Decimal{p.BuyInRate, p.CashOutRate} {
		if v != nil && !v.IsPositive() {
			return fmt.Errorf("%w: exchange rates must be positive", apperrors.ErrValidation)
		}
	}
	if p.HandCount != nil && *p.HandCount < 0 {
		return errNegative("hand count")
	}

	next := *s
	if err := p.Game.ApplyTo(&next.Game); err != nil {
		return err
	}
	if err := next.applyTiming(p.StartTime, p.EndTime, p.BreakMinutes); err != nil {
		return err
	}
	if p.Location != nil {
		next.Location = strings.TrimSpace(*p.Location)
	}
	if p.CurrencyCode != nil {
		next.CurrencyCode = strings.ToUpper(*p.CurrencyCode)
	}
	setDecimal(&next.BuyInRate, p.BuyInRate)
	setDecimal(&next.CashOutRate, p.CashOutRate)
	setDecimal(&next.BuyIn, p.BuyIn)
	setDecimal(&next.CashOut, p.CashOut)
	setDecimal(&next.Tips, p.Tips)
	if p.HandCount != nil {
		next.HandCount = *p.HandCount
	}
	if p.Notes != nil {
		next.Notes = *p.Notes
	}
	*s = next
	return nil
}

// OnlineSession is played on a Platform. The balances before and after the session are the
// source of truth for its result.
type OnlineSession struct {
	SessionID  string   `json:"sessionID"`
	PlatformID string   `json:"platformID"`
	Game       GameInfo `json:"game"`
	TableCount int      `json:"tableCount"`
	SessionTiming
	BalanceBefore     decimal.Decimal `json:"balanceBefore"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	HandCount         int             `json:"handCount"`
	NetProfitLoss     decimal.Decimal `json:"netProfitLoss"`
	NetProfitLossBase decimal.Decimal `json:"netProfitLossBase"`
	Notes             string          `json:"notes"`
	IsVerified        bool            `json:"isVerified"`
	// DiscrepancyResolved is set once the balance check found nothing or the user acted on it.
	DiscrepancyResolved bool `json:"discrepancyResolved"`
	// ResolvedBalance is the platform balance the resolution was made against.
	ResolvedBalance *decimal.Decimal `json:"resolvedBalance,omitempty"`
	AuditFields
}

// NetResult is balance-after minus balance-before in the platform currency.
func (s *OnlineSession) NetResult() decimal.Decimal {
	return accounting.SessionNetResult(s.BalanceBefore, s.BalanceAfter)
}

// NetResultBase converts the net result with the platform's latest rate.
func (s *OnlineSession) NetResultBase(platform Platform, baseCurrency string) decimal.Decimal {
	return accounting.OnlineNetResultBase(s.NetResult(), platform.CurrencyCode, baseCurrency, platform.LatestRate)
}

// EffectiveHands is the manual hand count when set, otherwise the multi-table estimate.
func (s *OnlineSession) EffectiveHands(handsPerHour int) int {
	return accounting.EffectiveHands(s.HandCount, accounting.EstimatedHands(s.DurationHours(), handsPerHour, s.TableCount))
}

// Stop stamps the end time. It never touches the platform balance.
func (s *OnlineSession) Stop(end time.Time) error { return s.stop(end) }

// Finalize stores the derived net figures and hand count.
func (s *OnlineSession) Finalize(platform Platform, settings Settings) {
	s.NetProfitLoss = s.NetResult()
	s.NetProfitLossBase = s.NetResultBase(platform, settings.BaseCurrency)
	s.HandCount = s.EffectiveHands(settings.HandsPerHourOnline)
}

// ResolveAt marks the reconciliation settled against the given platform balance.
func (s *OnlineSession) ResolveAt(platformBalance decimal.Decimal) {
	balance := platformBalance
	s.DiscrepancyResolved = true
	s.ResolvedBalance = &balance
}

// IsResolvedAt reports whether the reconciliation was settled against exactly this balance.
func (s *OnlineSession) IsResolvedAt(platformBalance decimal.Decimal) bool {
	return s.DiscrepancyResolved && s.ResolvedBalance != nil && s.ResolvedBalance.Equal(platformBalance)
}

// Recheck classifies the current platform balance against BalanceBefore. A clean check
// resolves the session. A discrepancy reopens it unless it was resolved at this same balance.
func (s *OnlineSession) Recheck(platformBalance decimal.Decimal) accounting.Discrepancy {
	discrepancy := accounting.CheckDiscrepancy(platformBalance, s.BalanceBefore)
	switch {
	case !discrepancy.Found():
		s.ResolveAt(platformBalance)
	case !s.IsResolvedAt(platformBalance):
		s.reopen()
	}
	return discrepancy
}

func (s *OnlineSession) reopen() {
	s.DiscrepancyResolved = false
	s.ResolvedBalance = nil
}

// OnlineSessionPatch carries an autosave change set. Nil fields are left untouched.
type OnlineSessionPatch struct {
	PlatformID    *string
	Game          GameInfoPatch
	TableCount    *int
	StartTime     *time.Time
	EndTime       *time.Time
	BreakMinutes  *int
	BalanceBefore *decimal.Decimal
	BalanceAfter  *decimal.Decimal
	HandCount     *int
	Notes         *string
}

// ApplyPatch applies p, enforcing verification locks and field validation.
// Changing the balances or the platform of an unverified session reopens its reconciliation.
func (s *OnlineSession) ApplyPatch(p OnlineSessionPatch) error {
	balancesChanged := changedDecimal(p.BalanceBefore, s.BalanceBefore) || changedDecimal(p.BalanceAfter, s.BalanceAfter) ||
		(p.PlatformID != nil && *p.PlatformID != s.PlatformID)
	if s.IsVerified && balancesChanged {
		return fmt.Errorf("%w: balances and platform of a verified session", apperrors.ErrLocked)
	}
	if p.TableCount != nil && *p.TableCount < 1 {
		return fmt.Errorf("%w: table count must be at least 1", apperrors.ErrValidation)
	}
	if p.HandCount != nil && *p.HandCount < 0 {
		return errNegative("hand count")
	}
	if p.PlatformID != nil && strings.TrimSpace(*p.PlatformID) == "" {
		return fmt.Errorf("%w: platform is required", apperrors.ErrValidation)
	}

	next := *s
	if err := p.Game.ApplyTo(&next.Game); err != nil {
		return err
	}
	if err := next.applyTiming(p.StartTime, p.EndTime, p.BreakMinutes); err != nil {
		return err
	}
	if p.PlatformID != nil {
		next.PlatformID = *p.PlatformID
	}
	if p.TableCount != nil {
		next.TableCount = *p.TableCount
	}
	setDecimal(&next.BalanceBefore, p.BalanceBefore)
	setDecimal(&next.BalanceAfter, p.BalanceAfter)
	if p.HandCount != nil {
		next.HandCount = *p.HandCount
	}
	if p.Notes != nil {
		next.Notes = *p.Notes
	}
	if balancesChanged {
		next.reopen()
	}
	*s = next
	return nil
}

func changedDecimal(v *decimal.Decimal, current decimal.Decimal) bool {
	return v != nil && !v.Equal(current)
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}
