package services

import (
	"strings"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/dto"
)

// Snapshot is the set of records already stored, as seen by an import.
type Snapshot struct {
	Platforms      []domain.Platform
	LiveSessions   []domain.LiveSession
	OnlineSessions []domain.OnlineSession
	Deposits       []domain.Deposit
	Withdrawals    []domain.Withdrawal
	Adjustments    []domain.Adjustment
}

// ImportPlan lists the records an import will insert, with platform references
// already rewritten to local ids.
type ImportPlan struct {
	Platforms      []domain.Platform
	LiveSessions   []domain.LiveSession
	OnlineSessions []domain.OnlineSession
	Deposits       []domain.Deposit
	Withdrawals    []domain.Withdrawal
	Adjustments    []domain.Adjustment
	Summary        dto.ImportSummary
}

// PlanImport decides which records of doc are new. Records whose id is already known are
// skipped, platforms are also matched by name, and records pointing at a platform that
// cannot be resolved are skipped. It never modifies existing records.
func PlanImport(existing Snapshot, doc dto.ExportDocument) ImportPlan {
	var plan ImportPlan

	// platform name (case-insensitive) -> local id
	byName := make(map[string]string)
	knownPlatforms := make(map[string]bool)
	for _, p := range existing.Platforms {
		byName[nameKey(p.Name)] = p.PlatformID
		knownPlatforms[p.PlatformID] = true
	}
	for _, p := range doc.Platforms {
		key := nameKey(p.Name)
		if _, ok := byName[key]; ok {
			// references by this name resolve to the stored platform
			plan.Summary.Platforms.Skipped++
			continue
		}
		if p.PlatformID == "" || key == "" {
			plan.Summary.Platforms.Skipped++
			continue
		}
		if knownPlatforms[p.PlatformID] {
			// renamed locally since the export
			byName[key] = p.PlatformID
			plan.Summary.Platforms.Skipped++
			continue
		}
		byName[key] = p.PlatformID
		knownPlatforms[p.PlatformID] = true
		plan.Platforms = append(plan.Platforms, p)
		plan.Summary.Platforms.Added++
	}

	resolve := func(name, id string) (string, bool) {
		if name != "" {
			localID, ok := byName[nameKey(name)]
			return localID, ok
		}
		return id, knownPlatforms[id]
	}

	seen := idSet(existing.LiveSessions, func(s domain.LiveSession) string { return s.SessionID })
	for _, s := range doc.LiveSessions {
		if !seen.claim(s.SessionID) {
			plan.Summary.LiveSessions.Skipped++
			continue
		}
		plan.LiveSessions = append(plan.LiveSessions, s)
		plan.Summary.LiveSessions.Added++
	}

	seen = idSet(existing.OnlineSessions, func(s domain.OnlineSession) string { return s.SessionID })
	for _, s := range doc.OnlineSessions {
		localID, ok := resolve(s.PlatformName, s.PlatformID)
		if !ok || !seen.claim(s.SessionID) {
			plan.Summary.OnlineSessions.Skipped++
			continue
		}
		s.OnlineSession.PlatformID = localID
		plan.OnlineSessions = append(plan.OnlineSessions, s.OnlineSession)
		plan.Summary.OnlineSessions.Added++
	}

	seen = idSet(existing.Deposits, func(d domain.Deposit) string { return d.DepositID })
	for _, d := range doc.Deposits {
		localID, ok := resolve(d.PlatformName, d.PlatformID)
		if !ok || !seen.claim(d.DepositID) {
			plan.Summary.Deposits.Skipped++
			continue
		}
		d.Deposit.PlatformID = localID
		plan.Deposits = append(plan.Deposits, d.Deposit)
		plan.Summary.Deposits.Added++
	}

	seen = idSet(existing.Withdrawals, func(w domain.Withdrawal) string { return w.WithdrawalID })
	for _, w := range doc.Withdrawals {
		localID, ok := resolve(w.PlatformName, w.PlatformID)
		if !ok || !seen.claim(w.WithdrawalID) {
			plan.Summary.Withdrawals.Skipped++
			continue
		}
		w.Withdrawal.PlatformID = localID
		plan.Withdrawals = append(plan.Withdrawals, w.Withdrawal)
		plan.Summary.Withdrawals.Added++
	}

	seen = idSet(existing.Adjustments, func(a domain.Adjustment) string { return a.AdjustmentID })
	for _, a := range doc.Adjustments {
		adjustment := a.Adjustment
		if a.PlatformName != "" || adjustment.PlatformID != nil {
			id := ""
			if adjustment.PlatformID != nil {
				id = *adjustment.PlatformID
			}
			localID, ok := resolve(a.PlatformName, id)
			if !ok {
				plan.Summary.Adjustments.Skipped++
				continue
			}
			adjustment.PlatformID = &localID
		}
		if !seen.claim(adjustment.AdjustmentID) {
			plan.Summary.Adjustments.Skipped++
			continue
		}
		plan.Adjustments = append(plan.Adjustments, adjustment)
		plan.Summary.Adjustments.Added++
	}

	return plan
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type ids map[string]bool

func idSet[T any](records []T, id func(T) string) ids {
	set := make(ids, len(records))
	for _, r := range records {
		set[id(r)] = true
	}
	return set
}

// claim reports whether id is new and records it, so duplicates inside one document count once.
func (s ids) claim(id string) bool {
	if id == "" || s[id] {
		return false
	}
	s[id] = true
	return true
}
