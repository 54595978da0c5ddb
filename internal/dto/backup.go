package dto

import (
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
)

// ExportVersion is the backup document format this build reads and writes.
const ExportVersion = 1

// ExportDocument is the JSON backup of the whole ledger.
// Records referencing a platform also carry its name; import resolves references by name.
type ExportDocument struct {
	ExportVersion  int                   `json:"exportVersion"`
	ExportDate     time.Time             `json:"exportDate"`
	BaseCurrency   string                `json:"baseCurrency"`
	Platforms      []domain.Platform     `json:"platforms"`
	LiveSessions   []domain.LiveSession  `json:"liveSessions"`
	OnlineSessions []ExportOnlineSession `json:"onlineSessions"`
	Deposits       []ExportDeposit       `json:"deposits"`
	Withdrawals    []ExportWithdrawal    `json:"withdrawals"`
	Adjustments    []ExportAdjustment    `json:"adjustments"`
}

// ExportOnlineSession is an online session with its platform name.
type ExportOnlineSession struct {
	domain.OnlineSession
	PlatformName string `json:"platformName"`
}

// ExportDeposit is a deposit with its platform name.
type ExportDeposit struct {
	domain.Deposit
	PlatformName string `json:"platformName"`
}

// ExportWithdrawal is a withdrawal with its platform name.
type ExportWithdrawal struct {
	domain.Withdrawal
	PlatformName string `json:"platformName"`
}

// ExportAdjustment is an adjustment with its platform name, empty when it has no platform.
type ExportAdjustment struct {
	domain.Adjustment
	PlatformName string `json:"platformName,omitempty"`
}

// ImportCount tallies one record kind.
type ImportCount struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ImportSummary reports what an import added and skipped.
type ImportSummary struct {
	Platforms      ImportCount `json:"platforms"`
	LiveSessions   ImportCount `json:"liveSessions"`
	OnlineSessions ImportCount `json:"onlineSessions"`
	Deposits       ImportCount `json:"deposits"`
	Withdrawals    ImportCount `json:"withdrawals"`
	Adjustments    ImportCount `json:"adjustments"`
}

// Added returns the total number of records added.
func (s ImportSummary) Added() int {
	return s.Platforms.Added + s.LiveSessions.Added + s.OnlineSessions.Added +
		s.Deposits.Added + s.Withdrawals.Added + s.Adjustments.Added
}
