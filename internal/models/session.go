package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game holds the game columns shared by both session tables.
type Game struct {
	GameType   string          `db:"game_type"`
	SmallBlind decimal.Decimal `db:"small_blind"`
	BigBlind   decimal.Decimal `db:"big_blind"`
	Straddle   decimal.Decimal `db:"straddle"`
	Ante       decimal.Decimal `db:"ante"`
	TableSize  int             `db:"table_size"`
}

// LiveSession is a row of the live_sessions table.
type LiveSession struct {
	SessionID    string          `db:"session_id"`
	Location     string          `db:"location"`
	CurrencyCode string          `db:"currency_code"`
	BuyInRate    decimal.Decimal `db:"buy_in_rate"`
	CashOutRate  decimal.Decimal `db:"cash_out_rate"`
	Game
	StartTime         time.Time       `db:"start_time"`
	EndTime           *time.Time      `db:"end_time"` // Nullable
	BreakMinutes      int             `db:"break_minutes"`
	BuyIn             decimal.Decimal `db:"buy_in"`
	CashOut           decimal.Decimal `db:"cash_out"`
	Tips              decimal.Decimal `db:"tips"`
	HandCount         int             `db:"hand_count"`
	NetProfitLoss     decimal.Decimal `db:"net_profit_loss"`
	NetProfitLossBase decimal.Decimal `db:"net_profit_loss_base"`
	Notes             string          `db:"notes"`
	IsVerified        bool            `db:"is_verified"`
	AuditFields
}

// OnlineSession is a row of the online_sessions table.
type OnlineSession struct {
	SessionID  string `db:"session_id"`
	PlatformID string `db:"platform_id"`
	Game
	TableCount          int                 `db:"table_count"`
	StartTime           time.Time           `db:"start_time"`
	EndTime             *time.Time          `db:"end_time"` // Nullable
	BreakMinutes        int                 `db:"break_minutes"`
	BalanceBefore       decimal.Decimal     `db:"balance_before"`
	BalanceAfter        decimal.Decimal     `db:"balance_after"`
	HandCount           int                 `db:"hand_count"`
	NetProfitLoss       decimal.Decimal     `db:"net_profit_loss"`
	NetProfitLossBase   decimal.Decimal     `db:"net_profit_loss_base"`
	Notes               string              `db:"notes"`
	IsVerified          bool                `db:"is_verified"`
	DiscrepancyResolved bool                `db:"discrepancy_resolved"`
	ResolvedBalance     decimal.NullDecimal `db:"resolved_balance"` // Nullable
	AuditFields
}
