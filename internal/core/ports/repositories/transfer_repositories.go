package repositories

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DepositReader defines read operations for deposit data
type DepositReader interface {
	FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)

	// ListDeposits retrieves deposits newest first. An empty platformID lists all platforms.
	ListDeposits(ctx context.Context, platformID string) ([]domain.Deposit, error)
}

// DepositWriter defines write operations for deposit data
type DepositWriter interface {
	// SaveDepositInTx persists a deposit within tx. Balance effects are the caller's concern.
	SaveDepositInTx(ctx context.Context, tx pgx.Tx, deposit domain.Deposit) error
}

// DepositRepositoryFacade combines all deposit repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}

// WithdrawalReader defines read operations for withdrawal data
type WithdrawalReader interface {
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)

	// ListWithdrawals retrieves withdrawals newest first. An empty platformID lists all platforms.
	ListWithdrawals(ctx context.Context, platformID string) ([]domain.Withdrawal, error)
}

// WithdrawalWriter defines write operations for withdrawal data
type WithdrawalWriter interface {
	// SaveWithdrawalInTx persists a withdrawal within tx. Balance effects are the caller's concern.
	SaveWithdrawalInTx(ctx context.Context, tx pgx.Tx, withdrawal domain.Withdrawal) error
}

// WithdrawalRepositoryFacade combines all withdrawal repository interfaces
type WithdrawalRepositoryFacade interface {
	WithdrawalReader
	WithdrawalWriter
}
