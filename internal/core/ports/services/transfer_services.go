package services

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/dto"
)

// TransferReaderSvc defines read operations for deposits and withdrawals
type TransferReaderSvc interface {
	GetDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)
	ListDeposits(ctx context.Context, platformID string) ([]domain.Deposit, error)
	GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, platformID string) ([]domain.Withdrawal, error)
}

// TransferWriterSvc records transfers and applies their balance effect atomically
type TransferWriterSvc interface {
	CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, userID string) (*domain.Deposit, error)
	CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, userID string) (*domain.Withdrawal, error)
}

// TransferSvcFacade combines all transfer service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}

// AdjustmentSvcFacade records informational ledger corrections
type AdjustmentSvcFacade interface {
	CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, userID string) (*domain.Adjustment, error)
	GetAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error)
	ListAdjustments(ctx context.Context) ([]domain.Adjustment, error)
}

// BackupSvcFacade exports and imports the whole ledger as JSON
type BackupSvcFacade interface {
	Export(ctx context.Context) (*dto.ExportDocument, error)

	// Import adds every record whose id is not yet stored. It never updates or deletes.
	Import(ctx context.Context, doc dto.ExportDocument, userID string) (*dto.ImportSummary, error)
}
