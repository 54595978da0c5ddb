package repositories

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AdjustmentReader defines read operations for adjustment data
type AdjustmentReader interface {
	FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error)

	// ListAdjustments retrieves adjustments newest first.
	ListAdjustments(ctx context.Context) ([]domain.Adjustment, error)
}

// AdjustmentWriter defines write operations for adjustment data
type AdjustmentWriter interface {
	SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error
	SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.Adjustment) error
}

// AdjustmentRepositoryFacade combines all adjustment repository interfaces
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
