package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/bankroll_app/internal/models"
	"github.com/SscSPs/bankroll_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adjustmentColumns = `adjustment_id, platform_id, name, amount, adjustment_date,
	currency_code, exchange_rate, amount_base, is_online, location, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a new repository for adjustment data.
func newPgxAdjustmentRepository(pool *pgxpool.Pool) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error {
	return r.insert(ctx, r.Pool, adjustment)
}

func (r *PgxAdjustmentRepository) SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.Adjustment) error {
	return r.insert(ctx, tx, adjustment)
}

func (r *PgxAdjustmentRepository) insert(ctx context.Context, q querier, adjustment domain.Adjustment) error {
	m := mapping.ToModelAdjustment(adjustment)
	query := `
		INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := q.Exec(ctx, query,
		m.AdjustmentID,
		m.PlatformID, // nil pointer stores NULL
		m.Name,
		m.Amount,
		m.AdjustmentDate,
		m.CurrencyCode,
		m.ExchangeRate,
		m.AmountBase,
		m.IsOnline,
		m.Location,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "adjustment", m.AdjustmentID)
	}
	return nil
}

func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+adjustmentColumns+` FROM adjustments WHERE adjustment_id = $1;`, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustment %s: %w", adjustmentID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Adjustment])
	if err != nil {
		return nil, translateReadError(err, "adjustment", adjustmentID)
	}
	a := mapping.ToDomainAdjustment(m)
	return &a, nil
}

func (r *PgxAdjustmentRepository) ListAdjustments(ctx context.Context) ([]domain.Adjustment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+adjustmentColumns+` FROM adjustments ORDER BY adjustment_date DESC, adjustment_id DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Adjustment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan adjustments: %w", err)
	}
	return mapping.ToDomainAdjustmentSlice(ms), nil
}
