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

const depositColumns = `deposit_id, platform_id, deposit_date, amount_sent, amount_received,
	is_foreign_exchange, effective_rate, processing_fee, method, notes,
	created_at, created_by, last_updated_at, last_updated_by`

const withdrawalColumns = `withdrawal_id, platform_id, withdrawal_date, amount_requested, amount_received,
	is_foreign_exchange, effective_rate, processing_fee, method, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxDepositRepository struct {
	BaseRepository
}

// newPgxDepositRepository creates a new repository for deposit data.
func newPgxDepositRepository(pool *pgxpool.Pool) portsrepo.DepositRepositoryFacade {
	return &PgxDepositRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepositRepositoryFacade = (*PgxDepositRepository)(nil)

func (r *PgxDepositRepository) SaveDepositInTx(ctx context.Context, tx pgx.Tx, deposit domain.Deposit) error {
	m := mapping.ToModelDeposit(deposit)
	query := `
		INSERT INTO deposits (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.DepositID,
		m.PlatformID,
		m.DepositDate,
		m.AmountSent,
		m.AmountReceived,
		m.IsForeignExchange,
		m.EffectiveRate,
		m.ProcessingFee,
		m.Method,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "deposit", m.DepositID)
	}
	return nil
}

func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+depositColumns+` FROM deposits WHERE deposit_id = $1;`, depositID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit %s: %w", depositID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Deposit])
	if err != nil {
		return nil, translateReadError(err, "deposit", depositID)
	}
	d := mapping.ToDomainDeposit(m)
	return &d, nil
}

func (r *PgxDepositRepository) ListDeposits(ctx context.Context, platformID string) ([]domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE ($1 = '' OR platform_id = $1) ORDER BY deposit_date DESC, deposit_id DESC;`
	rows, err := r.Pool.Query(ctx, query, platformID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposits: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Deposit])
	if err != nil {
		return nil, fmt.Errorf("failed to scan deposits: %w", err)
	}
	return mapping.ToDomainDepositSlice(ms), nil
}

type PgxWithdrawalRepository struct {
	BaseRepository
}

// newPgxWithdrawalRepository creates a new repository for withdrawal data.
func newPgxWithdrawalRepository(pool *pgxpool.Pool) portsrepo.WithdrawalRepositoryFacade {
	return &PgxWithdrawalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

func (r *PgxWithdrawalRepository) SaveWithdrawalInTx(ctx context.Context, tx pgx.Tx, withdrawal domain.Withdrawal) error {
	m := mapping.ToModelWithdrawal(withdrawal)
	query := `
		INSERT INTO withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.WithdrawalID,
		m.PlatformID,
		m.WithdrawalDate,
		m.AmountRequested,
		m.AmountReceived,
		m.IsForeignExchange,
		m.EffectiveRate,
		m.ProcessingFee,
		m.Method,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "withdrawal", m.WithdrawalID)
	}
	return nil
}

func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE withdrawal_id = $1;`, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal %s: %w", withdrawalID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Withdrawal])
	if err != nil {
		return nil, translateReadError(err, "withdrawal", withdrawalID)
	}
	w := mapping.ToDomainWithdrawal(m)
	return &w, nil
}

func (r *PgxWithdrawalRepository) ListWithdrawals(ctx context.Context, platformID string) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE ($1 = '' OR platform_id = $1) ORDER BY withdrawal_date DESC, withdrawal_id DESC;`
	rows, err := r.Pool.Query(ctx, query, platformID)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Withdrawal])
	if err != nil {
		return nil, fmt.Errorf("failed to scan withdrawals: %w", err)
	}
	return mapping.ToDomainWithdrawalSlice(ms), nil
}
