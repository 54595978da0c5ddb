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

const platformColumns = `platform_id, name, currency_code, balance, latest_rate,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPlatformRepository struct {
	BaseRepository
}

// newPgxPlatformRepository creates a new repository for platform data.
func newPgxPlatformRepository(pool *pgxpool.Pool) portsrepo.PlatformRepositoryFacade {
	return &PgxPlatformRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlatformRepositoryFacade = (*PgxPlatformRepository)(nil)

func (r *PgxPlatformRepository) SavePlatform(ctx context.Context, platform domain.Platform) error {
	return r.insert(ctx, r.Pool, platform)
}

func (r *PgxPlatformRepository) SavePlatformInTx(ctx context.Context, tx pgx.Tx, platform domain.Platform) error {
	return r.insert(ctx, tx, platform)
}

func (r *PgxPlatformRepository) insert(ctx context.Context, q querier, platform domain.Platform) error {
	m := mapping.ToModelPlatform(platform)
	query := `
		INSERT INTO platforms (` + platformColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := q.Exec(ctx, query,
		m.PlatformID,
		m.Name,
		m.CurrencyCode,
		m.Balance,
		m.LatestRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "platform", m.PlatformID)
	}
	return nil
}

// UpdatePlatform writes the editable fields. The balance is only changed through
// UpdatePlatformBalanceInTx.
func (r *PgxPlatformRepository) UpdatePlatform(ctx context.Context, platform domain.Platform) error {
	m := mapping.ToModelPlatform(platform)
	query := `
		UPDATE platforms
		SET name = $2, latest_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE platform_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.PlatformID, m.Name, m.LatestRate, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectOneRow(tag, err, "platform", m.PlatformID)
}

func (r *PgxPlatformRepository) UpdatePlatformBalanceInTx(ctx context.Context, tx pgx.Tx, platform domain.Platform) error {
	m := mapping.ToModelPlatform(platform)
	query := `
		UPDATE platforms
		SET balance = $2, latest_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE platform_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.PlatformID, m.Balance, m.LatestRate, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectOneRow(tag, err, "platform", m.PlatformID)
}

func (r *PgxPlatformRepository) FindPlatformByID(ctx context.Context, platformID string) (*domain.Platform, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+platformColumns+` FROM platforms WHERE platform_id = $1;`, platformID)
}

// FindPlatformByName matches names case-insensitively.
func (r *PgxPlatformRepository) FindPlatformByName(ctx context.Context, name string) (*domain.Platform, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+platformColumns+` FROM platforms WHERE lower(name) = lower($1);`, name)
}

// FindPlatformByIDForUpdate locks the platform row until tx ends.
func (r *PgxPlatformRepository) FindPlatformByIDForUpdate(ctx context.Context, tx pgx.Tx, platformID string) (*domain.Platform, error) {
	return r.findOne(ctx, tx, `SELECT `+platformColumns+` FROM platforms WHERE platform_id = $1 FOR UPDATE;`, platformID)
}

func (r *PgxPlatformRepository) findOne(ctx context.Context, q querier, query, key string) (*domain.Platform, error) {
	rows, err := q.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query platform %s: %w", key, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Platform])
	if err != nil {
		return nil, translateReadError(err, "platform", key)
	}
	p := mapping.ToDomainPlatform(m)
	return &p, nil
}

func (r *PgxPlatformRepository) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+platformColumns+` FROM platforms ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query platforms: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Platform])
	if err != nil {
		return nil, fmt.Errorf("failed to scan platforms: %w", err)
	}
	return mapping.ToDomainPlatformSlice(ms), nil
}
