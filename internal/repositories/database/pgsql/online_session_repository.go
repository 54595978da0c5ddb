package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/bankroll_app/internal/models"
	"github.com/SscSPs/bankroll_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const onlineSessionColumns = `session_id, platform_id,
	game_type, small_blind, big_blind, straddle, ante, table_size,
	table_count, start_time, end_time, break_minutes, balance_before, balance_after, hand_count,
	net_profit_loss, net_profit_loss_base, notes, is_verified, discrepancy_resolved, resolved_balance,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxOnlineSessionRepository struct {
	BaseRepository
}

// newPgxOnlineSessionRepository creates a new repository for online session data.
func newPgxOnlineSessionRepository(pool *pgxpool.Pool) portsrepo.OnlineSessionRepositoryFacade {
	return &PgxOnlineSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OnlineSessionRepositoryFacade = (*PgxOnlineSessionRepository)(nil)

func (r *PgxOnlineSessionRepository) SaveOnlineSession(ctx context.Context, session domain.OnlineSession) error {
	return r.insert(ctx, r.Pool, session)
}

func (r *PgxOnlineSessionRepository) SaveOnlineSessionInTx(ctx context.Context, tx pgx.Tx, session domain.OnlineSession) error {
	return r.insert(ctx, tx, session)
}

func (r *PgxOnlineSessionRepository) insert(ctx context.Context, q querier, session domain.OnlineSession) error {
	m := mapping.ToModelOnlineSession(session)
	query := `
		INSERT INTO online_sessions (` + onlineSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := q.Exec(ctx, query,
		m.SessionID,
		m.PlatformID,
		m.GameType,
		m.SmallBlind,
		m.BigBlind,
		m.Straddle,
		m.Ante,
		m.TableSize,
		m.TableCount,
		m.StartTime,
		m.EndTime,
		m.BreakMinutes,
		m.BalanceBefore,
		m.BalanceAfter,
		m.HandCount,
		m.NetProfitLoss,
		m.NetProfitLossBase,
		m.Notes,
		m.IsVerified,
		m.DiscrepancyResolved,
		m.ResolvedBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "online session", m.SessionID)
	}
	return nil
}

func (r *PgxOnlineSessionRepository) UpdateOnlineSessionInTx(ctx context.Context, tx pgx.Tx, session domain.OnlineSession) error {
	m := mapping.ToModelOnlineSession(session)
	query := `
		UPDATE online_sessions SET
			platform_id = $2,
			game_type = $3, small_blind = $4, big_blind = $5, straddle = $6, ante = $7, table_size = $8,
			table_count = $9, start_time = $10, end_time = $11, break_minutes = $12,
			balance_before = $13, balance_after = $14, hand_count = $15,
			net_profit_loss = $16, net_profit_loss_base = $17, notes = $18,
			is_verified = is_verified OR $19, discrepancy_resolved = $20, resolved_balance = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE session_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.SessionID,
		m.PlatformID,
		m.GameType,
		m.SmallBlind,
		m.BigBlind,
		m.Straddle,
		m.Ante,
		m.TableSize,
		m.TableCount,
		m.StartTime,
		m.EndTime,
		m.BreakMinutes,
		m.BalanceBefore,
		m.BalanceAfter,
		m.HandCount,
		m.NetProfitLoss,
		m.NetProfitLossBase,
		m.Notes,
		m.IsVerified,
		m.DiscrepancyResolved,
		m.ResolvedBalance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return expectOneRow(tag, err, "online session", m.SessionID)
}

func (r *PgxOnlineSessionRepository) DeleteOnlineSession(ctx context.Context, sessionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM online_sessions WHERE session_id = $1;`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete online session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOnlineSessionRepository) FindOnlineSessionByID(ctx context.Context, sessionID string) (*domain.OnlineSession, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+onlineSessionColumns+` FROM online_sessions WHERE session_id = $1;`, sessionID)
}

// FindOnlineSessionByIDForUpdate locks the session row until tx ends.
func (r *PgxOnlineSessionRepository) FindOnlineSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.OnlineSession, error) {
	return r.findOne(ctx, tx, `SELECT `+onlineSessionColumns+` FROM online_sessions WHERE session_id = $1 FOR UPDATE;`, sessionID)
}

func (r *PgxOnlineSessionRepository) findOne(ctx context.Context, q querier, query, sessionID string) (*domain.OnlineSession, error) {
	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query online session %s: %w", sessionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.OnlineSession])
	if err != nil {
		return nil, translateReadError(err, "online session", sessionID)
	}
	s := mapping.ToDomainOnlineSession(m)
	return &s, nil
}

func (r *PgxOnlineSessionRepository) ListOnlineSessions(ctx context.Context, limit int, nextToken *string) ([]domain.OnlineSession, *string, error) {
	ms, token, err := listSessionPage(ctx, r.Pool, onlineSessionColumns, "online_sessions", limit, nextToken,
		func(m models.OnlineSession) (time.Time, string) { return m.StartTime, m.SessionID })
	if err != nil {
		return nil, nil, err
	}
	return mapping.ToDomainOnlineSessionSlice(ms), token, nil
}

func (r *PgxOnlineSessionRepository) ListAllOnlineSessions(ctx context.Context) ([]domain.OnlineSession, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+onlineSessionColumns+` FROM online_sessions ORDER BY start_time, session_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query online sessions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.OnlineSession])
	if err != nil {
		return nil, fmt.Errorf("failed to scan online sessions: %w", err)
	}
	return mapping.ToDomainOnlineSessionSlice(ms), nil
}
