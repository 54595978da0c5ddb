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

const liveSessionColumns = `session_id, location, currency_code, buy_in_rate, cash_out_rate,
	game_type, small_blind, big_blind, straddle, ante, table_size,
	start_time, end_time, break_minutes, buy_in, cash_out, tips, hand_count,
	net_profit_loss, net_profit_loss_base, notes, is_verified,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLiveSessionRepository struct {
	BaseRepository
}

// newPgxLiveSessionRepository creates a new repository for live session data.
func newPgxLiveSessionRepository(pool *pgxpool.Pool) portsrepo.LiveSessionRepositoryFacade {
	return &PgxLiveSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LiveSessionRepositoryFacade = (*PgxLiveSessionRepository)(nil)

func (r *PgxLiveSessionRepository) SaveLiveSession(ctx context.Context, session domain.LiveSession) error {
	return r.insert(ctx, r.Pool, session)
}

func (r *PgxLiveSessionRepository) SaveLiveSessionInTx(ctx context.Context, tx pgx.Tx, session domain.LiveSession) error {
	return r.insert(ctx, tx, session)
}

func (r *PgxLiveSessionRepository) insert(ctx context.Context, q querier, session domain.LiveSession) error {
	m := mapping.ToModelLiveSession(session)
	query := `
		INSERT INTO live_sessions (` + liveSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err := q.Exec(ctx, query,
		m.SessionID,
		m.Location,
		m.CurrencyCode,
		m.BuyInRate,
		m.CashOutRate,
		m.GameType,
		m.SmallBlind,
		m.BigBlind,
		m.Straddle,
		m.Ante,
		m.TableSize,
		m.StartTime,
		m.EndTime,
		m.BreakMinutes,
		m.BuyIn,
		m.CashOut,
		m.Tips,
		m.HandCount,
		m.NetProfitLoss,
		m.NetProfitLossBase,
		m.Notes,
		m.IsVerified,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "live session", m.SessionID)
	}
	return nil
}

func (r *PgxLiveSessionRepository) UpdateLiveSessionInTx(ctx context.Context, tx pgx.Tx, session domain.LiveSession) error {
	m := mapping.ToModelLiveSession(session)
	query := `
		UPDATE live_sessions SET
			location = $2, currency_code = $3, buy_in_rate = $4, cash_out_rate = $5,
			game_type = $6, small_blind = $7, big_blind = $8, straddle = $9, ante = $10, table_size = $11,
			start_time = $12, end_time = $13, break_minutes = $14,
			buy_in = $15, cash_out = $16, tips = $17, hand_count = $18,
			net_profit_loss = $19, net_profit_loss_base = $20, notes = $21, is_verified = is_verified OR $22,
			last_updated_at = $23, last_updated_by = $24
		WHERE session_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.SessionID,
		m.Location,
		m.CurrencyCode,
		m.BuyInRate,
		m.CashOutRate,
		m.GameType,
		m.SmallBlind,
		m.BigBlind,
		m.Straddle,
		m.Ante,
		m.TableSize,
		m.StartTime,
		m.EndTime,
		m.BreakMinutes,
		m.BuyIn,
		m.CashOut,
		m.Tips,
		m.HandCount,
		m.NetProfitLoss,
		m.NetProfitLossBase,
		m.Notes,
		m.IsVerified,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return expectOneRow(tag, err, "live session", m.SessionID)
}

func (r *PgxLiveSessionRepository) DeleteLiveSession(ctx context.Context, sessionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM live_sessions WHERE session_id = $1;`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete live session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLiveSessionRepository) FindLiveSessionByID(ctx context.Context, sessionID string) (*domain.LiveSession, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+liveSessionColumns+` FROM live_sessions WHERE session_id = $1;`, sessionID)
}

// FindLiveSessionByIDForUpdate locks the session row until tx ends.
func (r *PgxLiveSessionRepository) FindLiveSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.LiveSession, error) {
	return r.findOne(ctx, tx, `SELECT `+liveSessionColumns+` FROM live_sessions WHERE session_id = $1 FOR UPDATE;`, sessionID)
}

func (r *PgxLiveSessionRepository) findOne(ctx context.Context, q querier, query, sessionID string) (*domain.LiveSession, error) {
	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query live session %s: %w", sessionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LiveSession])
	if err != nil {
		return nil, translateReadError(err, "live session", sessionID)
	}
	s := mapping.ToDomainLiveSession(m)
	return &s, nil
}

func (r *PgxLiveSessionRepository) ListLiveSessions(ctx context.Context, limit int, nextToken *string) ([]domain.LiveSession, *string, error) {
	ms, token, err := listSessionPage(ctx, r.Pool, liveSessionColumns, "live_sessions", limit, nextToken,
		func(m models.LiveSession) (time.Time, string) { return m.StartTime, m.SessionID })
	if err != nil {
		return nil, nil, err
	}
	return mapping.ToDomainLiveSessionSlice(ms), token, nil
}

func (r *PgxLiveSessionRepository) ListAllLiveSessions(ctx context.Context) ([]domain.LiveSession, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+liveSessionColumns+` FROM live_sessions ORDER BY start_time, session_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query live sessions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LiveSession])
	if err != nil {
		return nil, fmt.Errorf("failed to scan live sessions: %w", err)
	}
	return mapping.ToDomainLiveSessionSlice(ms), nil
}
