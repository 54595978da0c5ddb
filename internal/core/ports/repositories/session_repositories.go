package repositories

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LiveSessionReader defines read operations for live session data
type LiveSessionReader interface {
	// FindLiveSessionByID retrieves a live session by its unique identifier.
	FindLiveSessionByID(ctx context.Context, sessionID string) (*domain.LiveSession, error)

	// ListLiveSessions retrieves live sessions newest first using token-based pagination.
	// It returns the sessions, a token for the next page, and an error.
	ListLiveSessions(ctx context.Context, limit int, nextToken *string) ([]domain.LiveSession, *string, error)

	// ListAllLiveSessions retrieves every live session, oldest first.
	ListAllLiveSessions(ctx context.Context) ([]domain.LiveSession, error)
}

// LiveSessionWriter defines write operations for live session data
type LiveSessionWriter interface {
	SaveLiveSession(ctx context.Context, session domain.LiveSession) error
	DeleteLiveSession(ctx context.Context, sessionID string) error
	SaveLiveSessionInTx(ctx context.Context, tx pgx.Tx, session domain.LiveSession) error
}

// LiveSessionTransactionSupport covers every change to a stored live session.
type LiveSessionTransactionSupport interface {
	// FindLiveSessionByIDForUpdate selects a session and locks its row for the rest of tx.
	FindLiveSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.LiveSession, error)

	// UpdateLiveSessionInTx updates a session within tx. A verified row stays verified.
	UpdateLiveSessionInTx(ctx context.Context, tx pgx.Tx, session domain.LiveSession) error
}

// LiveSessionRepositoryFacade combines all live session repository interfaces
type LiveSessionRepositoryFacade interface {
	LiveSessionReader
	LiveSessionWriter
	LiveSessionTransactionSupport
}

// OnlineSessionReader defines read operations for online session data
type OnlineSessionReader interface {
	FindOnlineSessionByID(ctx context.Context, sessionID string) (*domain.OnlineSession, error)

	// ListOnlineSessions retrieves online sessions newest first using token-based pagination.
	ListOnlineSessions(ctx context.Context, limit int, nextToken *string) ([]domain.OnlineSession, *string, error)

	ListAllOnlineSessions(ctx context.Context) ([]domain.OnlineSession, error)
}

// OnlineSessionWriter defines write operations for online session data
type OnlineSessionWriter interface {
	SaveOnlineSession(ctx context.Context, session domain.OnlineSession) error
	DeleteOnlineSession(ctx context.Context, sessionID string) error
	SaveOnlineSessionInTx(ctx context.Context, tx pgx.Tx, session domain.OnlineSession) error
}

// OnlineSessionTransactionSupport covers every change to a stored online session,
// verification included, which writes the session and its platform together.
type OnlineSessionTransactionSupport interface {
	// FindOnlineSessionByIDForUpdate selects a session and locks its row for the rest of tx.
	FindOnlineSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.OnlineSession, error)

	// UpdateOnlineSessionInTx updates a session within tx. A verified row stays verified.
	UpdateOnlineSessionInTx(ctx context.Context, tx pgx.Tx, session domain.OnlineSession) error
}

// OnlineSessionRepositoryFacade combines all online session repository interfaces
type OnlineSessionRepositoryFacade interface {
	OnlineSessionReader
	OnlineSessionWriter
	OnlineSessionTransactionSupport
}
