package pgsql

import (
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:         &BaseRepository{Pool: dbPool},
		PlatformRepo:      newPgxPlatformRepository(dbPool),
		LiveSessionRepo:   newPgxLiveSessionRepository(dbPool),
		OnlineSessionRepo: newPgxOnlineSessionRepository(dbPool),
		DepositRepo:       newPgxDepositRepository(dbPool),
		WithdrawalRepo:    newPgxWithdrawalRepository(dbPool),
		AdjustmentRepo:    newPgxAdjustmentRepository(dbPool),
	}
}
