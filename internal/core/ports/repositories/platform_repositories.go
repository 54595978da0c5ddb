package repositories

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PlatformReader defines read operations for platform data
type PlatformReader interface {
	// FindPlatformByID retrieves a platform by its unique identifier.
	FindPlatformByID(ctx context.Context, platformID string) (*domain.Platform, error)

	// FindPlatformByName retrieves a platform by its unique name.
	FindPlatformByName(ctx context.Context, name string) (*domain.Platform, error)

	// ListPlatforms retrieves every platform ordered by name.
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
}

// PlatformWriter defines write operations for platform data
type PlatformWriter interface {
	// SavePlatform persists a new platform.
	SavePlatform(ctx context.Context, platform domain.Platform) error

	// UpdatePlatform updates the name and latest rate. The balance column is not touched.
	UpdatePlatform(ctx context.Context, platform domain.Platform) error
}

// PlatformTransactionSupport defines the balance operations that run inside a transaction
type PlatformTransactionSupport interface {
	// FindPlatformByIDForUpdate selects a platform and locks its row for the rest of tx.
	FindPlatformByIDForUpdate(ctx context.Context, tx pgx.Tx, platformID string) (*domain.Platform, error)

	// UpdatePlatformBalanceInTx writes balance and latest rate within tx.
	UpdatePlatformBalanceInTx(ctx context.Context, tx pgx.Tx, platform domain.Platform) error

	// SavePlatformInTx persists a new platform within tx.
	SavePlatformInTx(ctx context.Context, tx pgx.Tx, platform domain.Platform) error
}

// PlatformRepositoryFacade combines all platform-related repository interfaces
type PlatformRepositoryFacade interface {
	PlatformReader
	PlatformWriter
	PlatformTransactionSupport
}
