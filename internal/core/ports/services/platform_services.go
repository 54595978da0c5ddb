package services

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/dto"
)

// PlatformReaderSvc defines read operations for platforms
type PlatformReaderSvc interface {
	GetPlatformByID(ctx context.Context, platformID string) (*domain.Platform, error)
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
}

// PlatformWriterSvc defines write operations for platforms
type PlatformWriterSvc interface {
	// CreatePlatform persists a new platform. Names are unique.
	CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest, userID string) (*domain.Platform, error)

	// UpdatePlatform changes the name or latest rate. Balances move only through transfers and verification.
	UpdatePlatform(ctx context.Context, platformID string, req dto.UpdatePlatformRequest, userID string) (*domain.Platform, error)
}

// PlatformSvcFacade combines all platform-related service interfaces
type PlatformSvcFacade interface {
	PlatformReaderSvc
	PlatformWriterSvc
}
