package services

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
)

// LiveSessionReaderSvc defines read operations for live sessions
type LiveSessionReaderSvc interface {
	GetLiveSessionByID(ctx context.Context, sessionID string) (*domain.LiveSession, error)
	ListLiveSessions(ctx context.Context, limit int, nextToken *string) ([]domain.LiveSession, *string, error)
}

// LiveSessionLifecycleSvc drives a live session from start to verification
type LiveSessionLifecycleSvc interface {
	StartLiveSession(ctx context.Context, req dto.StartLiveSessionRequest, userID string) (*domain.LiveSession, error)
	UpdateLiveSession(ctx context.Context, sessionID string, req dto.UpdateLiveSessionRequest, userID string) (*domain.LiveSession, error)
	StopLiveSession(ctx context.Context, sessionID string, req dto.StopSessionRequest, userID string) (*domain.LiveSession, error)
	SaveLiveSession(ctx context.Context, sessionID string, userID string) (*domain.LiveSession, error)
	DiscardLiveSession(ctx context.Context, sessionID string, userID string) error
	VerifyLiveSession(ctx context.Context, sessionID string, userID string) (*domain.LiveSession, error)
}

// LiveSessionSvcFacade combines all live session service interfaces
type LiveSessionSvcFacade interface {
	LiveSessionReaderSvc
	LiveSessionLifecycleSvc
}

// OnlineSessionReaderSvc defines read operations for online sessions
type OnlineSessionReaderSvc interface {
	GetOnlineSessionByID(ctx context.Context, sessionID string) (*domain.OnlineSession, error)
	ListOnlineSessions(ctx context.Context, limit int, nextToken *string) ([]domain.OnlineSession, *string, error)
}

// OnlineSessionLifecycleSvc drives an online session from start to verification
type OnlineSessionLifecycleSvc interface {
	StartOnlineSession(ctx context.Context, req dto.StartOnlineSessionRequest, userID string) (*domain.OnlineSession, error)
	UpdateOnlineSession(ctx context.Context, sessionID string, req dto.UpdateOnlineSessionRequest, userID string) (*domain.OnlineSession, error)
	StopOnlineSession(ctx context.Context, sessionID string, req dto.StopSessionRequest, userID string) (*domain.OnlineSession, error)
	SaveOnlineSession(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, error)
	DiscardOnlineSession(ctx context.Context, sessionID string, userID string) error

	// VerifyOnlineSession locks the session and commits its closing balance to the platform.
	VerifyOnlineSession(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, error)
}

// ReconciliationSvc compares an online session with its platform's recorded balance
type ReconciliationSvc interface {
	// CheckDiscrepancy classifies the platform balance against the session's balance-before.
	// A clean check marks the session resolved.
	CheckDiscrepancy(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, *domain.Platform, accounting.Discrepancy, error)

	// ResolveDiscrepancy records the user's decision and marks the session resolved.
	ResolveDiscrepancy(ctx context.Context, sessionID string, req dto.ResolveDiscrepancyRequest, userID string) (*domain.OnlineSession, error)
}

// OnlineSessionSvcFacade combines all online session service interfaces
type OnlineSessionSvcFacade interface {
	OnlineSessionReaderSvc
	OnlineSessionLifecycleSvc
	ReconciliationSvc
}
