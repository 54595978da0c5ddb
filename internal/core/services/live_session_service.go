package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/SscSPs/bankroll_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type liveSessionService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	sessionRepo portsrepo.LiveSessionRepositoryFacade
	settings    portssvc.SettingsSvcFacade
}

// NewLiveSessionService creates the live session service.
func NewLiveSessionService(
	txManager portsrepo.TransactionManager,
	repo portsrepo.LiveSessionRepositoryFacade,
	settings portssvc.SettingsSvcFacade,
	options ...ServiceOption,
) portssvc.LiveSessionSvcFacade {
	return &liveSessionService{
		BaseService: newBaseService(options),
		txManager:   txManager,
		sessionRepo: repo,
		settings:    settings,
	}
}

var _ portssvc.LiveSessionSvcFacade = (*liveSessionService)(nil)

func (s *liveSessionService) StartLiveSession(ctx context.Context, req dto.StartLiveSessionRequest, userID string) (*domain.LiveSession, error) {
	now := s.Now()
	settings := s.settings.GetSettings(ctx)
	code := strings.ToUpper(req.CurrencyCode)

	buyInRate, err := rateOrDefault(req.BuyInRate, settings, code)
	if err != nil {
		return nil, err
	}
	cashOutRate := buyInRate
	if req.CashOutRate != nil {
		cashOutRate = req.CashOutRate.Decimal
	}
	if req.BuyIn.IsNegative() {
		return nil, fmt.Errorf("%w: buy-in cannot be negative", apperrors.ErrValidation)
	}

	session := domain.LiveSession{
		SessionID:    uuid.NewString(),
		Location:     strings.TrimSpace(req.Location),
		CurrencyCode: code,
		BuyInRate:    buyInRate,
		CashOutRate:  cashOutRate,
		BuyIn:        req.BuyIn.Decimal,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	session.StartTime = now
	if req.StartTime != nil {
		session.StartTime = req.StartTime.UTC()
	}
	if err := req.Game.ToPatch().ApplyTo(&session.Game); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.SaveLiveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save live session", slog.String("session_id", session.SessionID))
		return nil, err
	}
	s.LogInfo(ctx, "Live session started", slog.String("session_id", session.SessionID))
	s.Publish(events.SessionStarted, kindLive, session.SessionID, session)
	return &session, nil
}

func (s *liveSessionService) GetLiveSessionByID(ctx context.Context, sessionID string) (*domain.LiveSession, error) {
	session, err := s.sessionRepo.FindLiveSessionByID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find live session", slog.String("session_id", sessionID))
		}
		return nil, err
	}
	return session, nil
}

func (s *liveSessionService) ListLiveSessions(ctx context.Context, limit int, nextToken *string) ([]domain.LiveSession, *string, error) {
	sessions, token, err := s.sessionRepo.ListLiveSessions(ctx, pagination.NormalizeLimit(limit), nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list live sessions")
		return nil, nil, err
	}
	return sessions, token, nil
}

// UpdateLiveSession applies an autosave change set. Once a stopped session has been finalized,
// a rate change recomputes its stored figures.
func (s *liveSessionService) UpdateLiveSession(ctx context.Context, sessionID string, req dto.UpdateLiveSessionRequest, userID string) (*domain.LiveSession, error) {
	patch := req.ToPatch()
	return s.mutate(ctx, sessionID, userID, events.SessionUpdated, func(session *domain.LiveSession) error {
		ratesBefore := [2]decimal.Decimal{session.BuyInRate, session.CashOutRate}
		if err := session.ApplyPatch(patch); err != nil {
			s.LogDebug(ctx, "Live session update rejected", slog.String("session_id", sessionID), slog.String("reason", err.Error()))
			return err
		}
		rateChanged := !ratesBefore[0].Equal(session.BuyInRate) || !ratesBefore[1].Equal(session.CashOutRate)
		if rateChanged && !session.IsActive() {
			session.Finalize(s.settings.GetSettings(ctx))
		}
		return nil
	})
}

func (s *liveSessionService) StopLiveSession(ctx context.Context, sessionID string, req dto.StopSessionRequest, userID string) (*domain.LiveSession, error) {
	end := s.Now()
	if req.EndTime != nil {
		end = req.EndTime.UTC()
	}
	return s.mutate(ctx, sessionID, userID, events.SessionStopped, func(session *domain.LiveSession) error {
		return session.Stop(end)
	})
}

func (s *liveSessionService) SaveLiveSession(ctx context.Context, sessionID string, userID string) (*domain.LiveSession, error) {
	return s.mutate(ctx, sessionID, userID, events.SessionSaved, func(session *domain.LiveSession) error {
		if session.IsActive() {
			return fmt.Errorf("%w: stop the session before saving it", apperrors.ErrValidation)
		}
		session.Finalize(s.settings.GetSettings(ctx))
		return nil
	})
}

func (s *liveSessionService) DiscardLiveSession(ctx context.Context, sessionID string, userID string) error {
	session, err := s.GetLiveSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.IsActive() {
		return fmt.Errorf("%w: only an active session can be discarded", apperrors.ErrValidation)
	}
	if err := s.sessionRepo.DeleteLiveSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete live session", slog.String("session_id", sessionID))
		return err
	}
	s.LogInfo(ctx, "Live session discarded", slog.String("session_id", sessionID), slog.String("user_id", userID))
	s.Publish(events.SessionDiscarded, kindLive, sessionID, nil)
	return nil
}

func (s *liveSessionService) VerifyLiveSession(ctx context.Context, sessionID string, userID string) (*domain.LiveSession, error) {
	return s.mutate(ctx, sessionID, userID, events.SessionVerified, func(session *domain.LiveSession) error {
		return session.Verify(s.settings.GetSettings(ctx))
	})
}

// mutate applies fn to the session under its row lock and writes it back in the same transaction.
func (s *liveSessionService) mutate(ctx context.Context, sessionID, userID string, name events.Name, fn func(*domain.LiveSession) error) (*domain.LiveSession, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin live session transaction", slog.String("session_id", sessionID))
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op once committed

	session, err := s.sessionRepo.FindLiveSessionByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock live session", slog.String("session_id", sessionID))
		}
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}

	session.Touch(userID, s.Now())
	if err := s.sessionRepo.UpdateLiveSessionInTx(ctx, tx, *session); err != nil {
		s.LogError(ctx, err, "Failed to update live session", slog.String("session_id", sessionID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit live session", slog.String("session_id", sessionID))
		return nil, err
	}
	s.Publish(name, kindLive, session.SessionID, *session)
	return session, nil
}

// rateOrDefault returns the requested rate or the configured rate for code.
func rateOrDefault(requested *dto.Rate, settings domain.Settings, code string) (decimal.Decimal, error) {
	if requested != nil {
		return requested.Decimal, nil
	}
	rate := settings.DefaultRate(code)
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no default exchange rate for %s, provide one", apperrors.ErrValidation, code)
	}
	return rate, nil
}
