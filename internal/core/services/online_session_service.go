package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/SscSPs/bankroll_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type onlineSessionService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	sessionRepo    portsrepo.OnlineSessionRepositoryFacade
	platformRepo   portsrepo.PlatformRepositoryFacade
	adjustmentRepo portsrepo.AdjustmentWriter
	settings       portssvc.SettingsSvcFacade
}

// NewOnlineSessionService creates the online session service.
func NewOnlineSessionService(
	txManager portsrepo.TransactionManager,
	sessionRepo portsrepo.OnlineSessionRepositoryFacade,
	platformRepo portsrepo.PlatformRepositoryFacade,
	adjustmentRepo portsrepo.AdjustmentWriter,
	settings portssvc.SettingsSvcFacade,
	options ...ServiceOption,
) portssvc.OnlineSessionSvcFacade {
	return &onlineSessionService{
		BaseService:    newBaseService(options),
		txManager:      txManager,
		sessionRepo:    sessionRepo,
		platformRepo:   platformRepo,
		adjustmentRepo: adjustmentRepo,
		settings:       settings,
	}
}

var _ portssvc.OnlineSessionSvcFacade = (*onlineSessionService)(nil)

func (s *onlineSessionService) StartOnlineSession(ctx context.Context, req dto.StartOnlineSessionRequest, userID string) (*domain.OnlineSession, error) {
	platform, err := s.findPlatform(ctx, req.PlatformID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	session := domain.OnlineSession{
		SessionID:     uuid.NewString(),
		PlatformID:    platform.PlatformID,
		TableCount:    req.TableCount,
		BalanceBefore: platform.Balance,
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if session.TableCount < 1 {
		session.TableCount = 1
	}
	if req.BalanceBefore != nil {
		session.BalanceBefore = req.BalanceBefore.Decimal
	}
	session.BalanceAfter = session.BalanceBefore
	session.StartTime = now
	if req.StartTime != nil {
		session.StartTime = req.StartTime.UTC()
	}
	if err := req.Game.ToPatch().ApplyTo(&session.Game); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.SaveOnlineSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save online session", slog.String("session_id", session.SessionID))
		return nil, err
	}
	s.LogInfo(ctx, "Online session started", slog.String("session_id", session.SessionID), slog.String("platform_id", platform.PlatformID))
	s.Publish(events.SessionStarted, kindOnline, session.SessionID, session)
	return &session, nil
}

func (s *onlineSessionService) GetOnlineSessionByID(ctx context.Context, sessionID string) (*domain.OnlineSession, error) {
	session, err := s.sessionRepo.FindOnlineSessionByID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find online session", slog.String("session_id", sessionID))
		}
		return nil, err
	}
	return session, nil
}

func (s *onlineSessionService) ListOnlineSessions(ctx context.Context, limit int, nextToken *string) ([]domain.OnlineSession, *string, error) {
	sessions, token, err := s.sessionRepo.ListOnlineSessions(ctx, pagination.NormalizeLimit(limit), nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list online sessions")
		return nil, nil, err
	}
	return sessions, token, nil
}

func (s *onlineSessionService) UpdateOnlineSession(ctx context.Context, sessionID string, req dto.UpdateOnlineSessionRequest, userID string) (*domain.OnlineSession, error) {
	patch := req.ToPatch()
	return s.mutate(ctx, sessionID, userID, events.SessionUpdated, func(_ pgx.Tx, session *domain.OnlineSession) (bool, error) {
		if patch.PlatformID != nil && *patch.PlatformID != session.PlatformID && !session.IsVerified {
			if _, err := s.findPlatform(ctx, *patch.PlatformID); err != nil {
				return false, err
			}
		}
		if err := session.ApplyPatch(patch); err != nil {
			s.LogDebug(ctx, "Online session update rejected", slog.String("session_id", sessionID), slog.String("reason", err.Error()))
			return false, err
		}
		return true, nil
	})
}

// StopOnlineSession stamps the end time. The platform balance is left alone until verification.
func (s *onlineSessionService) StopOnlineSession(ctx context.Context, sessionID string, req dto.StopSessionRequest, userID string) (*domain.OnlineSession, error) {
	end := s.Now()
	if req.EndTime != nil {
		end = req.EndTime.UTC()
	}
	return s.mutate(ctx, sessionID, userID, events.SessionStopped, func(_ pgx.Tx, session *domain.OnlineSession) (bool, error) {
		return true, session.Stop(end)
	})
}

func (s *onlineSessionService) SaveOnlineSession(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, error) {
	return s.mutate(ctx, sessionID, userID, events.SessionSaved, func(_ pgx.Tx, session *domain.OnlineSession) (bool, error) {
		if session.IsActive() {
			return false, fmt.Errorf("%w: stop the session before saving it", apperrors.ErrValidation)
		}
		platform, err := s.findPlatform(ctx, session.PlatformID)
		if err != nil {
			return false, err
		}
		session.Finalize(*platform, s.settings.GetSettings(ctx))
		return true, nil
	})
}

func (s *onlineSessionService) DiscardOnlineSession(ctx context.Context, sessionID string, userID string) error {
	session, err := s.GetOnlineSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.IsActive() {
		return fmt.Errorf("%w: only an active session can be discarded", apperrors.ErrValidation)
	}
	if err := s.sessionRepo.DeleteOnlineSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete online session", slog.String("session_id", sessionID))
		return err
	}
	s.LogInfo(ctx, "Online session discarded", slog.String("session_id", sessionID), slog.String("user_id", userID))
	s.Publish(events.SessionDiscarded, kindOnline, sessionID, nil)
	return nil
}

// CheckDiscrepancy classifies the platform balance against the session's balance-before.
// The stored resolution follows the result: a clean check resolves the session and a
// balance that moved since the last resolution reopens it.
func (s *onlineSessionService) CheckDiscrepancy(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, *domain.Platform, accounting.Discrepancy, error) {
	var (
		platform    *domain.Platform
		discrepancy accounting.Discrepancy
	)
	session, err := s.mutate(ctx, sessionID, userID, events.SessionUpdated, func(_ pgx.Tx, session *domain.OnlineSession) (bool, error) {
		var err error
		if platform, err = s.reconcilable(ctx, session); err != nil {
			return false, err
		}
		wasResolved := session.DiscrepancyResolved
		wasSettled := session.IsResolvedAt(platform.Balance)
		discrepancy = session.Recheck(platform.Balance)
		return session.DiscrepancyResolved != wasResolved || (session.DiscrepancyResolved && !wasSettled), nil
	})
	if err != nil {
		return nil, nil, accounting.Discrepancy{}, err
	}
	return session, platform, discrepancy, nil
}

func (s *onlineSessionService) ResolveDiscrepancy(ctx context.Context, sessionID string, req dto.ResolveDiscrepancyRequest, userID string) (*domain.OnlineSession, error) {
	if !accounting.IsValidRemediation(req.Action) {
		return nil, fmt.Errorf("%w: unknown action %q", apperrors.ErrValidation, req.Action)
	}
	return s.mutate(ctx, sessionID, userID, events.SessionUpdated, func(tx pgx.Tx, session *domain.OnlineSession) (bool, error) {
		platform, err := s.reconcilable(ctx, session)
		if err != nil {
			return false, err
		}
		discrepancy := accounting.CheckDiscrepancy(platform.Balance, session.BalanceBefore)

		if req.Action == accounting.RemediationAdjustment && discrepancy.Found() {
			adjustment := domain.Adjustment{
				AdjustmentID: uuid.NewString(),
				PlatformID:   &platform.PlatformID,
				Name:         "Balance reconciliation",
				Amount:       discrepancy.Difference,
				Date:         s.Now(),
				CurrencyCode: platform.CurrencyCode,
				ExchangeRate: platform.LatestRate,
				IsOnline:     true,
				Notes:        "Online session " + session.SessionID,
				AuditFields:  domain.NewAuditFields(userID, s.Now()),
			}
			if err := adjustment.Derive(); err != nil {
				return false, err
			}
			if err := s.adjustmentRepo.SaveAdjustmentInTx(ctx, tx, adjustment); err != nil {
				s.LogError(ctx, err, "Failed to save reconciliation adjustment", slog.String("session_id", sessionID))
				return false, err
			}
		}

		session.ResolveAt(platform.Balance)
		s.LogInfo(ctx, "Balance discrepancy resolved",
			slog.String("session_id", sessionID),
			slog.String("action", string(req.Action)),
			slog.String("direction", string(discrepancy.Direction)),
			slog.String("delta", discrepancy.Delta.String()))
		return true, nil
	})
}

// VerifyOnlineSession runs in one transaction holding the session and platform row locks,
// so concurrent verifications and transfers on the same platform are serialized.
// The balance check is repeated on the locked platform: a clean check resolves the session
// on the spot, and a resolution made against a different balance no longer counts.
func (s *onlineSessionService) VerifyOnlineSession(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin verification transaction")
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op once committed

	session, err := s.sessionRepo.FindOnlineSessionByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsVerified {
		return nil, apperrors.ErrAlreadyVerified
	}
	platform, err := s.platformRepo.FindPlatformByIDForUpdate(ctx, tx, session.PlatformID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: platform %s of session no longer exists", apperrors.ErrNotReady, session.PlatformID)
		}
		return nil, err
	}
	if !session.IsActive() {
		session.Recheck(platform.Balance)
	}

	if err := session.Verify(platform, s.settings.GetSettings(ctx)); err != nil {
		s.LogDebug(ctx, "Online session not verifiable", slog.String("session_id", sessionID), slog.String("reason", err.Error()))
		return nil, err
	}
	now := s.Now()
	session.Touch(userID, now)
	platform.Touch(userID, now)

	if err := s.sessionRepo.UpdateOnlineSessionInTx(ctx, tx, *session); err != nil {
		s.LogError(ctx, err, "Failed to update verified session", slog.String("session_id", sessionID))
		return nil, err
	}
	if err := s.platformRepo.UpdatePlatformBalanceInTx(ctx, tx, *platform); err != nil {
		s.LogError(ctx, err, "Failed to commit platform balance", slog.String("platform_id", platform.PlatformID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit verification", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Online session verified",
		slog.String("session_id", sessionID),
		slog.String("platform_id", platform.PlatformID),
		slog.String("balance", platform.Balance.String()))
	s.Publish(events.SessionVerified, kindOnline, sessionID, *session)
	s.Publish(events.PlatformBalanceChanged, kindPlatform, platform.PlatformID, *platform)
	return session, nil
}

// reconcilable loads the platform of a stopped, unverified session.
func (s *onlineSessionService) reconcilable(ctx context.Context, session *domain.OnlineSession) (*domain.Platform, error) {
	if session.IsVerified {
		return nil, apperrors.ErrAlreadyVerified
	}
	if session.IsActive() {
		return nil, fmt.Errorf("%w: balance check needs a stopped session", apperrors.ErrValidation)
	}
	return s.findPlatform(ctx, session.PlatformID)
}

func (s *onlineSessionService) findPlatform(ctx context.Context, platformID string) (*domain.Platform, error) {
	platform, err := s.platformRepo.FindPlatformByID(ctx, platformID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: platform %s", apperrors.ErrNotFound, platformID)
		}
		s.LogError(ctx, err, "Failed to find platform", slog.String("platform_id", platformID))
		return nil, err
	}
	return platform, nil
}

// mutate applies fn to the session under its row lock and writes it back in the same
// transaction. Nothing is written when fn reports no change.
func (s *onlineSessionService) mutate(ctx context.Context, sessionID, userID string, name events.Name, fn func(pgx.Tx, *domain.OnlineSession) (bool, error)) (*domain.OnlineSession, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin online session transaction", slog.String("session_id", sessionID))
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op once committed

	session, err := s.sessionRepo.FindOnlineSessionByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock online session", slog.String("session_id", sessionID))
		}
		return nil, err
	}
	changed, err := fn(tx, session)
	if err != nil {
		return nil, err
	}
	if !changed {
		return session, nil
	}

	session.Touch(userID, s.Now())
	if err := s.sessionRepo.UpdateOnlineSessionInTx(ctx, tx, *session); err != nil {
		s.LogError(ctx, err, "Failed to update online session", slog.String("session_id", sessionID))
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit online session", slog.String("session_id", sessionID))
		return nil, err
	}
	s.Publish(name, kindOnline, session.SessionID, *session)
	return session, nil
}
