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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type transferService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	platformRepo   portsrepo.PlatformRepositoryFacade
	depositRepo    portsrepo.DepositRepositoryFacade
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
	settings       portssvc.SettingsSvcFacade
}

// NewTransferService creates the deposit and withdrawal service.
func NewTransferService(
	txManager portsrepo.TransactionManager,
	platformRepo portsrepo.PlatformRepositoryFacade,
	depositRepo portsrepo.DepositRepositoryFacade,
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade,
	settings portssvc.SettingsSvcFacade,
	options ...ServiceOption,
) portssvc.TransferSvcFacade {
	return &transferService{
		BaseService:    newBaseService(options),
		txManager:      txManager,
		platformRepo:   platformRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		settings:       settings,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, userID string) (*domain.Deposit, error) {
	now := s.Now()
	deposit := domain.Deposit{
		DepositID:         uuid.NewString(),
		PlatformID:        req.PlatformID,
		Date:              now,
		AmountSent:        req.AmountSent.Decimal,
		AmountReceived:    req.AmountReceived.Decimal,
		IsForeignExchange: req.IsForeignExchange,
		Method:            req.Method,
		Notes:             req.Notes,
		AuditFields:       domain.NewAuditFields(userID, now),
	}
	if req.Date != nil {
		deposit.Date = req.Date.UTC()
	}
	if err := deposit.Price(s.settings.GetSettings(ctx).ExchangeInputMode, directRate(req.ExchangeRate)); err != nil {
		return nil, err
	}

	platform, err := s.withLockedPlatform(ctx, deposit.PlatformID, userID, func(tx pgx.Tx, platform *domain.Platform) error {
		if err := s.depositRepo.SaveDepositInTx(ctx, tx, deposit); err != nil {
			return err
		}
		platform.ApplyDeposit(deposit)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record deposit", slog.String("platform_id", deposit.PlatformID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("platform_id", platform.PlatformID),
		slog.String("amount_received", deposit.AmountReceived.String()))
	return &deposit, nil
}

func (s *transferService) CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, userID string) (*domain.Withdrawal, error) {
	now := s.Now()
	withdrawal := domain.Withdrawal{
		WithdrawalID:      uuid.NewString(),
		PlatformID:        req.PlatformID,
		Date:              now,
		AmountRequested:   req.AmountRequested.Decimal,
		AmountReceived:    req.AmountReceived.Decimal,
		IsForeignExchange: req.IsForeignExchange,
		Method:            req.Method,
		Notes:             req.Notes,
		AuditFields:       domain.NewAuditFields(userID, now),
	}
	if req.Date != nil {
		withdrawal.Date = req.Date.UTC()
	}
	if err := withdrawal.Price(s.settings.GetSettings(ctx).ExchangeInputMode, directRate(req.ExchangeRate)); err != nil {
		return nil, err
	}

	platform, err := s.withLockedPlatform(ctx, withdrawal.PlatformID, userID, func(tx pgx.Tx, platform *domain.Platform) error {
		if err := s.withdrawalRepo.SaveWithdrawalInTx(ctx, tx, withdrawal); err != nil {
			return err
		}
		platform.ApplyWithdrawal(withdrawal)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record withdrawal", slog.String("platform_id", withdrawal.PlatformID))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal recorded",
		slog.String("withdrawal_id", withdrawal.WithdrawalID),
		slog.String("platform_id", platform.PlatformID),
		slog.String("amount_requested", withdrawal.AmountRequested.String()))
	return &withdrawal, nil
}

func (s *transferService) GetDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	return s.depositRepo.FindDepositByID(ctx, depositID)
}

func (s *transferService) ListDeposits(ctx context.Context, platformID string) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListDeposits(ctx, platformID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deposits", slog.String("platform_id", platformID))
		return nil, err
	}
	return deposits, nil
}

func (s *transferService) GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	return s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID)
}

func (s *transferService) ListWithdrawals(ctx context.Context, platformID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListWithdrawals(ctx, platformID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list withdrawals", slog.String("platform_id", platformID))
		return nil, err
	}
	return withdrawals, nil
}

// withLockedPlatform runs apply against the row-locked platform and writes the platform back
// in the same transaction.
func (s *transferService) withLockedPlatform(ctx context.Context, platformID, userID string, apply func(pgx.Tx, *domain.Platform) error) (*domain.Platform, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx) // no-op once committed

	platform, err := s.platformRepo.FindPlatformByIDForUpdate(ctx, tx, platformID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: platform %s", apperrors.ErrNotFound, platformID)
		}
		return nil, err
	}
	if err := apply(tx, platform); err != nil {
		return nil, err
	}
	platform.Touch(userID, s.Now())
	if err := s.platformRepo.UpdatePlatformBalanceInTx(ctx, tx, *platform); err != nil {
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s.Publish(events.PlatformBalanceChanged, kindPlatform, platform.PlatformID, *platform)
	return platform, nil
}

func directRate(r *dto.Rate) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	return r.Decimal
}
