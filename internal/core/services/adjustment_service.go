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
	"github.com/google/uuid"
)

type adjustmentService struct {
	BaseService
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	platformRepo   portsrepo.PlatformReader
	settings       portssvc.SettingsSvcFacade
}

// NewAdjustmentService creates the adjustment service.
func NewAdjustmentService(repo portsrepo.AdjustmentRepositoryFacade, platformRepo portsrepo.PlatformReader, settings portssvc.SettingsSvcFacade, options ...ServiceOption) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		BaseService:    newBaseService(options),
		adjustmentRepo: repo,
		platformRepo:   platformRepo,
		settings:       settings,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

// CreateAdjustment records a correction. Platform balances are not changed.
func (s *adjustmentService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, userID string) (*domain.Adjustment, error) {
	code := strings.ToUpper(req.CurrencyCode)
	rate, err := rateOrDefault(req.ExchangeRate, s.settings.GetSettings(ctx), code)
	if err != nil {
		return nil, err
	}

	var platformID *string
	if req.PlatformID != nil && *req.PlatformID != "" {
		if _, err := s.platformRepo.FindPlatformByID(ctx, *req.PlatformID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: platform %s", apperrors.ErrNotFound, *req.PlatformID)
			}
			return nil, err
		}
		platformID = req.PlatformID
	}

	now := s.Now()
	adjustment := domain.Adjustment{
		AdjustmentID: uuid.NewString(),
		PlatformID:   platformID,
		Name:         strings.TrimSpace(req.Name),
		Amount:       req.Amount.Decimal,
		Date:         now,
		CurrencyCode: code,
		ExchangeRate: rate,
		IsOnline:     req.IsOnline,
		Location:     req.Location,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	if req.Date != nil {
		adjustment.Date = req.Date.UTC()
	}
	if err := adjustment.Derive(); err != nil {
		return nil, err
	}

	if err := s.adjustmentRepo.SaveAdjustment(ctx, adjustment); err != nil {
		s.LogError(ctx, err, "Failed to save adjustment", slog.String("adjustment_id", adjustment.AdjustmentID))
		return nil, err
	}
	s.LogInfo(ctx, "Adjustment recorded", slog.String("adjustment_id", adjustment.AdjustmentID), slog.String("amount_base", adjustment.AmountBase.String()))
	return &adjustment, nil
}

func (s *adjustmentService) GetAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error) {
	return s.adjustmentRepo.FindAdjustmentByID(ctx, adjustmentID)
}

func (s *adjustmentService) ListAdjustments(ctx context.Context) ([]domain.Adjustment, error) {
	adjustments, err := s.adjustmentRepo.ListAdjustments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments")
		return nil, err
	}
	return adjustments, nil
}
