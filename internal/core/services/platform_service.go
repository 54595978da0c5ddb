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
	"github.com/shopspring/decimal"
)

type platformService struct {
	BaseService
	platformRepo portsrepo.PlatformRepositoryFacade
	settings     portssvc.SettingsSvcFacade
}

// NewPlatformService creates the platform service.
func NewPlatformService(repo portsrepo.PlatformRepositoryFacade, settings portssvc.SettingsSvcFacade, options ...ServiceOption) portssvc.PlatformSvcFacade {
	return &platformService{
		BaseService:  newBaseService(options),
		platformRepo: repo,
		settings:     settings,
	}
}

var _ portssvc.PlatformSvcFacade = (*platformService)(nil)

func (s *platformService) CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest, userID string) (*domain.Platform, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: platform name is required", apperrors.ErrValidation)
	}
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.CurrencyCode)
	rate := s.settings.GetSettings(ctx).DefaultRate(code)
	if req.LatestRate != nil {
		rate = req.LatestRate.Decimal
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: no default exchange rate for %s, latestRate is required", apperrors.ErrValidation, code)
	}
	balance := decimal.Zero
	if req.InitialBalance != nil {
		balance = req.InitialBalance.Decimal
	}

	platform := domain.Platform{
		PlatformID:   uuid.NewString(),
		Name:         name,
		CurrencyCode: code,
		Balance:      balance,
		LatestRate:   rate,
		AuditFields:  domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.platformRepo.SavePlatform(ctx, platform); err != nil {
		s.LogError(ctx, err, "Failed to save platform", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Platform created", slog.String("platform_id", platform.PlatformID), slog.String("currency", code))
	return &platform, nil
}

func (s *platformService) GetPlatformByID(ctx context.Context, platformID string) (*domain.Platform, error) {
	platform, err := s.platformRepo.FindPlatformByID(ctx, platformID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find platform", slog.String("platform_id", platformID))
		}
		return nil, err
	}
	return platform, nil
}

func (s *platformService) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list platforms")
		return nil, err
	}
	return platforms, nil
}

func (s *platformService) UpdatePlatform(ctx context.Context, platformID string, req dto.UpdatePlatformRequest, userID string) (*domain.Platform, error) {
	platform, err := s.GetPlatformByID(ctx, platformID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: platform name is required", apperrors.ErrValidation)
		}
		if name != platform.Name {
			if err := s.ensureNameFree(ctx, name, platformID); err != nil {
				return nil, err
			}
			platform.Name = name
		}
	}
	if req.LatestRate != nil {
		platform.LatestRate = req.LatestRate.Decimal
	}
	platform.Touch(userID, s.Now())

	if err := s.platformRepo.UpdatePlatform(ctx, *platform); err != nil {
		s.LogError(ctx, err, "Failed to update platform", slog.String("platform_id", platformID))
		return nil, err
	}
	return platform, nil
}

func (s *platformService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.platformRepo.FindPlatformByName(ctx, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		s.LogError(ctx, err, "Failed to look up platform name", slog.String("name", name))
		return err
	case existing.PlatformID != selfID:
		return fmt.Errorf("%w: platform %q already exists", apperrors.ErrDuplicate, name)
	}
	return nil
}
