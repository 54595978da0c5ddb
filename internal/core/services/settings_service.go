package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/platform/config"
	"github.com/SscSPs/bankroll_app/internal/utils"
)

type settingsService struct {
	settings domain.Settings
}

// NewSettingsService exposes the settings carried by cfg.
func NewSettingsService(cfg *config.Config) portssvc.SettingsSvcFacade {
	return &settingsService{settings: SettingsFromConfig(cfg)}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// SettingsFromConfig maps the configuration keys onto domain.Settings.
func SettingsFromConfig(cfg *config.Config) domain.Settings {
	return domain.Settings{
		BaseCurrency:       cfg.BaseCurrency,
		HandsPerHourLive:   cfg.HandsPerHourLive,
		HandsPerHourOnline: cfg.HandsPerHourOnline,
		DefaultRates:       cfg.DefaultFXRates,
		ExchangeInputMode:  domain.ExchangeInputMode(cfg.ExchangeInputMode),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) domain.Settings {
	return s.settings
}

type authService struct {
	BaseService
	username     string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAuthService authenticates against the single user configured in cfg.
func NewAuthService(cfg *config.Config, options ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  newBaseService(options),
		username:     cfg.AppUsername,
		passwordHash: cfg.AppPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtExpiry:    cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if username != s.username || !utils.CheckPasswordHash(password, s.passwordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	token, expiresAt, err := utils.GenerateJWT(s.username, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token")
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, expiresAt, nil
}
