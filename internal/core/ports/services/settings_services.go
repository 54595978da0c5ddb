package services

import (
	"context"
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
)

// SettingsSvcFacade exposes the read-only user settings.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) domain.Settings
}

// AuthSvcFacade authenticates the single configured user.
type AuthSvcFacade interface {
	// Login checks the credentials and returns a signed access token and its expiry.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
