package services

import (
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first since every other service reads them
	container.Settings = NewSettingsService(cfg)
	container.Auth = NewAuthService(cfg, options...)

	container.Platform = NewPlatformService(repos.PlatformRepo, container.Settings, options...)
	container.LiveSession = NewLiveSessionService(repos.TxManager, repos.LiveSessionRepo, container.Settings, options...)
	container.OnlineSession = NewOnlineSessionService(
		repos.TxManager,
		repos.OnlineSessionRepo,
		repos.PlatformRepo,
		repos.AdjustmentRepo,
		container.Settings,
		options...,
	)
	container.Transfer = NewTransferService(
		repos.TxManager,
		repos.PlatformRepo,
		repos.DepositRepo,
		repos.WithdrawalRepo,
		container.Settings,
		options...,
	)
	container.Adjustment = NewAdjustmentService(repos.AdjustmentRepo, repos.PlatformRepo, container.Settings, options...)
	container.Backup = NewBackupService(repos, container.Settings, options...)

	return container
}
