package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager         TransactionManager
	PlatformRepo      PlatformRepositoryFacade
	LiveSessionRepo   LiveSessionRepositoryFacade
	OnlineSessionRepo OnlineSessionRepositoryFacade
	DepositRepo       DepositRepositoryFacade
	WithdrawalRepo    WithdrawalRepositoryFacade
	AdjustmentRepo    AdjustmentRepositoryFacade
}
