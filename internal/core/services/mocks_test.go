package services_test

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockTxManager hands out nil transactions; repository mocks ignore them.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// MockPlatformRepository is a mock type for the PlatformRepositoryFacade interface
type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) FindPlatformByID(ctx context.Context, platformID string) (*domain.Platform, error) {
	args := m.Called(ctx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}

func (m *MockPlatformRepository) FindPlatformByName(ctx context.Context, name string) (*domain.Platform, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}

func (m *MockPlatformRepository) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Platform), args.Error(1)
}

func (m *MockPlatformRepository) SavePlatform(ctx context.Context, platform domain.Platform) error {
	return m.Called(ctx, platform).Error(0)
}

func (m *MockPlatformRepository) UpdatePlatform(ctx context.Context, platform domain.Platform) error {
	return m.Called(ctx, platform).Error(0)
}

func (m *MockPlatformRepository) FindPlatformByIDForUpdate(ctx context.Context, tx pgx.Tx, platformID string) (*domain.Platform, error) {
	args := m.Called(ctx, tx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}

func (m *MockPlatformRepository) UpdatePlatformBalanceInTx(ctx context.Context, tx pgx.Tx, platform domain.Platform) error {
	return m.Called(ctx, tx, platform).Error(0)
}

func (m *MockPlatformRepository) SavePlatformInTx(ctx context.Context, tx pgx.Tx, platform domain.Platform) error {
	return m.Called(ctx, tx, platform).Error(0)
}

// MockLiveSessionRepository is a mock type for the LiveSessionRepositoryFacade interface
type MockLiveSessionRepository struct {
	mock.Mock
}

func (m *MockLiveSessionRepository) FindLiveSessionByID(ctx context.Context, sessionID string) (*domain.LiveSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveSession), args.Error(1)
}

func (m *MockLiveSessionRepository) ListLiveSessions(ctx context.Context, limit int, nextToken *string) ([]domain.LiveSession, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.LiveSession), token, args.Error(2)
}

func (m *MockLiveSessionRepository) ListAllLiveSessions(ctx context.Context) ([]domain.LiveSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LiveSession), args.Error(1)
}

func (m *MockLiveSessionRepository) SaveLiveSession(ctx context.Context, session domain.LiveSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockLiveSessionRepository) DeleteLiveSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockLiveSessionRepository) SaveLiveSessionInTx(ctx context.Context, tx pgx.Tx, session domain.LiveSession) error {
	return m.Called(ctx, tx, session).Error(0)
}

func (m *MockLiveSessionRepository) FindLiveSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.LiveSession, error) {
	args := m.Called(ctx, tx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveSession), args.Error(1)
}

func (m *MockLiveSessionRepository) UpdateLiveSessionInTx(ctx context.Context, tx pgx.Tx, session domain.LiveSession) error {
	return m.Called(ctx, tx, session).Error(0)
}

// MockOnlineSessionRepository is a mock type for the OnlineSessionRepositoryFacade interface
type MockOnlineSessionRepository struct {
	mock.Mock
}

func (m *MockOnlineSessionRepository) FindOnlineSessionByID(ctx context.Context, sessionID string) (*domain.OnlineSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnlineSession), args.Error(1)
}

func (m *MockOnlineSessionRepository) ListOnlineSessions(ctx context.Context, limit int, nextToken *string) ([]domain.OnlineSession, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.OnlineSession), token, args.Error(2)
}

func (m *MockOnlineSessionRepository) ListAllOnlineSessions(ctx context.Context) ([]domain.OnlineSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OnlineSession), args.Error(1)
}

func (m *MockOnlineSessionRepository) SaveOnlineSession(ctx context.Context, session domain.OnlineSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockOnlineSessionRepository) DeleteOnlineSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockOnlineSessionRepository) SaveOnlineSessionInTx(ctx context.Context, tx pgx.Tx, session domain.OnlineSession) error {
	return m.Called(ctx, tx, session).Error(0)
}

func (m *MockOnlineSessionRepository) FindOnlineSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.OnlineSession, error) {
	args := m.Called(ctx, tx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnlineSession), args.Error(1)
}

func (m *MockOnlineSessionRepository) UpdateOnlineSessionInTx(ctx context.Context, tx pgx.Tx, session domain.OnlineSession) error {
	return m.Called(ctx, tx, session).Error(0)
}

// MockDepositRepository is a mock type for the DepositRepositoryFacade interface
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositRepository) ListDeposits(ctx context.Context, platformID string) ([]domain.Deposit, error) {
	args := m.Called(ctx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deposit), args.Error(1)
}

func (m *MockDepositRepository) SaveDepositInTx(ctx context.Context, tx pgx.Tx, deposit domain.Deposit) error {
	return m.Called(ctx, tx, deposit).Error(0)
}

// MockWithdrawalRepository is a mock type for the WithdrawalRepositoryFacade interface
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) ListWithdrawals(ctx context.Context, platformID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) SaveWithdrawalInTx(ctx context.Context, tx pgx.Tx, withdrawal domain.Withdrawal) error {
	return m.Called(ctx, tx, withdrawal).Error(0)
}

// MockAdjustmentRepository is a mock type for the AdjustmentRepositoryFacade interface
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error) {
	args := m.Called(ctx, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Adjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustments(ctx context.Context) ([]domain.Adjustment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error {
	return m.Called(ctx, adjustment).Error(0)
}

func (m *MockAdjustmentRepository) SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.Adjustment) error {
	return m.Called(ctx, tx, adjustment).Error(0)
}

// staticSettings is a fixed SettingsSvcFacade.
type staticSettings struct {
	settings domain.Settings
}

func (s staticSettings) GetSettings(context.Context) domain.Settings { return s.settings }

// recordingPublisher keeps published events for assertions.
type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) { p.events = append(p.events, e) }

func (p *recordingPublisher) names() []events.Name {
	names := make([]events.Name, len(p.events))
	for i, e := range p.events {
		names[i] = e.Name
	}
	return names
}
