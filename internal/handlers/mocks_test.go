package handlers_test

import (
	"context"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

// --- Mock SettingsService ---
type MockSettingsService struct {
	settings domain.Settings
}

func (m *MockSettingsService) GetSettings(context.Context) domain.Settings { return m.settings }

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock PlatformService ---
type MockPlatformService struct {
	mock.Mock
}

func (m *MockPlatformService) GetPlatformByID(ctx context.Context, platformID string) (*domain.Platform, error) {
	args := m.Called(ctx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}
func (m *MockPlatformService) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Platform), args.Error(1)
}
func (m *MockPlatformService) CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest, userID string) (*domain.Platform, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}
func (m *MockPlatformService) UpdatePlatform(ctx context.Context, platformID string, req dto.UpdatePlatformRequest, userID string) (*domain.Platform, error) {
	args := m.Called(ctx, platformID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}

var _ portssvc.PlatformSvcFacade = (*MockPlatformService)(nil)

// --- Mock OnlineSessionService ---
type MockOnlineSessionService struct {
	mock.Mock
}

func (m *MockOnlineSessionService) session(args mock.Arguments) (*domain.OnlineSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnlineSession), args.Error(1)
}

func (m *MockOnlineSessionService) GetOnlineSessionByID(ctx context.Context, sessionID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, sessionID))
}
func (m *MockOnlineSessionService) ListOnlineSessions(ctx context.Context, limit int, nextToken *string) ([]domain.OnlineSession, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.OnlineSession), next, args.Error(2)
}
func (m *MockOnlineSessionService) StartOnlineSession(ctx context.Context, req dto.StartOnlineSessionRequest, userID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, req, userID))
}
func (m *MockOnlineSessionService) UpdateOnlineSession(ctx context.Context, sessionID string, req dto.UpdateOnlineSessionRequest, userID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, sessionID, req, userID))
}
func (m *MockOnlineSessionService) StopOnlineSession(ctx context.Context, sessionID string, req dto.StopSessionRequest, userID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, sessionID, req, userID))
}
func (m *MockOnlineSessionService) SaveOnlineSession(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}
func (m *MockOnlineSessionService) DiscardOnlineSession(ctx context.Context, sessionID string, userID string) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}
func (m *MockOnlineSessionService) VerifyOnlineSession(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}
func (m *MockOnlineSessionService) CheckDiscrepancy(ctx context.Context, sessionID string, userID string) (*domain.OnlineSession, *domain.Platform, accounting.Discrepancy, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, nil, accounting.Discrepancy{}, args.Error(3)
	}
	return args.Get(0).(*domain.OnlineSession), args.Get(1).(*domain.Platform), args.Get(2).(accounting.Discrepancy), args.Error(3)
}
func (m *MockOnlineSessionService) ResolveDiscrepancy(ctx context.Context, sessionID string, req dto.ResolveDiscrepancyRequest, userID string) (*domain.OnlineSession, error) {
	return m.session(m.Called(ctx, sessionID, req, userID))
}

var _ portssvc.OnlineSessionSvcFacade = (*MockOnlineSessionService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) GetDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}
func (m *MockTransferService) ListDeposits(ctx context.Context, platformID string) ([]domain.Deposit, error) {
	args := m.Called(ctx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deposit), args.Error(1)
}
func (m *MockTransferService) GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}
func (m *MockTransferService) ListWithdrawals(ctx context.Context, platformID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}
func (m *MockTransferService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, userID string) (*domain.Deposit, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}
func (m *MockTransferService) CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, userID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Mock LiveSessionService ---
type MockLiveSessionService struct {
	mock.Mock
}

func (m *MockLiveSessionService) session(args mock.Arguments) (*domain.LiveSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveSession), args.Error(1)
}

func (m *MockLiveSessionService) GetLiveSessionByID(ctx context.Context, sessionID string) (*domain.LiveSession, error) {
	return m.session(m.Called(ctx, sessionID))
}
func (m *MockLiveSessionService) ListLiveSessions(ctx context.Context, limit int, nextToken *string) ([]domain.LiveSession, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.LiveSession), next, args.Error(2)
}
func (m *MockLiveSessionService) StartLiveSession(ctx context.Context, req dto.StartLiveSessionRequest, userID string) (*domain.LiveSession, error) {
	return m.session(m.Called(ctx, req, userID))
}
func (m *MockLiveSessionService) UpdateLiveSession(ctx context.Context, sessionID string, req dto.UpdateLiveSessionRequest, userID string) (*domain.LiveSession, error) {
	return m.session(m.Called(ctx, sessionID, req, userID))
}
func (m *MockLiveSessionService) StopLiveSession(ctx context.Context, sessionID string, req dto.StopSessionRequest, userID string) (*domain.LiveSession, error) {
	return m.session(m.Called(ctx, sessionID, req, userID))
}
func (m *MockLiveSessionService) SaveLiveSession(ctx context.Context, sessionID string, userID string) (*domain.LiveSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}
func (m *MockLiveSessionService) DiscardLiveSession(ctx context.Context, sessionID string, userID string) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}
func (m *MockLiveSessionService) VerifyLiveSession(ctx context.Context, sessionID string, userID string) (*domain.LiveSession, error) {
	return m.session(m.Called(ctx, sessionID, userID))
}

var _ portssvc.LiveSessionSvcFacade = (*MockLiveSessionService)(nil)

// --- Mock BackupService ---
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) Export(ctx context.Context) (*dto.ExportDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExportDocument), args.Error(1)
}
func (m *MockBackupService) Import(ctx context.Context, doc dto.ExportDocument, userID string) (*dto.ImportSummary, error) {
	args := m.Called(ctx, doc, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportSummary), args.Error(1)
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)
