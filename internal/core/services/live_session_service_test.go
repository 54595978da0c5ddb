package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/core/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LiveSessionServiceTestSuite struct {
	suite.Suite
	txManager *MockTxManager
	repo      *MockLiveSessionRepository
	publisher *recordingPublisher
	service   portssvc.LiveSessionSvcFacade
	ctx       context.Context
}

func (suite *LiveSessionServiceTestSuite) SetupTest() {
	suite.txManager = new(MockTxManager)
	suite.repo = new(MockLiveSessionRepository)
	suite.publisher = &recordingPublisher{}
	suite.ctx = context.Background()
	suite.service = services.NewLiveSessionService(
		suite.txManager,
		suite.repo,
		staticSettings{settings},
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithEventPublisher(suite.publisher),
	)
}

func (suite *LiveSessionServiceTestSuite) stoppedSession() *domain.LiveSession {
	s := &domain.LiveSession{
		SessionID:    "l1",
		Location:     "Casino",
		CurrencyCode: "EUR",
		BuyInRate:    d("1.08"),
		CashOutRate:  d("1.10"),
		Game:         domain.GameInfo{GameType: "NLHE", SmallBlind: d("1"), BigBlind: d("2")},
		BuyIn:        d("200"),
		CashOut:      d("300"),
	}
	s.StartTime = fixedNow.Add(-4 * time.Hour)
	end := fixedNow.Add(-time.Hour)
	s.EndTime = &end
	return s
}

// expectLocked makes session the row read under lock.
func (suite *LiveSessionServiceTestSuite) expectLocked(session *domain.LiveSession) {
	suite.txManager.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.txManager.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.repo.On("FindLiveSessionByIDForUpdate", mock.Anything, mock.Anything, session.SessionID).Return(session, nil).Once()
}

// expectWrite expects one committed session update matching match.
func (suite *LiveSessionServiceTestSuite) expectWrite(match func(domain.LiveSession) bool) {
	suite.repo.On("UpdateLiveSessionInTx", mock.Anything, mock.Anything, mock.MatchedBy(match)).Return(nil).Once()
	suite.txManager.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
}

func (suite *LiveSessionServiceTestSuite) TestStart_UsesDefaultRate() {
	suite.repo.On("SaveLiveSession", mock.Anything, mock.AnythingOfType("domain.LiveSession")).Return(nil).Once()

	session, err := suite.service.StartLiveSession(suite.ctx, dto.StartLiveSessionRequest{
		Location:     " Casino ",
		CurrencyCode: "eur",
		BuyIn:        dto.NewAmount(d("200")),
	}, "user")

	suite.Require().NoError(err)
	suite.Equal("EUR", session.CurrencyCode)
	suite.Equal("Casino", session.Location)
	suite.True(d("1.08").Equal(session.BuyInRate))
	suite.True(d("1.08").Equal(session.CashOutRate))
	suite.Equal(fixedNow, session.StartTime)
	suite.Equal("user", session.CreatedBy)
	suite.Equal([]events.Name{events.SessionStarted}, suite.publisher.names())
}

func (suite *LiveSessionServiceTestSuite) TestStart_UnknownCurrencyNeedsRate() {
	_, err := suite.service.StartLiveSession(suite.ctx, dto.StartLiveSessionRequest{CurrencyCode: "GBP"}, "user")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "SaveLiveSession", mock.Anything, mock.Anything)
}

func (suite *LiveSessionServiceTestSuite) TestSave_RequiresStopped() {
	session := suite.stoppedSession()
	session.EndTime = nil
	suite.expectLocked(session)

	_, err := suite.service.SaveLiveSession(suite.ctx, "l1", "user")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txManager.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *LiveSessionServiceTestSuite) TestSave_ComputesResults() {
	suite.expectLocked(suite.stoppedSession())
	suite.expectWrite(func(domain.LiveSession) bool { return true })

	session, err := suite.service.SaveLiveSession(suite.ctx, "l1", "user")

	suite.Require().NoError(err)
	suite.True(d("100").Equal(session.NetProfitLoss))
	suite.True(d("114").Equal(session.NetProfitLossBase))
	suite.Equal(90, session.HandCount)
	suite.False(session.IsVerified)
	suite.Equal([]events.Name{events.SessionSaved}, suite.publisher.names())
}

func (suite *LiveSessionServiceTestSuite) TestVerify_ThenLocked() {
	suite.expectLocked(suite.stoppedSession())
	suite.expectWrite(func(s domain.LiveSession) bool { return s.IsVerified })

	verified, err := suite.service.VerifyLiveSession(suite.ctx, "l1", "user")
	suite.Require().NoError(err)
	suite.True(verified.IsVerified)

	suite.expectLocked(verified)
	cashOut := dto.NewAmount(d("1"))
	_, err = suite.service.UpdateLiveSession(suite.ctx, "l1", dto.UpdateLiveSessionRequest{CashOut: &cashOut}, "user")
	suite.ErrorIs(err, apperrors.ErrLocked)
	suite.repo.AssertNumberOfCalls(suite.T(), "UpdateLiveSessionInTx", 1)
}

func (suite *LiveSessionServiceTestSuite) TestUpdate_RateChangeRecomputesVerifiedResult() {
	verified := suite.stoppedSession()
	suite.Require().NoError(verified.Verify(settings))
	suite.Require().True(d("114").Equal(verified.NetProfitLossBase))
	suite.expectLocked(verified)
	// 300 * 1.20 - 200 * 1.08
	suite.expectWrite(func(s domain.LiveSession) bool {
		return s.IsVerified && s.NetProfitLossBase.Equal(d("144"))
	})
	rate := dto.NewRate(d("1.20"))

	updated, err := suite.service.UpdateLiveSession(suite.ctx, "l1", dto.UpdateLiveSessionRequest{CashOutRate: &rate}, "user")

	suite.Require().NoError(err)
	suite.True(d("144").Equal(updated.NetProfitLossBase))
	suite.True(d("100").Equal(updated.NetProfitLoss))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *LiveSessionServiceTestSuite) TestUpdate_ActiveSessionKeepsFiguresUnset() {
	session := suite.stoppedSession()
	session.EndTime = nil
	suite.expectLocked(session)
	suite.expectWrite(func(s domain.LiveSession) bool {
		return s.NetProfitLossBase.IsZero() && s.HandCount == 0
	})
	rate := dto.NewRate(d("1.20"))

	_, err := suite.service.UpdateLiveSession(suite.ctx, "l1", dto.UpdateLiveSessionRequest{BuyInRate: &rate}, "user")

	suite.Require().NoError(err)
}

func (suite *LiveSessionServiceTestSuite) TestVerify_MissingLocation() {
	session := suite.stoppedSession()
	session.Location = ""
	suite.expectLocked(session)

	_, err := suite.service.VerifyLiveSession(suite.ctx, "l1", "user")

	suite.ErrorIs(err, apperrors.ErrNotReady)
	suite.repo.AssertNotCalled(suite.T(), "UpdateLiveSessionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LiveSessionServiceTestSuite) TestStop_UsesClock() {
	session := suite.stoppedSession()
	session.EndTime = nil
	suite.expectLocked(session)
	suite.expectWrite(func(domain.LiveSession) bool { return true })

	stopped, err := suite.service.StopLiveSession(suite.ctx, "l1", dto.StopSessionRequest{}, "user")

	suite.Require().NoError(err)
	suite.Require().NotNil(stopped.EndTime)
	suite.Equal(fixedNow, *stopped.EndTime)
}

func (suite *LiveSessionServiceTestSuite) TestDiscard_Active() {
	session := suite.stoppedSession()
	session.EndTime = nil
	suite.repo.On("FindLiveSessionByID", mock.Anything, "l1").Return(session, nil).Once()
	suite.repo.On("DeleteLiveSession", mock.Anything, "l1").Return(nil).Once()

	suite.Require().NoError(suite.service.DiscardLiveSession(suite.ctx, "l1", "user"))
	suite.Equal([]events.Name{events.SessionDiscarded}, suite.publisher.names())
}

func (suite *LiveSessionServiceTestSuite) TestGet_NotFound() {
	suite.repo.On("FindLiveSessionByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetLiveSessionByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LiveSessionServiceTestSuite) TestList_ClampsLimit() {
	token := "next"
	suite.repo.On("ListLiveSessions", mock.Anything, 100, (*string)(nil)).Return([]domain.LiveSession{*suite.stoppedSession()}, &token, nil).Once()

	sessions, next, err := suite.service.ListLiveSessions(suite.ctx, 5000, nil)

	suite.Require().NoError(err)
	suite.Len(sessions, 1)
	suite.Equal("next", *next)
}

func TestLiveSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LiveSessionServiceTestSuite))
}
