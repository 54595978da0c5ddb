package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LiveSessionHandlerTestSuite struct {
	handlerSuite
	mockSessionService *MockLiveSessionService
}

func (suite *LiveSessionHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockSessionService = new(MockLiveSessionService)
	handlers.RegisterLiveSessionRoutes(suite.v1, suite.mockSessionService, &MockSettingsService{settings: testSettings})
}

func TestLiveSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LiveSessionHandlerTestSuite))
}

func stoppedLiveSession() *domain.LiveSession {
	end := sessionStart.Add(3 * time.Hour)
	s := &domain.LiveSession{
		SessionID:    "live-1",
		Location:     "Casino",
		CurrencyCode: "EUR",
		BuyInRate:    d("1.08"),
		CashOutRate:  d("1.08"),
		BuyIn:        d("100"),
		CashOut:      d("150"),
	}
	s.StartTime = sessionStart
	s.EndTime = &end
	return s
}

func (suite *LiveSessionHandlerTestSuite) TestGetSession_Display() {
	suite.mockSessionService.On("GetLiveSessionByID", mock.Anything, "live-1").Return(stoppedLiveSession(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/live-sessions/live-1", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LiveSessionResponse
	suite.decode(w, &resp)
	suite.Equal("3h 0m", resp.Display.Duration)
	suite.Equal("+€50.00", resp.Display.NetResult)
	suite.Equal("+$54.00", resp.Display.NetResultBase)
}

func (suite *LiveSessionHandlerTestSuite) TestUpdateSession_LockedField() {
	suite.mockSessionService.On("UpdateLiveSession", mock.Anything, "live-1", mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: buy-in", apperrors.ErrLocked)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/live-sessions/live-1", `{"buyIn":"120"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LiveSessionHandlerTestSuite) TestUpdateSession_PassesOnlySuppliedFields() {
	matchReq := mock.MatchedBy(func(req dto.UpdateLiveSessionRequest) bool {
		return req.Notes != nil && *req.Notes == "table broke" && req.BuyIn == nil && req.CashOut == nil
	})
	suite.mockSessionService.On("UpdateLiveSession", mock.Anything, "live-1", matchReq, testUserID).Return(stoppedLiveSession(), nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/live-sessions/live-1", `{"notes":"table broke"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *LiveSessionHandlerTestSuite) TestSave_RequiresStopped() {
	suite.mockSessionService.On("SaveLiveSession", mock.Anything, "live-1", testUserID).
		Return(nil, fmt.Errorf("%w: stop the session before saving", apperrors.ErrValidation)).Once()
	w := suite.do(http.MethodPost, "/api/v1/live-sessions/live-1/save", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LiveSessionHandlerTestSuite) TestStop_WithEndTime() {
	end := sessionStart.Add(4 * time.Hour)
	matchReq := mock.MatchedBy(func(req dto.StopSessionRequest) bool {
		return req.EndTime != nil && req.EndTime.Equal(end)
	})
	suite.mockSessionService.On("StopLiveSession", mock.Anything, "live-1", matchReq, testUserID).Return(stoppedLiveSession(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/live-sessions/live-1/stop", dto.StopSessionRequest{EndTime: &end})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockSessionService.AssertExpectations(suite.T())
}
