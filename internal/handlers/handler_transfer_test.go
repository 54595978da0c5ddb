package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransferHandlerTestSuite struct {
	handlerSuite
	mockTransferService *MockTransferService
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockTransferService = new(MockTransferService)
	handlers.RegisterTransferRoutes(suite.v1, suite.mockTransferService)
}

func TestTransferHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}

func (suite *TransferHandlerTestSuite) TestCreateDeposit() {
	matchReq := mock.MatchedBy(func(req dto.CreateDepositRequest) bool {
		return req.PlatformID == "plat-1" && req.AmountSent.Equal(d("200")) && req.AmountReceived.Equal(d("195"))
	})
	deposit := &domain.Deposit{DepositID: "dep-1", PlatformID: "plat-1", AmountSent: d("200"), AmountReceived: d("195"), ProcessingFee: d("5")}
	suite.mockTransferService.On("CreateDeposit", mock.Anything, matchReq, testUserID).Return(deposit, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/deposits", `{"platformID":"plat-1","amountSent":"200","amountReceived":195}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.DepositResponse
	suite.decode(w, &resp)
	suite.True(d("5").Equal(resp.ProcessingFee))
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateDeposit_ZeroSentRejected() {
	w := suite.do(http.MethodPost, "/api/v1/deposits", `{"platformID":"plat-1","amountSent":"abc"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "CreateDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestCreateWithdrawal_UnknownPlatform() {
	suite.mockTransferService.On("CreateWithdrawal", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewNotFoundError("platform plat-9")).Once()
	w := suite.do(http.MethodPost, "/api/v1/withdrawals", `{"platformID":"plat-9","amountRequested":50,"amountReceived":50}`)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransferHandlerTestSuite) TestListDeposits_FiltersByPlatform() {
	suite.mockTransferService.On("ListDeposits", mock.Anything, "plat-1").Return([]domain.Deposit{{DepositID: "dep-1", PlatformID: "plat-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/deposits?platformID=plat-1", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListDepositsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Deposits, 1)
}
