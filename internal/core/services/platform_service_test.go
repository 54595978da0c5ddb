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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PlatformServiceTestSuite struct {
	suite.Suite
	repo    *MockPlatformRepository
	service portssvc.PlatformSvcFacade
	ctx     context.Context
}

func (suite *PlatformServiceTestSuite) SetupTest() {
	suite.repo = new(MockPlatformRepository)
	suite.ctx = context.Background()
	suite.service = services.NewPlatformService(suite.repo, staticSettings{settings}, services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *PlatformServiceTestSuite) TestCreate_DefaultRate() {
	suite.repo.On("FindPlatformByName", mock.Anything, "Unibet").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SavePlatform", mock.Anything, mock.AnythingOfType("domain.Platform")).Return(nil).Once()

	platform, err := suite.service.CreatePlatform(suite.ctx, dto.CreatePlatformRequest{Name: " Unibet ", CurrencyCode: "eur"}, "user")

	suite.Require().NoError(err)
	suite.Equal("Unibet", platform.Name)
	suite.Equal("EUR", platform.CurrencyCode)
	suite.True(d("1.08").Equal(platform.LatestRate))
	suite.True(platform.Balance.IsZero())
	suite.NotEmpty(platform.PlatformID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *PlatformServiceTestSuite) TestCreate_Duplicate() {
	suite.repo.On("FindPlatformByName", mock.Anything, "Stars").Return(&domain.Platform{PlatformID: "p1", Name: "stars"}, nil).Once()

	_, err := suite.service.CreatePlatform(suite.ctx, dto.CreatePlatformRequest{Name: "Stars", CurrencyCode: "USD"}, "user")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "SavePlatform", mock.Anything, mock.Anything)
}

func (suite *PlatformServiceTestSuite) TestCreate_UnknownCurrencyNeedsRate() {
	suite.repo.On("FindPlatformByName", mock.Anything, "GG").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePlatform(suite.ctx, dto.CreatePlatformRequest{Name: "GG", CurrencyCode: "CAD"}, "user")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PlatformServiceTestSuite) TestUpdate_RenameKeepsBalance() {
	existing := &domain.Platform{PlatformID: "p1", Name: "Stars", CurrencyCode: "USD", Balance: d("650"), LatestRate: d("1")}
	suite.repo.On("FindPlatformByID", mock.Anything, "p1").Return(existing, nil).Once()
	suite.repo.On("FindPlatformByName", mock.Anything, "PokerStars").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("UpdatePlatform", mock.Anything, mock.MatchedBy(func(p domain.Platform) bool {
		return p.Name == "PokerStars" && p.Balance.Equal(d("650"))
	})).Return(nil).Once()

	name := "PokerStars"
	platform, err := suite.service.UpdatePlatform(suite.ctx, "p1", dto.UpdatePlatformRequest{Name: &name}, "user")

	suite.Require().NoError(err)
	suite.Equal("PokerStars", platform.Name)
	suite.Equal(fixedNow, platform.LastUpdatedAt)
	suite.repo.AssertExpectations(suite.T())
}

func TestPlatformServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlatformServiceTestSuite))
}
