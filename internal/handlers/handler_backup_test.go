package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/handlers"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BackupHandlerTestSuite struct {
	handlerSuite
	mockBackupService *MockBackupService
}

func (suite *BackupHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockBackupService = new(MockBackupService)
	handlers.RegisterBackupRoutes(suite.v1, suite.mockBackupService)
}

func TestBackupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BackupHandlerTestSuite))
}

func (suite *BackupHandlerTestSuite) TestExport_IsADownload() {
	doc := &dto.ExportDocument{ExportVersion: dto.ExportVersion, ExportDate: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), BaseCurrency: "USD"}
	suite.mockBackupService.On("Export", mock.Anything).Return(doc, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/backup/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="bankroll-2025-06-02.json"`, w.Header().Get("Content-Disposition"))
	var got dto.ExportDocument
	suite.decode(w, &got)
	suite.Equal(dto.ExportVersion, got.ExportVersion)
}

func (suite *BackupHandlerTestSuite) TestImport_ReturnsSummary() {
	summary := &dto.ImportSummary{Platforms: dto.ImportCount{Added: 1}, Deposits: dto.ImportCount{Added: 2, Skipped: 1}}
	matchDoc := mock.MatchedBy(func(doc dto.ExportDocument) bool { return doc.ExportVersion == 1 && doc.BaseCurrency == "USD" })
	suite.mockBackupService.On("Import", mock.Anything, matchDoc, testUserID).Return(summary, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/backup/import", `{"exportVersion":1,"baseCurrency":"USD","platforms":[]}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var got dto.ImportSummary
	suite.decode(w, &got)
	suite.Equal(3, got.Added())
	suite.Equal(1, got.Deposits.Skipped)
}

func (suite *BackupHandlerTestSuite) TestImport_UnsupportedVersion() {
	suite.mockBackupService.On("Import", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError("unsupported exportVersion 99")).Once()
	w := suite.do(http.MethodPost, "/api/v1/backup/import", `{"exportVersion":99}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BackupHandlerTestSuite) TestImport_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/v1/backup/import", `{"exportVersion":`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBackupService.AssertNotCalled(suite.T(), "Import", mock.Anything, mock.Anything, mock.Anything)
}
