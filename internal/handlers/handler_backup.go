package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// RegisterBackupRoutes registers the export and import routes.
func RegisterBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := &backupHandler{backupService: backupService}

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportLedger)
		backup.POST("/import", h.importLedger)
	}
}

// exportLedger godoc
// @Summary Export the ledger
// @Description Returns every record as a versioned JSON document, served as a download.
// @Tags backup
// @Produce json
// @Success 200 {object} dto.ExportDocument
// @Security BearerAuth
// @Router /backup/export [get]
func (h *backupHandler) exportLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export ledger")
		return
	}

	filename := fmt.Sprintf("bankroll-%s.json", doc.ExportDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// importLedger godoc
// @Summary Import a ledger export
// @Description Adds every record whose ID is not stored yet. Existing records are never changed.
// @Tags backup
// @Accept json
// @Produce json
// @Param document body dto.ExportDocument true "Export document"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} dto.ErrorResponse "Malformed or unsupported document"
// @Security BearerAuth
// @Router /backup/import [post]
func (h *backupHandler) importLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var doc dto.ExportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Failed to bind export document", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid export document: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.backupService.Import(c.Request.Context(), doc, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to import ledger")
		return
	}
	logger.Info("Ledger imported", slog.Int("added", summary.Added()))
	c.JSON(http.StatusOK, summary)
}
