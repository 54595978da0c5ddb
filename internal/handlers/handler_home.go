package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Bankroll API v1"})
}

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// RegisterSettingsRoutes exposes the read-only bankroll settings.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}
	rg.GET("/settings", h.getSettings)
}

// getSettings godoc
// @Summary Get settings
// @Description Returns the base currency, hands-per-hour estimates, default exchange rates and exchange input mode.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Received request to get settings")
	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: h.settingsService.GetSettings(c.Request.Context())})
}
