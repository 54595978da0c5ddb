package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// platformHandler handles HTTP requests related to online platforms.
type platformHandler struct {
	platformService portssvc.PlatformSvcFacade
}

// RegisterPlatformRoutes registers routes related to platforms.
func RegisterPlatformRoutes(rg *gin.RouterGroup, platformService portssvc.PlatformSvcFacade) {
	h := &platformHandler{platformService: platformService}

	platforms := rg.Group("/platforms")
	{
		platforms.POST("", h.createPlatform)
		platforms.GET("", h.listPlatforms)
		platforms.GET("/:id", h.getPlatform)
		platforms.PATCH("/:id", h.updatePlatform)
	}
}

// createPlatform godoc
// @Summary Create a platform
// @Description Creates an online poker platform with an opening balance.
// @Tags platforms
// @Accept json
// @Produce json
// @Param platform body dto.CreatePlatformRequest true "Platform details"
// @Success 201 {object} dto.PlatformResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /platforms [post]
func (h *platformHandler) createPlatform(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePlatform", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create platform", slog.String("name", req.Name), slog.String("currency_code", req.CurrencyCode))
	platform, err := h.platformService.CreatePlatform(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create platform")
		return
	}

	logger.Info("Platform created successfully", slog.String("platform_id", platform.PlatformID))
	c.JSON(http.StatusCreated, dto.ToPlatformResponse(platform))
}

// listPlatforms godoc
// @Summary List platforms
// @Tags platforms
// @Produce json
// @Success 200 {object} dto.ListPlatformsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /platforms [get]
func (h *platformHandler) listPlatforms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	platforms, err := h.platformService.ListPlatforms(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list platforms")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPlatformsResponse(platforms))
}

// getPlatform godoc
// @Summary Get a platform by ID
// @Tags platforms
// @Produce json
// @Param id path string true "Platform ID"
// @Success 200 {object} dto.PlatformResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /platforms/{id} [get]
func (h *platformHandler) getPlatform(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("platform_id", c.Param("id")))
	platform, err := h.platformService.GetPlatformByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve platform")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlatformResponse(platform))
}

// updatePlatform godoc
// @Summary Update a platform
// @Description Renames a platform or sets its latest exchange rate. The balance cannot be edited.
// @Tags platforms
// @Accept json
// @Produce json
// @Param id path string true "Platform ID"
// @Param platform body dto.UpdatePlatformRequest true "Changes"
// @Success 200 {object} dto.PlatformResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /platforms/{id} [patch]
func (h *platformHandler) updatePlatform(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("platform_id", c.Param("id")))
	var req dto.UpdatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	platform, err := h.platformService.UpdatePlatform(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update platform")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlatformResponse(platform))
}
