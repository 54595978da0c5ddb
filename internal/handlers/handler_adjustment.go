package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

// RegisterAdjustmentRoutes registers routes related to adjustments.
func RegisterAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := &adjustmentHandler{adjustmentService: adjustmentService}

	adjustments := rg.Group("/adjustments")
	{
		adjustments.POST("", h.createAdjustment)
		adjustments.GET("", h.listAdjustments)
		adjustments.GET("/:id", h.getAdjustment)
	}
}

// createAdjustment godoc
// @Summary Record an adjustment
// @Description Records a signed correction such as a bonus or rakeback. Platform balances are not changed.
// @Tags adjustments
// @Accept json
// @Produce json
// @Param adjustment body dto.CreateAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.AdjustmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /adjustments [post]
func (h *adjustmentHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	adjustment, err := h.adjustmentService.CreateAdjustment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record adjustment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdjustmentResponse(adjustment))
}

// listAdjustments godoc
// @Summary List adjustments
// @Tags adjustments
// @Produce json
// @Success 200 {object} dto.ListAdjustmentsResponse
// @Security BearerAuth
// @Router /adjustments [get]
func (h *adjustmentHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adjustments, err := h.adjustmentService.ListAdjustments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list adjustments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdjustmentsResponse(adjustments))
}

// getAdjustment godoc
// @Summary Get an adjustment by ID
// @Tags adjustments
// @Produce json
// @Param id path string true "Adjustment ID"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /adjustments/{id} [get]
func (h *adjustmentHandler) getAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjustment_id", c.Param("id")))
	adjustment, err := h.adjustmentService.GetAdjustmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve adjustment")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdjustmentResponse(adjustment))
}
