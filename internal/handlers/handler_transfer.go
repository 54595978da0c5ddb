package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles deposits and withdrawals.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// RegisterTransferRoutes registers routes related to deposits and withdrawals.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := &transferHandler{transferService: transferService}

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.createDeposit)
		deposits.GET("", h.listDeposits)
		deposits.GET("/:id", h.getDeposit)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.GET("/:id", h.getWithdrawal)
	}
}

// createDeposit godoc
// @Summary Record a deposit
// @Description Moves money onto a platform. Derives the fee or effective rate and credits the platform.
// @Tags transfers
// @Accept json
// @Produce json
// @Param deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Platform not found"
// @Security BearerAuth
// @Router /deposits [post]
func (h *transferHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	deposit, err := h.transferService.CreateDeposit(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record deposit")
		return
	}
	logger.Info("Deposit recorded", slog.String("deposit_id", deposit.DepositID), slog.String("platform_id", deposit.PlatformID))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List deposits
// @Tags transfers
// @Produce json
// @Param platformID query string false "Only deposits to this platform"
// @Success 200 {object} dto.ListDepositsResponse
// @Security BearerAuth
// @Router /deposits [get]
func (h *transferHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	deposits, err := h.transferService.ListDeposits(c.Request.Context(), params.PlatformID)
	if err != nil {
		respondError(c, logger, err, "Failed to list deposits")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepositsResponse(deposits))
}

// getDeposit godoc
// @Summary Get a deposit by ID
// @Tags transfers
// @Produce json
// @Param id path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /deposits/{id} [get]
func (h *transferHandler) getDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("deposit_id", c.Param("id")))
	deposit, err := h.transferService.GetDepositByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve deposit")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// createWithdrawal godoc
// @Summary Record a withdrawal
// @Description Moves money off a platform. Derives the fee or effective rate and debits the platform.
// @Tags transfers
// @Accept json
// @Produce json
// @Param withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Platform not found"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *transferHandler) createWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	withdrawal, err := h.transferService.CreateWithdrawal(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record withdrawal")
		return
	}
	logger.Info("Withdrawal recorded", slog.String("withdrawal_id", withdrawal.WithdrawalID), slog.String("platform_id", withdrawal.PlatformID))
	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// listWithdrawals godoc
// @Summary List withdrawals
// @Tags transfers
// @Produce json
// @Param platformID query string false "Only withdrawals from this platform"
// @Success 200 {object} dto.ListWithdrawalsResponse
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *transferHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	withdrawals, err := h.transferService.ListWithdrawals(c.Request.Context(), params.PlatformID)
	if err != nil {
		respondError(c, logger, err, "Failed to list withdrawals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWithdrawalsResponse(withdrawals))
}

// getWithdrawal godoc
// @Summary Get a withdrawal by ID
// @Tags transfers
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{id} [get]
func (h *transferHandler) getWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("withdrawal_id", c.Param("id")))
	withdrawal, err := h.transferService.GetWithdrawalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve withdrawal")
		return
	}
	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(withdrawal))
}
