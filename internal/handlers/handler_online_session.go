package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// onlineSessionHandler handles HTTP requests related to online sessions and their reconciliation.
type onlineSessionHandler struct {
	sessionService  portssvc.OnlineSessionSvcFacade
	platformService portssvc.PlatformReaderSvc
	settingsService portssvc.SettingsSvcFacade
}

// RegisterOnlineSessionRoutes registers routes related to online sessions.
func RegisterOnlineSessionRoutes(
	rg *gin.RouterGroup,
	sessionService portssvc.OnlineSessionSvcFacade,
	platformService portssvc.PlatformReaderSvc,
	settingsService portssvc.SettingsSvcFacade,
) {
	h := &onlineSessionHandler{
		sessionService:  sessionService,
		platformService: platformService,
		settingsService: settingsService,
	}

	sessions := rg.Group("/online-sessions")
	{
		sessions.POST("", h.startSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/:id", h.getSession)
		sessions.PATCH("/:id", h.updateSession)
		sessions.DELETE("/:id", h.discardSession)
		sessions.POST("/:id/stop", h.stopSession)
		sessions.POST("/:id/save", h.saveSession)
		sessions.POST("/:id/verify", h.verifySession)
		sessions.GET("/:id/discrepancy", h.checkDiscrepancy)
		sessions.POST("/:id/discrepancy/resolve", h.resolveDiscrepancy)
	}
}

// platformFor looks up the session's platform for display. A missing platform only degrades
// the formatted figures.
func (h *onlineSessionHandler) platformFor(ctx context.Context, logger *slog.Logger, platformID string) *domain.Platform {
	platform, err := h.platformService.GetPlatformByID(ctx, platformID)
	if err != nil {
		logger.Warn("Platform lookup for display failed", slog.String("platform_id", platformID), slog.String("error", err.Error()))
		return nil
	}
	return platform
}

func (h *onlineSessionHandler) respond(c *gin.Context, logger *slog.Logger, status int, s *domain.OnlineSession) {
	ctx := c.Request.Context()
	base := h.settingsService.GetSettings(ctx).BaseCurrency
	c.JSON(status, dto.ToOnlineSessionResponse(s, h.platformFor(ctx, logger, s.PlatformID), base))
}

// startSession godoc
// @Summary Start an online session
// @Description The balance-before defaults to the platform's current balance.
// @Tags online-sessions
// @Accept json
// @Produce json
// @Param session body dto.StartOnlineSessionRequest true "Session details"
// @Success 201 {object} dto.OnlineSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Platform not found"
// @Security BearerAuth
// @Router /online-sessions [post]
func (h *onlineSessionHandler) startSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartOnlineSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StartOnlineSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.StartOnlineSession(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to start online session")
		return
	}
	logger.Info("Online session started", slog.String("session_id", session.SessionID), slog.String("platform_id", session.PlatformID))
	h.respond(c, logger, http.StatusCreated, session)
}

// listSessions godoc
// @Summary List online sessions
// @Description Newest first, paginated with an opaque token.
// @Tags online-sessions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListOnlineSessionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions [get]
func (h *onlineSessionHandler) listSessions(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	sessions, next, err := h.sessionService.ListOnlineSessions(ctx, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list online sessions")
		return
	}

	byID := make(map[string]*domain.Platform)
	if platforms, err := h.platformService.ListPlatforms(ctx); err != nil {
		logger.Warn("Platform lookup for display failed", slog.String("error", err.Error()))
	} else {
		for i := range platforms {
			byID[platforms[i].PlatformID] = &platforms[i]
		}
	}

	base := h.settingsService.GetSettings(ctx).BaseCurrency
	resp := dto.ListOnlineSessionsResponse{Sessions: make([]dto.OnlineSessionResponse, len(sessions)), NextToken: next}
	for i := range sessions {
		resp.Sessions[i] = dto.ToOnlineSessionResponse(&sessions[i], byID[sessions[i].PlatformID], base)
	}
	c.JSON(http.StatusOK, resp)
}

// getSession godoc
// @Summary Get an online session by ID
// @Tags online-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.OnlineSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions/{id} [get]
func (h *onlineSessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	session, err := h.sessionService.GetOnlineSessionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve online session")
		return
	}
	h.respond(c, logger, http.StatusOK, session)
}

// updateSession godoc
// @Summary Autosave an online session
// @Description Applies the supplied fields. Changing a balance or the platform reopens the discrepancy check.
// @Tags online-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param session body dto.UpdateOnlineSessionRequest true "Changed fields"
// @Success 200 {object} dto.OnlineSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Field locked by verification"
// @Security BearerAuth
// @Router /online-sessions/{id} [patch]
func (h *onlineSessionHandler) updateSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	var req dto.UpdateOnlineSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.UpdateOnlineSession(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update online session")
		return
	}
	h.respond(c, logger, http.StatusOK, session)
}

// stopSession godoc
// @Summary Stop an online session
// @Tags online-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param stop body dto.StopSessionRequest false "End time, defaults to now"
// @Success 200 {object} dto.OnlineSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions/{id}/stop [post]
func (h *onlineSessionHandler) stopSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	req, ok := bindStopRequest(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.StopOnlineSession(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to stop online session")
		return
	}
	h.respond(c, logger, http.StatusOK, session)
}

// saveSession godoc
// @Summary Save a stopped online session
// @Tags online-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.OnlineSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Session still active"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions/{id}/save [post]
func (h *onlineSessionHandler) saveSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.SaveOnlineSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to save online session")
		return
	}
	h.respond(c, logger, http.StatusOK, session)
}

// verifySession godoc
// @Summary Verify an online session
// @Description Locks the session and sets the platform balance to the session's closing balance.
// @Tags online-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.OnlineSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already verified"
// @Failure 422 {object} dto.ErrorResponse "Missing fields or unresolved discrepancy"
// @Security BearerAuth
// @Router /online-sessions/{id}/verify [post]
func (h *onlineSessionHandler) verifySession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.VerifyOnlineSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to verify online session")
		return
	}
	logger.Info("Online session verified", slog.String("platform_id", session.PlatformID))
	h.respond(c, logger, http.StatusOK, session)
}

// discardSession godoc
// @Summary Discard an active online session
// @Tags online-sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Session is not active"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions/{id} [delete]
func (h *onlineSessionHandler) discardSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.sessionService.DiscardOnlineSession(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to discard online session")
		return
	}
	c.Status(http.StatusNoContent)
}

// checkDiscrepancy godoc
// @Summary Check the balance discrepancy of an online session
// @Description Compares the platform balance with the session's balance-before and suggests remediations.
// @Tags online-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DiscrepancyResponse
// @Failure 400 {object} dto.ErrorResponse "Session still active"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions/{id}/discrepancy [get]
func (h *onlineSessionHandler) checkDiscrepancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, platform, result, err := h.sessionService.CheckDiscrepancy(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to check discrepancy")
		return
	}
	c.JSON(http.StatusOK, dto.ToDiscrepancyResponse(session, platform, result))
}

// resolveDiscrepancy godoc
// @Summary Resolve the balance discrepancy of an online session
// @Description "adjustment" records a balance reconciliation; the other actions only mark the check resolved.
// @Tags online-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param resolution body dto.ResolveDiscrepancyRequest true "Chosen action"
// @Success 200 {object} dto.OnlineSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /online-sessions/{id}/discrepancy/resolve [post]
func (h *onlineSessionHandler) resolveDiscrepancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	var req dto.ResolveDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.ResolveDiscrepancy(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve discrepancy")
		return
	}
	logger.Info("Discrepancy resolved", slog.String("action", string(req.Action)))
	h.respond(c, logger, http.StatusOK, session)
}
