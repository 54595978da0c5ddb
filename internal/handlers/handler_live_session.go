package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// liveSessionHandler handles HTTP requests related to live sessions.
type liveSessionHandler struct {
	sessionService  portssvc.LiveSessionSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

// RegisterLiveSessionRoutes registers routes related to live sessions.
func RegisterLiveSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.LiveSessionSvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := &liveSessionHandler{sessionService: sessionService, settingsService: settingsService}

	sessions := rg.Group("/live-sessions")
	{
		sessions.POST("", h.startSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/:id", h.getSession)
		sessions.PATCH("/:id", h.updateSession)
		sessions.DELETE("/:id", h.discardSession)
		sessions.POST("/:id/stop", h.stopSession)
		sessions.POST("/:id/save", h.saveSession)
		sessions.POST("/:id/verify", h.verifySession)
	}
}

func (h *liveSessionHandler) respond(c *gin.Context, status int, s *domain.LiveSession) {
	base := h.settingsService.GetSettings(c.Request.Context()).BaseCurrency
	c.JSON(status, dto.ToLiveSessionResponse(s, base))
}

// startSession godoc
// @Summary Start a live session
// @Tags live-sessions
// @Accept json
// @Produce json
// @Param session body dto.StartLiveSessionRequest true "Session details"
// @Success 201 {object} dto.LiveSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /live-sessions [post]
func (h *liveSessionHandler) startSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartLiveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StartLiveSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.StartLiveSession(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to start live session")
		return
	}
	logger.Info("Live session started", slog.String("session_id", session.SessionID))
	h.respond(c, http.StatusCreated, session)
}

// listSessions godoc
// @Summary List live sessions
// @Description Newest first, paginated with an opaque token.
// @Tags live-sessions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLiveSessionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /live-sessions [get]
func (h *liveSessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	sessions, next, err := h.sessionService.ListLiveSessions(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list live sessions")
		return
	}

	base := h.settingsService.GetSettings(c.Request.Context()).BaseCurrency
	resp := dto.ListLiveSessionsResponse{Sessions: make([]dto.LiveSessionResponse, len(sessions)), NextToken: next}
	for i := range sessions {
		resp.Sessions[i] = dto.ToLiveSessionResponse(&sessions[i], base)
	}
	c.JSON(http.StatusOK, resp)
}

// getSession godoc
// @Summary Get a live session by ID
// @Tags live-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.LiveSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /live-sessions/{id} [get]
func (h *liveSessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	session, err := h.sessionService.GetLiveSessionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve live session")
		return
	}
	h.respond(c, http.StatusOK, session)
}

// updateSession godoc
// @Summary Autosave a live session
// @Description Applies the supplied fields. Money fields of a verified session are locked.
// @Tags live-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param session body dto.UpdateLiveSessionRequest true "Changed fields"
// @Success 200 {object} dto.LiveSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Field locked by verification"
// @Security BearerAuth
// @Router /live-sessions/{id} [patch]
func (h *liveSessionHandler) updateSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	var req dto.UpdateLiveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.UpdateLiveSession(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update live session")
		return
	}
	h.respond(c, http.StatusOK, session)
}

// stopSession godoc
// @Summary Stop a live session
// @Tags live-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param stop body dto.StopSessionRequest false "End time, defaults to now"
// @Success 200 {object} dto.LiveSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /live-sessions/{id}/stop [post]
func (h *liveSessionHandler) stopSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	req, ok := bindStopRequest(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.StopLiveSession(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to stop live session")
		return
	}
	h.respond(c, http.StatusOK, session)
}

// saveSession godoc
// @Summary Save a stopped live session
// @Description Computes the net result and estimates the hand count when none was entered.
// @Tags live-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.LiveSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Session still active"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /live-sessions/{id}/save [post]
func (h *liveSessionHandler) saveSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.SaveLiveSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to save live session")
		return
	}
	h.respond(c, http.StatusOK, session)
}

// verifySession godoc
// @Summary Verify a live session
// @Description Locks the money fields once every required field is present.
// @Tags live-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.LiveSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already verified"
// @Failure 422 {object} dto.ErrorResponse "Missing fields or invalid duration"
// @Security BearerAuth
// @Router /live-sessions/{id}/verify [post]
func (h *liveSessionHandler) verifySession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.sessionService.VerifyLiveSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to verify live session")
		return
	}
	logger.Info("Live session verified")
	h.respond(c, http.StatusOK, session)
}

// discardSession godoc
// @Summary Discard an active live session
// @Tags live-sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Session is not active"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /live-sessions/{id} [delete]
func (h *liveSessionHandler) discardSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.sessionService.DiscardLiveSession(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to discard live session")
		return
	}
	c.Status(http.StatusNoContent)
}

// bindStopRequest reads the optional stop body. An empty body means "now".
func bindStopRequest(c *gin.Context) (dto.StopSessionRequest, bool) {
	var req dto.StopSessionRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return req, false
	}
	return req, true
}
