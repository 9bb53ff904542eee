// Package handler provides HTTP handlers for game session endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/gamesession/model"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/service"
	"github.com/Tolex081/provernaire-backend/internal/httperr"
)

// Handler handles HTTP requests for game session endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new game session handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ReportProgress handles POST /scores/update request.
// @Summary Save progress of the user's current game
// @Tags Scores
// @Accept json
// @Produce json
// @Param request body model.ReportProgressRequest true "Request"
// @Success 200 {object} model.ReportProgressResponse
// @Failure 400 {object} httperr.ErrorResponse "Validation error"
// @Failure 404 {object} httperr.ErrorResponse "User not found"
// @Failure 409 {object} httperr.ErrorResponse "Concurrent update conflict"
// @Failure 503 {object} httperr.ErrorResponse "Storage unavailable"
// @Router /scores/update [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ReportProgress(c *gin.Context) {
	var req model.ReportProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, "invalid request body")
		return
	}

	session, err := h.service.ReportProgress(c.Request.Context(), &req)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, model.ReportProgressResponse{
		Message:     "Game progress saved successfully!",
		GameSession: *session,
	})
}

// History handles GET /scores/history/:userId request.
// @Summary List a user's game sessions, newest first
// @Tags Scores
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Maximum number of sessions"
// @Success 200 {object} model.HistoryResponse
// @Failure 400 {object} httperr.ErrorResponse "Invalid limit"
// @Failure 404 {object} httperr.ErrorResponse "User not found"
// @Router /scores/history/{userId} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) History(c *gin.Context) {
	limit, ok := httperr.LimitQuery(c)
	if !ok {
		return
	}

	userID := c.Param("userId")
	sessions, err := h.service.History(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, model.HistoryResponse{UserID: userID, Sessions: sessions})
}
