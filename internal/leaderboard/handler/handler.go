// Package handler provides HTTP handlers for leaderboard module.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/httperr"
	"github.com/Tolex081/provernaire-backend/internal/leaderboard/service"
)

// Handler handles HTTP requests for leaderboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new leaderboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetLeaderboard handles GET /scores/leaderboard request.
// @Summary Get the leaderboard
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} model.Entry
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 503 {object} httperr.ErrorResponse
// @Router /scores/leaderboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit, ok := httperr.LimitQuery(c)
	if !ok {
		return
	}

	entries, err := h.service.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetTeamStandings handles GET /scores/teams request.
// @Summary Get team standings
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} model.TeamStandingsResponse
// @Failure 503 {object} httperr.ErrorResponse
// @Router /scores/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeamStandings(c *gin.Context) {
	resp, err := h.service.GetTeamStandings(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, resp)
}
