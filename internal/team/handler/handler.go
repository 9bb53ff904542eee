// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	"github.com/Tolex081/provernaire-backend/internal/httperr"
	teamModel "github.com/Tolex081/provernaire-backend/internal/team/model"
	"github.com/Tolex081/provernaire-backend/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SelectTeam handles POST /teams/select request.
// A locked team responds 403 with the current team in current_team.
// @Summary Choose the user's team (once)
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.SelectTeamRequest true "Request"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 400 {object} httperr.ErrorResponse "Validation error"
// @Failure 403 {object} httperr.ErrorResponse "Team already selected (current_team set)"
// @Failure 404 {object} httperr.ErrorResponse "User not found"
// @Router /teams/select [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SelectTeam(c *gin.Context) {
	var req teamModel.SelectTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, "invalid request body")
		return
	}

	user, err := h.service.SelectTeam(c.Request.Context(), &req)
	if err != nil {
		var locked *teamModel.TeamLockedError
		if errors.As(err, &locked) {
			httperr.Respond(c, http.StatusForbidden, httperr.Body{
				Code:        string(apperror.KindForbidden),
				Message:     locked.Error(),
				CurrentTeam: locked.CurrentTeam,
			})
			return
		}
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, teamModel.TeamResponse{Message: "Team selected successfully!", User: *user})
}

// UpdateTeamColor handles PUT /teams/color request.
// @Summary Change the color of the user's team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.UpdateColorRequest true "Request"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 400 {object} httperr.ErrorResponse "Validation error or no team yet"
// @Failure 404 {object} httperr.ErrorResponse "User not found"
// @Router /teams/color [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateTeamColor(c *gin.Context) {
	var req teamModel.UpdateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, "invalid request body")
		return
	}

	user, err := h.service.UpdateTeamColor(c.Request.Context(), &req)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, teamModel.TeamResponse{Message: "Team color updated successfully!", User: *user})
}
