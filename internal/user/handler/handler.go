// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/httperr"
	"github.com/Tolex081/provernaire-backend/internal/user/model"
	"github.com/Tolex081/provernaire-backend/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RegisterOrLogin handles POST /auth/register request.
// Responds 201 for a new user and 200 for an existing one.
// @Summary Register a new user or log in an existing one
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Request"
// @Success 200 {object} model.AuthResponse "Existing user"
// @Success 201 {object} model.AuthResponse "New user"
// @Failure 400 {object} httperr.ErrorResponse "Validation error"
// @Failure 409 {object} httperr.ErrorResponse "Username taken"
// @Router /auth/register [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RegisterOrLogin(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, "invalid request body")
		return
	}

	user, created, err := h.service.RegisterOrLogin(c.Request.Context(), &req)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	if created {
		c.JSON(http.StatusCreated, model.AuthResponse{Message: "Registration successful!", User: *user})
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{Message: "Login successful!", User: *user})
}

// GetProfile handles GET /users/:id request.
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} httperr.ErrorResponse "User not found"
// @Router /users/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, model.UserResponse{User: *user})
}

// UpdateAvatar handles PUT /users/:id/avatar request.
// @Summary Update a user's avatar
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body model.UpdateAvatarRequest true "Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} httperr.ErrorResponse "Validation error"
// @Failure 404 {object} httperr.ErrorResponse "User not found"
// @Router /users/{id}/avatar [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateAvatar(c *gin.Context) {
	var req model.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, "invalid request body")
		return
	}

	user, err := h.service.UpdateAvatar(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, model.UserResponse{User: *user})
}
