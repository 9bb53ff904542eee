// Package httperr writes error responses in the shape shared by all handlers.
package httperr

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
)

// CodeInvalidRequest is returned when a body or parameter cannot be decoded.
const CodeInvalidRequest = "INVALID_REQUEST"

// Body is the content of an error response.
type Body struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	CurrentTeam string `json:"current_team,omitempty"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error Body `json:"error"`
}

// Respond writes an error response with the given body.
func Respond(c *gin.Context, status int, body Body) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: body})
}

// InvalidRequest writes a 400 response for undecodable input.
func InvalidRequest(c *gin.Context, message string) {
	Respond(c, http.StatusBadRequest, Body{Code: CodeInvalidRequest, Message: message})
}

// FromError maps err to a status code by its kind and writes the response.
// Unavailable and internal errors are logged.
func FromError(c *gin.Context, err error, logger *zap.SugaredLogger) {
	kind := apperror.KindOf(err)
	status := kind.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"kind", kind,
			"error", err,
		)
	}
	Respond(c, status, Body{Code: string(kind), Message: apperror.Message(err)})
}

// LimitQuery reads the optional non-negative limit query parameter. A missing
// value is 0. On a malformed value it writes a 400 response and returns false.
func LimitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		InvalidRequest(c, "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}
