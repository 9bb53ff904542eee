package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	"github.com/Tolex081/provernaire-backend/internal/httperr"
)

// Recovery turns a panic in a handler into a 500 INTERNAL_ERROR body and
// logs the panic value with its stack.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Errorw("panic recovered",
					"panic", recovered,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()),
				)

				httperr.Respond(c, http.StatusInternalServerError, httperr.Body{
					Code:    string(apperror.KindInternal),
					Message: "internal server error",
				})
			}
		}()

		c.Next()
	}
}
