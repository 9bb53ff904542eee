package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	"github.com/Tolex081/provernaire-backend/internal/httperr"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)

	var reachedAfterPanic bool
	engine := gin.New()
	engine.Use(RequestID(), Recovery(zap.New(core).Sugar()))
	engine.POST("/scores/update",
		func(*gin.Context) { panic("nil session") },
		func(*gin.Context) { reachedAfterPanic = true },
	)
	engine.GET("/scores/leaderboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	t.Run("panic becomes a 500 error body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/scores/update", nil)
		req.Header.Set(RequestIDHeader, "req-7")

		require.NotPanics(t, func() { engine.ServeHTTP(w, req) })

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp httperr.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(apperror.KindInternal), resp.Error.Code)
		assert.Equal(t, "internal server error", resp.Error.Message)
		assert.False(t, reachedAfterPanic)

		entries := logs.FilterMessage("panic recovered").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "nil session", fields["panic"])
		assert.Equal(t, "req-7", fields["request_id"])
		assert.NotEmpty(t, fields["stack"])
	})

	t.Run("requests without panic pass through", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scores/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
