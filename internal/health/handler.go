// Package health serves the liveness probe backed by a database ping.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/database"
)

// Probe outcomes reported in Response.Status.
const (
	StatusOK        = "ok"
	StatusUnhealthy = "unhealthy"
)

const checkTimeout = 5 * time.Second

// Handler answers GET /health.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a health handler for db.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response is the health payload. Database is only set when the ping
// succeeds.
type Response struct {
	Status   string         `json:"status"`
	Database *DatabaseStats `json:"database,omitempty"`
}

// DatabaseStats summarizes the connection pool.
type DatabaseStats struct {
	OpenConnections    int `json:"openConnections"`
	InUse              int `json:"inUse"`
	Idle               int `json:"idle"`
	MaxOpenConnections int `json:"maxOpenConnections"`
}

// Check handles GET /health.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	resp, healthy := h.probe(ctx)
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) probe(ctx context.Context) (Response, bool) {
	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		return Response{Status: StatusUnhealthy}, false
	}

	resp := Response{Status: StatusOK}
	stats, err := database.GetStats(h.db)
	if err != nil {
		h.logger.Debugw("pool stats unavailable", "error", err)
		return resp, true
	}
	resp.Database = &DatabaseStats{
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
	}
	return resp, true
}
