// Package router provides leaderboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/config"
	"github.com/Tolex081/provernaire-backend/internal/leaderboard/handler"
	"github.com/Tolex081/provernaire-backend/internal/leaderboard/repository"
	"github.com/Tolex081/provernaire-backend/internal/leaderboard/service"
)

// RegisterRoutes registers leaderboard module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg config.GameConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, cfg.MaxLeaderboardLimit, logger)
	h := handler.New(svc, logger)

	r.GET("/scores/leaderboard", h.GetLeaderboard)
	r.GET("/scores/teams", h.GetTeamStandings)
}
