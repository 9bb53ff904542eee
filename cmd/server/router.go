package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/config"
	gamesessionrouter "github.com/Tolex081/provernaire-backend/internal/gamesession/router"
	"github.com/Tolex081/provernaire-backend/internal/health"
	leaderboardrouter "github.com/Tolex081/provernaire-backend/internal/leaderboard/router"
	"github.com/Tolex081/provernaire-backend/internal/middleware"
	questionrouter "github.com/Tolex081/provernaire-backend/internal/question/router"
	teamrouter "github.com/Tolex081/provernaire-backend/internal/team/router"
	userrouter "github.com/Tolex081/provernaire-backend/internal/user/router"
)

func newRouter(db *gorm.DB, cfg config.Config, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	r.GET("/health", health.New(db, logger).Check)

	api := r.Group("/api")
	userrouter.RegisterRoutes(api, db, cfg.Game, logger)
	teamrouter.RegisterRoutes(api, db, logger)
	gamesessionrouter.RegisterRoutes(api, db, logger)
	leaderboardrouter.RegisterRoutes(api, db, cfg.Game, logger)
	questionrouter.RegisterRoutes(api, db, cfg.Game, logger)

	return r
}
