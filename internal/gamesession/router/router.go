// Package router provides game session module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/gamesession/handler"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/repository"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/service"
	userrepo "github.com/Tolex081/provernaire-backend/internal/user/repository"
)

// RegisterRoutes registers game session module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, userrepo.New(db, logger), db, logger)
	h := handler.New(svc, logger)

	r.POST("/scores/update", h.ReportProgress)
	r.GET("/scores/history/:userId", h.History)
}
