// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/config"
	"github.com/Tolex081/provernaire-backend/internal/user/handler"
	"github.com/Tolex081/provernaire-backend/internal/user/repository"
	"github.com/Tolex081/provernaire-backend/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg config.GameConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, cfg.DefaultAvatarURL, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.RegisterOrLogin)
	r.GET("/users/:id", h.GetProfile)
	r.PUT("/users/:id/avatar", h.UpdateAvatar)
}
