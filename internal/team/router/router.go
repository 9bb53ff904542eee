// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/team/handler"
	"github.com/Tolex081/provernaire-backend/internal/team/repository"
	"github.com/Tolex081/provernaire-backend/internal/team/service"
	userrepo "github.com/Tolex081/provernaire-backend/internal/user/repository"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, userrepo.New(db, logger), logger)
	h := handler.New(svc, logger)

	r.POST("/teams/select", h.SelectTeam)
	r.PUT("/teams/color", h.UpdateTeamColor)
}
