// Package router provides question bank routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/config"
	"github.com/Tolex081/provernaire-backend/internal/question/handler"
	"github.com/Tolex081/provernaire-backend/internal/question/repository"
	"github.com/Tolex081/provernaire-backend/internal/question/service"
)

// RegisterRoutes registers question bank routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg config.GameConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/questions/add", h.AddQuestion)
	r.GET("/questions/:id", h.GetQuestion)
	r.GET("/game/questions", h.GameQuestions)
}
