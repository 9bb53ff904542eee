// Package repository provides data access layer for leaderboard module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	gamesessionmodel "github.com/Tolex081/provernaire-backend/internal/gamesession/model"
)

// Repository defines the interface for leaderboard data access operations.
type Repository interface {
	// ListAll returns every stored session in any status.
	ListAll(ctx context.Context) ([]gamesessionmodel.GameSession, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new leaderboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// ListAll returns every stored session.
func (r *repository) ListAll(ctx context.Context) ([]gamesessionmodel.GameSession, error) {
	r.logger.Debugw("ListAll called")

	var sessions []gamesessionmodel.GameSession
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&sessions).Error

	if err != nil {
		r.logger.Errorw("ListAll database error", "error", err)
		return nil, err
	}

	if sessions == nil {
		sessions = []gamesessionmodel.GameSession{}
	}

	r.logger.Debugw("ListAll completed", "count", len(sessions))
	return sessions, nil
}
