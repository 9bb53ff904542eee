// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// AssignIfUnlocked sets the user's team name when the user has no team or
	// already has the same one. It reports whether a row was updated; false
	// means the user is missing or locked to another team.
	AssignIfUnlocked(ctx context.Context, userID, teamName string, now time.Time) (bool, error)

	// UpdateColor sets the team color of a user that already has a team.
	// It reports whether a row was updated.
	UpdateColor(ctx context.Context, userID, color string, now time.Time) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// AssignIfUnlocked performs the team lock check and the write in one
// conditional UPDATE, so two concurrent selections cannot both succeed.
func (r *repository) AssignIfUnlocked(ctx context.Context, userID, teamName string, now time.Time) (bool, error) {
	r.logger.Debugw("AssignIfUnlocked called", "user_id", userID, "team_name", teamName)

	result := r.db.WithContext(ctx).
		Model(&usermodel.User{}).
		Where("user_id = ? AND (team_name = '' OR team_name = ?)", userID, teamName).
		Updates(map[string]any{
			"team_name":      teamName,
			"last_active_at": now,
			"updated_at":     now,
		})

	if result.Error != nil {
		r.logger.Errorw("AssignIfUnlocked database error", "user_id", userID, "error", result.Error)
		return false, result.Error
	}

	r.logger.Debugw("AssignIfUnlocked completed", "user_id", userID, "rows_affected", result.RowsAffected)
	return result.RowsAffected > 0, nil
}

// UpdateColor sets the team color of a user that already has a team.
func (r *repository) UpdateColor(ctx context.Context, userID, color string, now time.Time) (bool, error) {
	r.logger.Debugw("UpdateColor called", "user_id", userID, "color", color)

	result := r.db.WithContext(ctx).
		Model(&usermodel.User{}).
		Where("user_id = ? AND team_name <> ''", userID).
		Updates(map[string]any{
			"team_color":     color,
			"last_active_at": now,
			"updated_at":     now,
		})

	if result.Error != nil {
		r.logger.Errorw("UpdateColor database error", "user_id", userID, "error", result.Error)
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
