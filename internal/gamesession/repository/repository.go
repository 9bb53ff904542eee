// Package repository provides data access layer for game sessions.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/database"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/model"
)

// Repository defines the interface for game session data access operations.
type Repository interface {
	// FindInProgress returns the user's in-progress session or ErrSessionNotFound.
	FindInProgress(ctx context.Context, userID string) (*model.GameSession, error)

	// Create inserts a session. A second in-progress session for the same
	// user fails with ErrInProgressExists.
	Create(ctx context.Context, session *model.GameSession) error

	// Save writes every field of an existing session.
	Save(ctx context.Context, session *model.GameSession) error

	// ListByUser returns the user's sessions, most recently touched first.
	// A limit of zero or less returns all of them.
	ListByUser(ctx context.Context, userID string, limit int) ([]model.GameSession, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new game session repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// FindInProgress returns the user's in-progress session.
func (r *repository) FindInProgress(ctx context.Context, userID string) (*model.GameSession, error) {
	r.logger.Debugw("FindInProgress called", "user_id", userID)

	var session model.GameSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_status = ?", userID, model.StatusInProgress).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSessionNotFound
		}
		r.logger.Errorw("FindInProgress database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &session, nil
}

// Create inserts a session.
func (r *repository) Create(ctx context.Context, session *model.GameSession) error {
	r.logger.Debugw("Create called", "user_id", session.UserID, "game_status", session.GameStatus)

	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		if database.IsDuplicateKey(err) {
			r.logger.Infow("Create lost race for in-progress session", "user_id", session.UserID)
			return model.ErrInProgressExists
		}
		r.logger.Errorw("Create database error", "user_id", session.UserID, "error", err)
		return err
	}

	return nil
}

// Save writes every field of an existing session.
func (r *repository) Save(ctx context.Context, session *model.GameSession) error {
	r.logger.Debugw("Save called", "session_id", session.ID, "game_status", session.GameStatus)

	result := r.db.WithContext(ctx).
		Model(session).
		Select("*").
		Omit("id", "user_id", "started_at").
		Updates(session)

	if result.Error != nil {
		r.logger.Errorw("Save database error", "session_id", session.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrSessionNotFound
	}

	return nil
}

// ListByUser returns the user's sessions, most recently touched first.
func (r *repository) ListByUser(ctx context.Context, userID string, limit int) ([]model.GameSession, error) {
	r.logger.Debugw("ListByUser called", "user_id", userID, "limit", limit)

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ended_at DESC").
		Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var sessions []model.GameSession
	if err := query.Find(&sessions).Error; err != nil {
		r.logger.Errorw("ListByUser database error", "user_id", userID, "error", err)
		return nil, err
	}

	if sessions == nil {
		sessions = []model.GameSession{}
	}
	return sessions, nil
}
