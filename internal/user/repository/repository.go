// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tolex081/provernaire-backend/internal/database/database"
	"github.com/Tolex081/provernaire-backend/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// GetByID finds user by user_id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// GetByIDForUpdate finds user by user_id and locks the row until the
	// surrounding transaction ends. Must be called on a transaction repository.
	GetByIDForUpdate(ctx context.Context, userID string) (*model.User, error)

	// GetByUsername finds user by exact username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// UpdateAvatar sets the user's pfp_url.
	UpdateAvatar(ctx context.Context, userID, pfpURL string, now time.Time) (*model.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds user by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)
	return r.first(ctx, r.db.WithContext(ctx), "user_id = ?", userID)
}

// GetByIDForUpdate finds user by user_id with a row lock.
// SQLite ignores the locking clause and serializes writers on its own.
func (r *repository) GetByIDForUpdate(ctx context.Context, userID string) (*model.User, error) {
	r.logger.Debugw("GetByIDForUpdate called", "user_id", userID)
	tx := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(ctx, tx, "user_id = ?", userID)
}

// GetByUsername finds user by exact username.
func (r *repository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.logger.Debugw("GetByUsername called", "username", username)
	return r.first(ctx, r.db.WithContext(ctx), "username = ?", username)
}

func (r *repository) first(ctx context.Context, tx *gorm.DB, query string, arg string) (*model.User, error) {
	var user model.User
	err := tx.Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("user lookup database error", "query", query, "arg", arg, "error", err)
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A username collision returns ErrUsernameTaken.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Infow("Create called", "username", user.Username)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			r.logger.Debugw("Create username taken", "username", user.Username)
			return model.ErrUsernameTaken
		}
		r.logger.Errorw("Create database error", "username", user.Username, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "user_id", user.UserID, "username", user.Username)
	return nil
}

// UpdateAvatar sets the user's pfp_url.
func (r *repository) UpdateAvatar(ctx context.Context, userID, pfpURL string, now time.Time) (*model.User, error) {
	r.logger.Infow("UpdateAvatar called", "user_id", userID)

	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"pfp_url":        pfpURL,
			"last_active_at": now,
			"updated_at":     now,
		})

	if result.Error != nil {
		r.logger.Errorw("UpdateAvatar database error", "user_id", userID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("UpdateAvatar user not found", "user_id", userID)
		return nil, model.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}
