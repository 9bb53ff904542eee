// Package service provides business logic layer for user module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	"github.com/Tolex081/provernaire-backend/internal/user/model"
	"github.com/Tolex081/provernaire-backend/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// RegisterOrLogin returns the user with the given username, creating it
	// when it does not exist. The boolean reports whether a user was created.
	RegisterOrLogin(ctx context.Context, req *model.RegisterRequest) (*model.User, bool, error)

	// GetProfile returns a user by ID.
	GetProfile(ctx context.Context, userID string) (*model.User, error)

	// UpdateAvatar replaces the user's avatar URL.
	UpdateAvatar(ctx context.Context, userID string, req *model.UpdateAvatarRequest) (*model.User, error)
}

type service struct {
	repo          repository.Repository
	defaultAvatar string
	now           func() time.Time
	logger        *zap.SugaredLogger
}

// New creates a new user service instance. New users without an avatar get
// defaultAvatar.
func New(repo repository.Repository, defaultAvatar string, logger *zap.SugaredLogger) Service {
	return &service{
		repo:          repo,
		defaultAvatar: defaultAvatar,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}
}

// RegisterOrLogin returns the existing user or registers a new one.
func (s *service) RegisterOrLogin(ctx context.Context, req *model.RegisterRequest) (*model.User, bool, error) {
	username := model.NormalizeUsername(req.Username)
	pfpURL := strings.TrimSpace(req.PfpURL)
	s.logger.Debugw("RegisterOrLogin called", "username", username)

	if !model.ValidUsername(username) {
		return nil, false, model.ErrInvalidUsername
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if pfpURL != "" && pfpURL != existing.PfpURL {
			updated, updateErr := s.repo.UpdateAvatar(ctx, existing.UserID, pfpURL, s.now())
			if updateErr != nil {
				return nil, false, apperror.Unavailable(updateErr)
			}
			s.logger.Infow("RegisterOrLogin avatar updated on login", "user_id", existing.UserID)
			existing = updated
		}
		s.logger.Infow("RegisterOrLogin logged in", "user_id", existing.UserID, "username", username)
		return existing, false, nil
	case apperror.KindOf(err) != apperror.KindNotFound:
		s.logger.Errorw("RegisterOrLogin lookup failed", "username", username, "error", err)
		return nil, false, apperror.Unavailable(err)
	}

	if pfpURL == "" {
		pfpURL = s.defaultAvatar
	}
	now := s.now()
	user := &model.User{
		Username:     username,
		PfpURL:       pfpURL,
		LastActiveAt: &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, apperror.Unavailable(err)
	}

	s.logger.Infow("RegisterOrLogin registered", "user_id", user.UserID, "username", username)
	return user, true, nil
}

// GetProfile returns a user by ID.
func (s *service) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return user, nil
}

// UpdateAvatar replaces the user's avatar URL.
func (s *service) UpdateAvatar(ctx context.Context, userID string, req *model.UpdateAvatarRequest) (*model.User, error) {
	userID = strings.TrimSpace(userID)
	pfpURL := strings.TrimSpace(req.PfpURL)
	s.logger.Debugw("UpdateAvatar called", "user_id", userID)

	if userID == "" {
		return nil, model.ErrInvalidUserID
	}
	if pfpURL == "" {
		return nil, model.ErrInvalidPfpURL
	}

	user, err := s.repo.UpdateAvatar(ctx, userID, pfpURL, s.now())
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	s.logger.Infow("UpdateAvatar completed", "user_id", userID)
	return user, nil
}
