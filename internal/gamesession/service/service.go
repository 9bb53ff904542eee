// Package service implements the game session lifecycle: one mutable
// in-progress session per user, turned into immutable history by a terminal
// status.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/model"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/repository"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
	userrepo "github.com/Tolex081/provernaire-backend/internal/user/repository"
	"github.com/Tolex081/provernaire-backend/pkg/retry"
)

// Service defines the interface for game session operations.
type Service interface {
	// ReportProgress updates the user's in-progress session, or starts a new
	// one when none exists.
	ReportProgress(ctx context.Context, req *model.ReportProgressRequest) (*model.GameSession, error)

	// History returns the user's sessions, most recently touched first.
	History(ctx context.Context, userID string, limit int) ([]model.GameSession, error)
}

// Option configures the service.
type Option func(*service)

// WithClock replaces the time source used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo   repository.Repository
	users  userrepo.Repository
	db     *gorm.DB
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a new game session service instance.
func New(
	repo repository.Repository,
	users userrepo.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	opts ...Option,
) Service {
	s := &service{
		repo:   repo,
		users:  users,
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportProgress runs the find-or-create in one transaction that holds the
// user's row lock. If a concurrent writer still wins the insert, the
// partial unique index rejects ours and the whole step is retried, which
// then updates the winner's session.
func (s *service) ReportProgress(ctx context.Context, req *model.ReportProgressRequest) (*model.GameSession, error) {
	status, err := req.Validate()
	if err != nil {
		s.logger.Debugw("ReportProgress validation failed", "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.logger.Debugw("ReportProgress called",
		"user_id", req.UserID, "score", *req.Score, "question_number", *req.QuestionNumber, "game_status", status)

	retryCfg := retry.ConflictConfig(model.ErrInProgressExists)
	retryCfg.OnRetry = func(attempt int, _ error) {
		s.logger.Warnw("ReportProgress lost a session race, retrying", "user_id", req.UserID, "attempt", attempt)
	}

	var result *model.GameSession
	err = retry.Do(ctx, retryCfg, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			session, txErr := s.upsert(ctx, tx, req, status)
			if txErr != nil {
				return txErr
			}
			result = session
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, usermodel.ErrUserNotFound) {
			s.logger.Errorw("ReportProgress failed", "user_id", req.UserID, "error", err)
		}
		return nil, apperror.Unavailable(err)
	}

	s.logger.Infow("ReportProgress completed",
		"user_id", result.UserID, "session_id", result.ID, "score", result.Score, "game_status", result.GameStatus)
	return result, nil
}

func (s *service) upsert(
	ctx context.Context,
	tx *gorm.DB,
	req *model.ReportProgressRequest,
	status model.Status,
) (*model.GameSession, error) {
	txUsers := userrepo.New(tx, s.logger)
	txRepo := repository.New(tx, s.logger)

	user, err := txUsers.GetByIDForUpdate(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session, err := txRepo.FindInProgress(ctx, user.UserID)
	switch {
	case err == nil:
		session.Username = req.Username
		session.PfpURL = req.PfpURL
		session.Team = usermodel.Team{}
		if req.Team != nil {
			session.Team = *req.Team
		}
		session.Score = *req.Score
		session.QuestionNumber = *req.QuestionNumber
		session.MergeFlags(req.Completed, req.Failed, req.WalkedAway, req.TimeUp)
		session.GameStatus = status
		session.EndedAt = now

		if err := txRepo.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil

	case errors.Is(err, model.ErrSessionNotFound):
		session = &model.GameSession{
			UserID:         user.UserID,
			Username:       req.Username,
			PfpURL:         req.PfpURL,
			Team:           user.Team,
			Score:          *req.Score,
			QuestionNumber: *req.QuestionNumber,
			Completed:      req.Completed,
			Failed:         req.Failed,
			WalkedAway:     req.WalkedAway,
			TimeUp:         req.TimeUp,
			GameStatus:     status,
			StartedAt:      now,
			EndedAt:        now,
		}
		if session.PfpURL == "" {
			session.PfpURL = user.PfpURL
		}
		if req.Team != nil {
			session.Team = *req.Team
		}

		if err := txRepo.Create(ctx, session); err != nil {
			return nil, err
		}
		return session, nil

	default:
		return nil, err
	}
}

// History returns the user's sessions, most recently touched first.
func (s *service) History(ctx context.Context, userID string, limit int) ([]model.GameSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, apperror.Unavailable(err)
	}

	sessions, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	s.logger.Debugw("History completed", "user_id", userID, "count", len(sessions))
	return sessions, nil
}
