// Package service provides business logic layer for team module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	teamModel "github.com/Tolex081/provernaire-backend/internal/team/model"
	"github.com/Tolex081/provernaire-backend/internal/team/repository"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
	userrepo "github.com/Tolex081/provernaire-backend/internal/user/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// SelectTeam assigns a team once. Re-selecting the same team succeeds,
	// selecting a different one fails with a *TeamLockedError.
	SelectTeam(ctx context.Context, req *teamModel.SelectTeamRequest) (*usermodel.User, error)

	// UpdateTeamColor changes the color of the user's team.
	UpdateTeamColor(ctx context.Context, req *teamModel.UpdateColorRequest) (*usermodel.User, error)
}

type service struct {
	repo   repository.Repository
	users  userrepo.Repository
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, users userrepo.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		users:  users,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// SelectTeam assigns the requested team unless the user is locked to another.
func (s *service) SelectTeam(ctx context.Context, req *teamModel.SelectTeamRequest) (*usermodel.User, error) {
	userID := teamModel.NormalizeName(req.UserID)
	teamName := teamModel.NormalizeName(req.TeamName)
	s.logger.Debugw("SelectTeam called", "user_id", userID, "team_name", teamName)

	if userID == "" {
		return nil, teamModel.ErrInvalidUserID
	}
	if teamName == "" {
		return nil, teamModel.ErrInvalidTeamName
	}
	if !usermodel.FitsTeamColumns(teamName, "") {
		return nil, teamModel.ErrTeamNameTooLong
	}

	assigned, err := s.repo.AssignIfUnlocked(ctx, userID, teamName, s.now())
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	if !assigned && user.Team.Name != teamName {
		s.logger.Infow("SelectTeam rejected, team locked",
			"user_id", userID, "current_team", user.Team.Name, "requested_team", teamName)
		return nil, &teamModel.TeamLockedError{CurrentTeam: user.Team.Name, RequestedTeam: teamName}
	}

	s.logger.Infow("SelectTeam completed", "user_id", userID, "team_name", teamName)
	return user, nil
}

// UpdateTeamColor changes the color of the user's team.
func (s *service) UpdateTeamColor(ctx context.Context, req *teamModel.UpdateColorRequest) (*usermodel.User, error) {
	userID := teamModel.NormalizeName(req.UserID)
	color := teamModel.NormalizeName(req.Color)
	s.logger.Debugw("UpdateTeamColor called", "user_id", userID, "color", color)

	if userID == "" || color == "" {
		return nil, teamModel.ErrInvalidColor
	}
	if !usermodel.FitsTeamColumns("", color) {
		return nil, teamModel.ErrColorTooLong
	}

	updated, err := s.repo.UpdateColor(ctx, userID, color, s.now())
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	if !updated {
		return nil, teamModel.ErrNoTeam
	}

	s.logger.Infow("UpdateTeamColor completed", "user_id", userID, "color", color)
	return user, nil
}
