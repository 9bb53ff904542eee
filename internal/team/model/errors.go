package model

import (
	"fmt"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

var (
	// ErrTeamLocked indicates an attempt to change an already chosen team.
	ErrTeamLocked = fmt.Errorf("%w: team already selected", apperror.ErrForbidden)
	// ErrInvalidUserID indicates that userId is missing.
	ErrInvalidUserID = fmt.Errorf("%w: user ID and team name are required", apperror.ErrValidation)
	// ErrInvalidTeamName indicates that teamName is missing.
	ErrInvalidTeamName = fmt.Errorf("%w: user ID and team name are required", apperror.ErrValidation)
	// ErrInvalidColor indicates that color is missing.
	ErrInvalidColor = fmt.Errorf("%w: user ID and color are required", apperror.ErrValidation)
	// ErrTeamNameTooLong indicates a team name wider than the team_name column.
	ErrTeamNameTooLong = fmt.Errorf("%w: team name must be at most %d characters",
		apperror.ErrValidation, usermodel.TeamNameMaxLength)
	// ErrColorTooLong indicates a color wider than the team_color column.
	ErrColorTooLong = fmt.Errorf("%w: color must be at most %d characters",
		apperror.ErrValidation, usermodel.TeamColorMaxLength)
	// ErrNoTeam indicates a color update for a user without a team.
	ErrNoTeam = fmt.Errorf("%w: select a team before choosing its color", apperror.ErrValidation)
)
