package model

import (
	"fmt"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

var (
	// ErrSessionNotFound indicates that no matching session exists.
	ErrSessionNotFound = fmt.Errorf("%w: game session not found", apperror.ErrNotFound)
	// ErrInProgressExists indicates that a concurrent writer already created the
	// user's in-progress session.
	ErrInProgressExists = fmt.Errorf("%w: in-progress session already exists", apperror.ErrConflict)
	// ErrInvalidUserID indicates that userId is missing.
	ErrInvalidUserID = fmt.Errorf("%w: userId is required", apperror.ErrValidation)
	// ErrInvalidUsername indicates that username is missing.
	ErrInvalidUsername = fmt.Errorf("%w: username is required", apperror.ErrValidation)
	// ErrUsernameLength indicates a snapshot username outside the accepted length.
	ErrUsernameLength = fmt.Errorf("%w: username must be between %d and %d characters",
		apperror.ErrValidation, usermodel.UsernameMinLength, usermodel.UsernameMaxLength)
	// ErrTeamTooLong indicates a snapshot team name or color wider than its column.
	ErrTeamTooLong = fmt.Errorf("%w: team name must be at most %d and color at most %d characters",
		apperror.ErrValidation, usermodel.TeamNameMaxLength, usermodel.TeamColorMaxLength)
	// ErrMissingScore indicates that score is missing.
	ErrMissingScore = fmt.Errorf("%w: score is required", apperror.ErrValidation)
	// ErrNegativeScore indicates that score is below zero.
	ErrNegativeScore = fmt.Errorf("%w: score must not be negative", apperror.ErrValidation)
	// ErrMissingQuestionNumber indicates that questionNumber is missing.
	ErrMissingQuestionNumber = fmt.Errorf("%w: questionNumber is required", apperror.ErrValidation)
	// ErrInvalidQuestionNumber indicates that questionNumber is out of range.
	ErrInvalidQuestionNumber = fmt.Errorf("%w: questionNumber must be between 0 and %d",
		apperror.ErrValidation, MaxQuestionNumber)
	// ErrInvalidGameStatus indicates an unknown gameStatus value.
	ErrInvalidGameStatus = fmt.Errorf("%w: unknown gameStatus", apperror.ErrValidation)
)
