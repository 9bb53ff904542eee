package model

import (
	"fmt"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
)

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user not found", apperror.ErrNotFound)
	// ErrInvalidUserID indicates that the provided user ID is empty.
	ErrInvalidUserID = fmt.Errorf("%w: user ID is required", apperror.ErrValidation)
	// ErrInvalidUsername indicates that the username is missing or has a bad length.
	ErrInvalidUsername = fmt.Errorf("%w: username must be between %d and %d characters",
		apperror.ErrValidation, UsernameMinLength, UsernameMaxLength)
	// ErrInvalidPfpURL indicates that an avatar update carried no URL.
	ErrInvalidPfpURL = fmt.Errorf("%w: pfpUrl is required", apperror.ErrValidation)
	// ErrUsernameTaken indicates a unique violation on username.
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", apperror.ErrConflict)
)
