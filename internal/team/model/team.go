package model

import (
	"fmt"
	"strings"
)

// TeamLockedError is returned when a user asks for a team other than the one
// already assigned. CurrentTeam lets the client show the locked choice.
type TeamLockedError struct {
	CurrentTeam   string
	RequestedTeam string
}

func (e *TeamLockedError) Error() string {
	return fmt.Sprintf("you have already selected the %s team and cannot change it; please re-select it to proceed",
		e.CurrentTeam)
}

// Unwrap makes errors.Is(err, ErrTeamLocked) hold.
func (e *TeamLockedError) Unwrap() error {
	return ErrTeamLocked
}

// NormalizeName trims surrounding whitespace from a team name or color.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}
