// Package model provides domain errors and DTOs for team module.
package model

import usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"

// SelectTeamRequest represents the request to choose a team.
type SelectTeamRequest struct {
	UserID   string `json:"userId"`
	TeamName string `json:"teamName"`
}

// UpdateColorRequest represents the request to change the team color.
type UpdateColorRequest struct {
	UserID string `json:"userId"`
	Color  string `json:"color"`
}

// TeamResponse represents the response after a team change.
type TeamResponse struct {
	Message string         `json:"message"`
	User    usermodel.User `json:"user"`
}
