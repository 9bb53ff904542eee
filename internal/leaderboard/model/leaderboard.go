// Package model defines leaderboard entries and team standings.
package model

import (
	"time"

	gamesessionmodel "github.com/Tolex081/provernaire-backend/internal/gamesession/model"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

// Entry is a user's representative session on the leaderboard.
type Entry struct {
	UserID         string                  `json:"userId"`
	Username       string                  `json:"username"`
	PfpURL         string                  `json:"pfpUrl"`
	Team           usermodel.Team          `json:"team"`
	Score          int                     `json:"score"`
	QuestionNumber int                     `json:"questionNumber"`
	Completed      bool                    `json:"completed"`
	Failed         bool                    `json:"failed"`
	WalkedAway     bool                    `json:"walkedAway"`
	TimeUp         bool                    `json:"timeUp"`
	GameStatus     gamesessionmodel.Status `json:"gameStatus"`
	Timestamp      time.Time               `json:"timestamp"`
}

// EntryFromSession projects a session onto a leaderboard entry.
func EntryFromSession(s gamesessionmodel.GameSession) Entry {
	return Entry{
		UserID:         s.UserID,
		Username:       s.Username,
		PfpURL:         s.PfpURL,
		Team:           s.Team,
		Score:          s.Score,
		QuestionNumber: s.QuestionNumber,
		Completed:      s.Completed,
		Failed:         s.Failed,
		WalkedAway:     s.WalkedAway,
		TimeUp:         s.TimeUp,
		GameStatus:     s.GameStatus,
		Timestamp:      s.EndedAt,
	}
}

// TeamStanding aggregates the leaderboard entries of one team.
type TeamStanding struct {
	TeamName   string `json:"teamName"`
	Color      string `json:"color"`
	Players    int    `json:"players"`
	TotalScore int    `json:"totalScore"`
	TopScore   int    `json:"topScore"`
}

// TeamStandingsResponse lists team standings, best team first.
type TeamStandingsResponse struct {
	Teams []TeamStanding `json:"teams"`
	Total int            `json:"total"`
}
