package model

import (
	"strings"

	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

// ReportProgressRequest carries a score update for the user's current game.
// Score and QuestionNumber are pointers so that a missing value can be told
// apart from zero.
type ReportProgressRequest struct {
	UserID         string          `json:"userId"`
	Username       string          `json:"username"`
	PfpURL         string          `json:"pfpUrl"`
	Team           *usermodel.Team `json:"team"`
	Score          *int            `json:"score"`
	QuestionNumber *int            `json:"questionNumber"`
	Completed      bool            `json:"completed"`
	Failed         bool            `json:"failed"`
	WalkedAway     bool            `json:"walkedAway"`
	TimeUp         bool            `json:"timeUp"`
	GameStatus     string          `json:"gameStatus"`
}

// Validate checks the required fields and returns the parsed status.
func (r *ReportProgressRequest) Validate() (Status, error) {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Username = strings.TrimSpace(r.Username)

	switch {
	case r.UserID == "":
		return "", ErrInvalidUserID
	case r.Username == "":
		return "", ErrInvalidUsername
	case !usermodel.ValidUsername(r.Username):
		return "", ErrUsernameLength
	case r.Team != nil && !usermodel.FitsTeamColumns(r.Team.Name, r.Team.Color):
		return "", ErrTeamTooLong
	case r.Score == nil:
		return "", ErrMissingScore
	case *r.Score < 0:
		return "", ErrNegativeScore
	case r.QuestionNumber == nil:
		return "", ErrMissingQuestionNumber
	case *r.QuestionNumber < 0 || *r.QuestionNumber > MaxQuestionNumber:
		return "", ErrInvalidQuestionNumber
	}

	return ParseStatus(r.GameStatus)
}

// ReportProgressResponse wraps the resulting session.
type ReportProgressResponse struct {
	Message     string      `json:"message"`
	GameSession GameSession `json:"gameSession"`
}

// HistoryResponse lists a user's sessions newest first.
type HistoryResponse struct {
	UserID   string        `json:"userId"`
	Sessions []GameSession `json:"sessions"`
}
