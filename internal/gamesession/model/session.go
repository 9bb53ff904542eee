package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

// MaxQuestionNumber is the last question of a game.
const MaxQuestionNumber = 10

// Status is the lifecycle state of a game session.
type Status string

// Session statuses. Every status except StatusInProgress is terminal.
const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusGameOver   Status = "game_over"
	StatusWalkedAway Status = "walked_away"
	StatusTimeUp     Status = "time_up"
)

// ParseStatus converts a raw status. An empty value means StatusInProgress.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case "":
		return StatusInProgress, nil
	case StatusInProgress, StatusFinished, StatusGameOver, StatusWalkedAway, StatusTimeUp:
		return s, nil
	default:
		return "", ErrInvalidGameStatus
	}
}

// IsTerminal reports whether no further updates may reopen the session.
func (s Status) IsTerminal() bool {
	return s != StatusInProgress
}

// GameSession is one play-through of a user. Username, avatar and team are a
// snapshot taken at the last write and may drift from the user's current values.
type GameSession struct {
	ID             string         `gorm:"primaryKey;column:id;type:varchar(36)"                                   json:"id"`
	UserID         string         `gorm:"column:user_id;type:varchar(36);not null;index:idx_game_sessions_user_id" json:"userId"`
	Username       string         `gorm:"column:username;type:varchar(30);not null"                                json:"username"`
	PfpURL         string         `gorm:"column:pfp_url;type:text;not null;default:''"                             json:"pfpUrl"`
	Team           usermodel.Team `gorm:"embedded;embeddedPrefix:team_"                                            json:"team"`
	Score          int            `gorm:"column:score;not null;default:0"                                          json:"score"`
	QuestionNumber int            `gorm:"column:question_number;not null;default:0"                                json:"questionNumber"`
	Completed      bool           `gorm:"column:completed;not null;default:false"                                  json:"completed"`
	Failed         bool           `gorm:"column:failed;not null;default:false"                                     json:"failed"`
	WalkedAway     bool           `gorm:"column:walked_away;not null;default:false"                                json:"walkedAway"`
	TimeUp         bool           `gorm:"column:time_up;not null;default:false"                                    json:"timeUp"`
	GameStatus     Status         `gorm:"column:game_status;type:varchar(20);not null;default:'in_progress'"       json:"gameStatus"`
	StartedAt      time.Time      `gorm:"column:started_at;not null"                                               json:"startedAt"`
	EndedAt        time.Time      `gorm:"column:ended_at;not null;index:idx_game_sessions_ended_at"                json:"endedAt"`
}

// TableName specifies the table name for GORM.
func (GameSession) TableName() string {
	return "game_sessions"
}

// BeforeCreate assigns a session ID when none is set.
func (s *GameSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// MergeFlags turns on every outcome flag that is set in either the session or
// the arguments. Flags never revert to false within a session.
func (s *GameSession) MergeFlags(completed, failed, walkedAway, timeUp bool) {
	s.Completed = s.Completed || completed
	s.Failed = s.Failed || failed
	s.WalkedAway = s.WalkedAway || walkedAway
	s.TimeUp = s.TimeUp || timeUp
}
