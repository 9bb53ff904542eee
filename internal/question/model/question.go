package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// OptionCount is the number of answer options every question carries.
	OptionCount = 4
	// DefaultCategory is used when a question is added without a category.
	DefaultCategory = "General Knowledge"
)

// Difficulty grades a question.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty converts a raw difficulty. An empty value means DifficultyMedium.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch d := Difficulty(raw); d {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// Question is a multiple choice question of the bank.
type Question struct {
	ID            string                      `gorm:"primaryKey;column:id;type:varchar(36)"                               json:"id"`
	Text          string                      `gorm:"column:question;type:text;not null;uniqueIndex:idx_questions_question" json:"question"`
	Options       datatypes.JSONSlice[string] `gorm:"column:options;not null"                                              json:"options"`
	CorrectAnswer int                         `gorm:"column:correct_answer;not null"                                       json:"correctAnswer"`
	Category      string                      `gorm:"column:category;type:varchar(100);not null"                           json:"category"`
	Difficulty    Difficulty                  `gorm:"column:difficulty;type:varchar(10);not null"                          json:"difficulty"`
	CreatedAt     time.Time                   `gorm:"column:created_at;not null"                                           json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Question) TableName() string {
	return "questions"
}

// BeforeCreate assigns a question ID when none is set.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
