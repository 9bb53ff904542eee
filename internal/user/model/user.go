package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// UsernameMinLength is the shortest accepted username after trimming.
	UsernameMinLength = 3
	// UsernameMaxLength is the longest accepted username after trimming.
	UsernameMaxLength = 30
	// TeamNameMaxLength matches the team_name column width.
	TeamNameMaxLength = 100
	// TeamColorMaxLength matches the team_color column width.
	TeamColorMaxLength = 32
)

// Team is the user's team affiliation. Name is empty until a team is chosen.
type Team struct {
	Name  string `gorm:"column:name;type:varchar(100);not null;default:''" json:"name"`
	Color string `gorm:"column:color;type:varchar(32);not null;default:''"  json:"color"`
}

// HasTeam reports whether a team name has been assigned.
func (t Team) HasTeam() bool {
	return t.Name != ""
}

// User represents a player.
// Matches the users table schema.
type User struct {
	UserID       string     `gorm:"primaryKey;column:user_id;type:varchar(36)"                           json:"userId"`
	Username     string     `gorm:"column:username;type:varchar(30);not null;uniqueIndex:idx_users_username" json:"username"`
	PfpURL       string     `gorm:"column:pfp_url;type:text;not null"                                     json:"pfpUrl"`
	Team         Team       `gorm:"embedded;embeddedPrefix:team_"                                         json:"team"`
	LastActiveAt *time.Time `gorm:"column:last_active_at"                                                  json:"lastActiveAt,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null"                                             json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null"                                             json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a user ID when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// NormalizeUsername trims surrounding whitespace from a username.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// ValidUsername reports whether a normalized username has an accepted length.
func ValidUsername(username string) bool {
	n := utf8.RuneCountInString(username)
	return n >= UsernameMinLength && n <= UsernameMaxLength
}

// FitsTeamColumns reports whether name and color fit their columns.
// Lengths are counted in characters, as VARCHAR does.
func FitsTeamColumns(name, color string) bool {
	return utf8.RuneCountInString(name) <= TeamNameMaxLength &&
		utf8.RuneCountInString(color) <= TeamColorMaxLength
}
