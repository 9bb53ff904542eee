package config

import "fmt"

// DefaultAvatarURL is assigned to users registered without a profile picture.
const DefaultAvatarURL = "https://placehold.co/150x150/cccccc/000000?text=PFP"

// GameConfig holds gameplay limits.
type GameConfig struct {
	// DefaultAvatarURL is the avatar given to new users.
	DefaultAvatarURL string
	// DefaultQuestionLimit is the number of questions served per game when unspecified.
	DefaultQuestionLimit int
	// MaxQuestionLimit caps the number of questions served per request.
	MaxQuestionLimit int
	// MaxLeaderboardLimit caps the number of leaderboard entries per request.
	MaxLeaderboardLimit int
}

// DefaultGameConfig returns default gameplay configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		DefaultAvatarURL:     DefaultAvatarURL,
		DefaultQuestionLimit: 10,
		MaxQuestionLimit:     50,
		MaxLeaderboardLimit:  1000,
	}
}

// LoadGameConfigFromEnv loads gameplay configuration from environment variables.
func LoadGameConfigFromEnv() GameConfig {
	cfg := DefaultGameConfig()
	return GameConfig{
		DefaultAvatarURL:     GetEnv("DEFAULT_AVATAR_URL", cfg.DefaultAvatarURL),
		DefaultQuestionLimit: GetEnvInt("GAME_QUESTION_LIMIT", cfg.DefaultQuestionLimit),
		MaxQuestionLimit:     GetEnvInt("GAME_MAX_QUESTION_LIMIT", cfg.MaxQuestionLimit),
		MaxLeaderboardLimit:  GetEnvInt("LEADERBOARD_MAX_LIMIT", cfg.MaxLeaderboardLimit),
	}
}

// Validate validates gameplay configuration.
func (c GameConfig) Validate() error {
	if c.DefaultAvatarURL == "" {
		return fmt.Errorf("DefaultAvatarURL must not be empty")
	}
	if c.DefaultQuestionLimit <= 0 {
		return fmt.Errorf("DefaultQuestionLimit must be greater than 0")
	}
	if c.MaxQuestionLimit < c.DefaultQuestionLimit {
		return fmt.Errorf("MaxQuestionLimit (%d) cannot be less than DefaultQuestionLimit (%d)",
			c.MaxQuestionLimit, c.DefaultQuestionLimit)
	}
	if c.MaxLeaderboardLimit <= 0 {
		return fmt.Errorf("MaxLeaderboardLimit must be greater than 0")
	}
	return nil
}
