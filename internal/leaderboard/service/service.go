// Package service provides business logic layer for leaderboard module.
package service

import (
	"cmp"
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	gamesessionmodel "github.com/Tolex081/provernaire-backend/internal/gamesession/model"
	"github.com/Tolex081/provernaire-backend/internal/leaderboard/model"
	"github.com/Tolex081/provernaire-backend/internal/leaderboard/repository"
)

// Service defines the interface for leaderboard business logic operations.
type Service interface {
	// GetLeaderboard returns one entry per user, best first. A limit of zero
	// or less returns every entry up to the configured maximum.
	GetLeaderboard(ctx context.Context, limit int) ([]model.Entry, error)

	// GetTeamStandings aggregates the leaderboard by team.
	GetTeamStandings(ctx context.Context) (*model.TeamStandingsResponse, error)
}

type service struct {
	repo     repository.Repository
	maxLimit int
	logger   *zap.SugaredLogger
}

// New creates a new leaderboard service instance. A maxLimit of zero or
// less leaves the leaderboard uncapped.
func New(repo repository.Repository, maxLimit int, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		maxLimit: maxLimit,
		logger:   logger,
	}
}

// GetLeaderboard recomputes the leaderboard from the full session history.
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]model.Entry, error) {
	s.logger.Debugw("GetLeaderboard called", "limit", limit)

	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	if s.maxLimit > 0 && (limit <= 0 || limit > s.maxLimit) {
		limit = s.maxLimit
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	s.logger.Infow("GetLeaderboard completed", "count", len(entries))
	return entries, nil
}

// GetTeamStandings aggregates the per-user best entries by team.
func (s *service) GetTeamStandings(ctx context.Context) (*model.TeamStandingsResponse, error) {
	s.logger.Debugw("GetTeamStandings called")

	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	teams := TeamStandings(entries)

	s.logger.Infow("GetTeamStandings completed", "teams", len(teams))
	return &model.TeamStandingsResponse{
		Teams: teams,
		Total: len(teams),
	}, nil
}

func (s *service) entries(ctx context.Context) ([]model.Entry, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("leaderboard scan failed", "error", err)
		return nil, apperror.Unavailable(err)
	}
	return Rank(sessions), nil
}

// Rank picks each user's best session and orders the result by score and
// recency. A user's best session is the highest score, and the most recently
// touched one among equal scores. Ties on score and timestamp are ordered by
// user ID.
func Rank(sessions []gamesessionmodel.GameSession) []model.Entry {
	best := make(map[string]gamesessionmodel.GameSession, len(sessions))
	for _, session := range sessions {
		current, ok := best[session.UserID]
		if !ok || outranks(session, current) {
			best[session.UserID] = session
		}
	}

	entries := make([]model.Entry, 0, len(best))
	for _, session := range best {
		entries = append(entries, model.EntryFromSession(session))
	}

	slices.SortFunc(entries, func(a, b model.Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	return entries
}

// outranks reports whether a beats b as a user's best session. Sessions
// equal on score and ended_at fall back to the later start, then the
// smaller ID, so the pick does not depend on row order.
func outranks(a, b gamesessionmodel.GameSession) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if c := a.EndedAt.Compare(b.EndedAt); c != 0 {
		return c > 0
	}
	if c := a.StartedAt.Compare(b.StartedAt); c != 0 {
		return c > 0
	}
	return a.ID < b.ID
}

// TeamStandings sums ranked entries per team name, skipping users without a
// team. The team color is taken from the team's top entry.
func TeamStandings(entries []model.Entry) []model.TeamStanding {
	index := make(map[string]int)
	teams := []model.TeamStanding{}

	for _, entry := range entries {
		if !entry.Team.HasTeam() {
			continue
		}

		i, ok := index[entry.Team.Name]
		if !ok {
			i = len(teams)
			index[entry.Team.Name] = i
			teams = append(teams, model.TeamStanding{
				TeamName: entry.Team.Name,
				Color:    entry.Team.Color,
				TopScore: entry.Score,
			})
		}

		teams[i].Players++
		teams[i].TotalScore += entry.Score
		teams[i].TopScore = max(teams[i].TopScore, entry.Score)
	}

	slices.SortFunc(teams, func(a, b model.TeamStanding) int {
		if c := cmp.Compare(b.TotalScore, a.TotalScore); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamName, b.TeamName)
	})

	return teams
}
