// Package service provides business logic layer for the question bank.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
	"github.com/Tolex081/provernaire-backend/internal/config"
	"github.com/Tolex081/provernaire-backend/internal/question/model"
	"github.com/Tolex081/provernaire-backend/internal/question/repository"
)

// Service defines the interface for question bank operations.
type Service interface {
	// Add validates and stores a new question.
	Add(ctx context.Context, req *model.AddQuestionRequest) (*model.Question, error)

	// Get returns a question by ID.
	Get(ctx context.Context, id string) (*model.Question, error)

	// Random returns a random selection of questions for a game.
	Random(ctx context.Context, limit int) ([]model.Question, error)
}

type service struct {
	repo   repository.Repository
	cfg    config.GameConfig
	logger *zap.SugaredLogger
}

// New creates a new question service instance.
func New(repo repository.Repository, cfg config.GameConfig, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, cfg: cfg, logger: logger}
}

// Add validates and stores a new question.
func (s *service) Add(ctx context.Context, req *model.AddQuestionRequest) (*model.Question, error) {
	question, err := req.ToQuestion()
	if err != nil {
		s.logger.Debugw("Add validation failed", "error", err)
		return nil, err
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, apperror.Unavailable(err)
	}

	s.logger.Infow("Question added", "question_id", question.ID, "category", question.Category)
	return question, nil
}

// Get returns a question by ID.
func (s *service) Get(ctx context.Context, id string) (*model.Question, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrInvalidQuestionID
	}

	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return question, nil
}

// Random returns up to limit random questions. A limit of zero or less
// means the default; larger limits are capped.
func (s *service) Random(ctx context.Context, limit int) ([]model.Question, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultQuestionLimit
	}
	limit = min(limit, s.cfg.MaxQuestionLimit)

	questions, err := s.repo.Random(ctx, limit)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	if len(questions) == 0 {
		return nil, model.ErrNoQuestions
	}

	s.logger.Debugw("Random completed", "requested", limit, "count", len(questions))
	return questions, nil
}
