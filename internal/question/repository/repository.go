// Package repository provides data access layer for the question bank.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/database"
	"github.com/Tolex081/provernaire-backend/internal/question/model"
)

// Repository defines the interface for question data access operations.
type Repository interface {
	// Create inserts a question. A duplicate text fails with ErrQuestionExists.
	Create(ctx context.Context, question *model.Question) error

	// GetByID returns a question or ErrQuestionNotFound.
	GetByID(ctx context.Context, id string) (*model.Question, error)

	// Random returns up to limit questions in random order.
	Random(ctx context.Context, limit int) ([]model.Question, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new question repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a question.
func (r *repository) Create(ctx context.Context, question *model.Question) error {
	r.logger.Debugw("Create called", "category", question.Category, "difficulty", question.Difficulty)

	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return model.ErrQuestionExists
		}
		r.logger.Errorw("Create database error", "error", err)
		return err
	}

	return nil
}

// GetByID returns a question by ID.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Question, error) {
	r.logger.Debugw("GetByID called", "question_id", id)

	var question model.Question
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuestionNotFound
		}
		r.logger.Errorw("GetByID database error", "question_id", id, "error", err)
		return nil, err
	}

	return &question, nil
}

// Random returns up to limit questions in random order. RANDOM() is
// understood by both PostgreSQL and SQLite.
func (r *repository) Random(ctx context.Context, limit int) ([]model.Question, error) {
	r.logger.Debugw("Random called", "limit", limit)

	var questions []model.Question
	err := r.db.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		r.logger.Errorw("Random database error", "error", err)
		return nil, err
	}

	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}
