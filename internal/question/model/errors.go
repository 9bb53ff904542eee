package model

import (
	"fmt"

	"github.com/Tolex081/provernaire-backend/internal/apperror"
)

var (
	// ErrQuestionNotFound indicates that the requested question does not exist.
	ErrQuestionNotFound = fmt.Errorf("%w: question not found", apperror.ErrNotFound)
	// ErrNoQuestions indicates that the bank is empty.
	ErrNoQuestions = fmt.Errorf("%w: no questions found in the database", apperror.ErrNotFound)
	// ErrQuestionExists indicates a question with the same text already exists.
	ErrQuestionExists = fmt.Errorf("%w: a question with this text already exists", apperror.ErrConflict)
	// ErrInvalidQuestionID indicates that the question ID is empty.
	ErrInvalidQuestionID = fmt.Errorf("%w: question ID is required", apperror.ErrValidation)
	// ErrMissingFields indicates that question, options or correctAnswer is missing.
	ErrMissingFields = fmt.Errorf("%w: question, options, and correct answer are required", apperror.ErrValidation)
	// ErrInvalidOptions indicates that options are not exactly four non-empty strings.
	ErrInvalidOptions = fmt.Errorf("%w: options must be an array of exactly %d strings",
		apperror.ErrValidation, OptionCount)
	// ErrInvalidCorrectAnswer indicates that correctAnswer is not an option index.
	ErrInvalidCorrectAnswer = fmt.Errorf("%w: correct answer index must be between 0 and %d",
		apperror.ErrValidation, OptionCount-1)
	// ErrInvalidDifficulty indicates an unknown difficulty.
	ErrInvalidDifficulty = fmt.Errorf("%w: difficulty must be Easy, Medium or Hard", apperror.ErrValidation)
)
