package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/database/dbtest"
	"github.com/Tolex081/provernaire-backend/internal/question/model"
)

func newQuestion(text string) *model.Question {
	return &model.Question{
		Text:          text,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 2,
		Category:      model.DefaultCategory,
		Difficulty:    model.DifficultyMedium,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t), zap.NewNop().Sugar())

	q := newQuestion("What is 2+2?")
	require.NoError(t, repo.Create(ctx, q))
	require.NotEmpty(t, q.ID)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", got.Text)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string(got.Options))
	assert.Equal(t, 2, got.CorrectAnswer)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrQuestionNotFound)
}

func TestRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := New(dbtest.New(t), zap.NewNop().Sugar())

	require.NoError(t, repo.Create(ctx, newQuestion("Capital of France?")))
	err := repo.Create(ctx, newQuestion("Capital of France?"))
	assert.ErrorIs(t, err, model.ErrQuestionExists)
}

func TestRepository_Random(t *testing.T) {
	ctx := context.Background()

	t.Run("empty bank", func(t *testing.T) {
		repo := New(dbtest.New(t), zap.NewNop().Sugar())

		questions, err := repo.Random(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)
	})

	t.Run("respects limit without duplicates", func(t *testing.T) {
		repo := New(dbtest.New(t), zap.NewNop().Sugar())
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Create(ctx, newQuestion(fmt.Sprintf("Question %d?", i))))
		}

		questions, err := repo.Random(ctx, 3)
		require.NoError(t, err)
		require.Len(t, questions, 3)

		seen := map[string]bool{}
		for _, q := range questions {
			assert.False(t, seen[q.ID])
			seen[q.ID] = true
		}

		questions, err = repo.Random(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, questions, 5)
	})
}
