package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/config"
	"github.com/Tolex081/provernaire-backend/internal/database/dbtest"
	"github.com/Tolex081/provernaire-backend/internal/question/model"
)

func TestIntegration_QuestionBank(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), dbtest.New(t), config.DefaultGameConfig(), zap.NewNop().Sugar())

	serve := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			_ = json.NewEncoder(&buf).Encode(body)
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := serve(http.MethodGet, "/api/game/questions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	answer := 1
	req := model.AddQuestionRequest{
		Question:      "Which planet is known as the Red Planet?",
		Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: &answer,
		Difficulty:    "Easy",
	}
	w = serve(http.MethodPost, "/api/questions/add", req)
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.DefaultCategory, created.Question.Category)
	assert.Equal(t, model.DifficultyEasy, created.Question.Difficulty)

	w = serve(http.MethodPost, "/api/questions/add", req)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(http.MethodGet, "/api/questions/"+created.Question.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, []string{"Venus", "Mars", "Jupiter", "Saturn"}, []string(fetched.Question.Options))

	w = serve(http.MethodGet, "/api/game/questions?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var game model.QuestionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &game))
	assert.Len(t, game.Questions, 1)
}
