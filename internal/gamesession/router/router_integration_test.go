package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/dbtest"
	"github.com/Tolex081/provernaire-backend/internal/gamesession/model"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)
	require.NoError(t, db.Create(&usermodel.User{UserID: "u1", Username: "alice", PfpURL: "pfp"}).Error)

	r := gin.New()
	RegisterRoutes(r.Group("/api"), db, zap.NewNop().Sugar())
	return db, r
}

func send(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

func progress(score, question int, status string) map[string]any {
	return map[string]any{
		"userId":         "u1",
		"username":       "alice",
		"score":          score,
		"questionNumber": question,
		"gameStatus":     status,
	}
}

func TestIntegration_GameLifecycle(t *testing.T) {
	db, r := setupRouter(t)

	w := send(r, http.MethodPost, "/api/scores/update", progress(10, 1, ""))
	require.Equal(t, http.StatusOK, w.Code)
	var first model.ReportProgressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, "pfp", first.GameSession.PfpURL)

	w = send(r, http.MethodPost, "/api/scores/update", progress(100, 10, "finished"))
	require.Equal(t, http.StatusOK, w.Code)
	var finished model.ReportProgressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &finished))
	assert.Equal(t, first.GameSession.ID, finished.GameSession.ID)

	w = send(r, http.MethodPost, "/api/scores/update", progress(10, 1, "in_progress"))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.GameSession{}).Where("user_id = ?", "u1").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	w = send(r, http.MethodGet, "/api/scores/history/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history model.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Sessions, 2)
	assert.Equal(t, model.StatusInProgress, history.Sessions[0].GameStatus)
}

func TestIntegration_ReportProgressErrors(t *testing.T) {
	db, r := setupRouter(t)

	body := progress(10, 1, "")
	delete(body, "questionNumber")
	w := send(r, http.MethodPost, "/api/scores/update", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = progress(10, 1, "")
	body["username"] = strings.Repeat("a", 40)
	w = send(r, http.MethodPost, "/api/scores/update", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "oversized username is a client error")
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	body = progress(10, 1, "")
	body["team"] = map[string]string{"name": strings.Repeat("r", 150)}
	w = send(r, http.MethodPost, "/api/scores/update", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "oversized team name is a client error")

	body = progress(10, 1, "")
	body["userId"] = "ghost"
	w = send(r, http.MethodPost, "/api/scores/update", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.GameSession{}).Count(&count).Error)
	assert.Zero(t, count)
}
