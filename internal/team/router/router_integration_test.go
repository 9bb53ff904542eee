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
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/dbtest"
	"github.com/Tolex081/provernaire-backend/internal/httperr"
	teamModel "github.com/Tolex081/provernaire-backend/internal/team/model"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), db, zap.NewNop().Sugar())
	return db, r
}

func post(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestIntegration_TeamLock(t *testing.T) {
	db, r := setupRouter(t)
	require.NoError(t, db.Create(&usermodel.User{UserID: "u1", Username: "alice", PfpURL: "pfp"}).Error)

	w := post(r, http.MethodPost, "/api/teams/select", teamModel.SelectTeamRequest{UserID: "u1", TeamName: "Red"})
	require.Equal(t, http.StatusOK, w.Code)

	w = post(r, http.MethodPut, "/api/teams/color", teamModel.UpdateColorRequest{UserID: "u1", Color: "#ff0000"})
	require.Equal(t, http.StatusOK, w.Code)

	w = post(r, http.MethodPost, "/api/teams/select", teamModel.SelectTeamRequest{UserID: "u1", TeamName: "Red"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp teamModel.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, usermodel.Team{Name: "Red", Color: "#ff0000"}, resp.User.Team)

	w = post(r, http.MethodPost, "/api/teams/select", teamModel.SelectTeamRequest{UserID: "u1", TeamName: "Blue"})
	require.Equal(t, http.StatusForbidden, w.Code)
	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Red", errResp.Error.CurrentTeam)

	var stored usermodel.User
	require.NoError(t, db.First(&stored, "user_id = ?", "u1").Error)
	assert.Equal(t, "Red", stored.Team.Name)
}

func TestIntegration_TeamErrors(t *testing.T) {
	_, r := setupRouter(t)

	w := post(r, http.MethodPost, "/api/teams/select", map[string]string{"userId": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, http.MethodPost, "/api/teams/select", teamModel.SelectTeamRequest{UserID: "missing", TeamName: "Red"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
