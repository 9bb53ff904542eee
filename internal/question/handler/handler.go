// Package handler provides HTTP handlers for question bank endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/httperr"
	"github.com/Tolex081/provernaire-backend/internal/question/model"
	"github.com/Tolex081/provernaire-backend/internal/question/service"
)

// Handler handles HTTP requests for question bank endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new question handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddQuestion handles POST /questions/add request.
// @Summary Add a question to the bank
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body model.AddQuestionRequest true "Request"
// @Success 201 {object} model.QuestionResponse
// @Failure 400 {object} httperr.ErrorResponse "Validation error"
// @Failure 409 {object} httperr.ErrorResponse "Question already exists"
// @Router /questions/add [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddQuestion(c *gin.Context) {
	var req model.AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, "invalid request body")
		return
	}

	question, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, model.QuestionResponse{
		Message:  "Question added successfully!",
		Question: *question,
	})
}

// GetQuestion handles GET /questions/:id request.
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} model.QuestionResponse
// @Failure 404 {object} httperr.ErrorResponse "Question not found"
// @Router /questions/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetQuestion(c *gin.Context) {
	question, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, model.QuestionResponse{Question: *question})
}

// GameQuestions handles GET /game/questions request.
// @Summary Draw random questions for a game
// @Tags Game
// @Produce json
// @Param limit query int false "Number of questions"
// @Success 200 {object} model.QuestionsResponse
// @Failure 400 {object} httperr.ErrorResponse "Invalid limit"
// @Failure 404 {object} httperr.ErrorResponse "Question bank is empty"
// @Router /game/questions [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GameQuestions(c *gin.Context) {
	limit, ok := httperr.LimitQuery(c)
	if !ok {
		return
	}

	questions, err := h.service.Random(c.Request.Context(), limit)
	if err != nil {
		httperr.FromError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, model.QuestionsResponse{Questions: questions})
}
