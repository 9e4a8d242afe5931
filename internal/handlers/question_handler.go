package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizarena/internal/logger"
	"quizarena/internal/models"
	"quizarena/internal/service"
)

type QuestionHandler struct {
	Catalog *service.CatalogService
	Log     *logger.Logger
}

func NewQuestionHandler(catalog *service.CatalogService, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{Catalog: catalog, Log: log}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.Catalog.ListQuestions(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	question, err := h.Catalog.GetQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	created, err := h.Catalog.CreateQuestion(c.Request.Context(), question)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var update models.QuestionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	question, err := h.Catalog.UpdateQuestion(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question supprimée"})
}
