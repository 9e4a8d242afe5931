package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quizarena/internal/logger"
	"quizarena/internal/metrics"
	"quizarena/internal/middleware"
	"quizarena/internal/service"
)

type QuizHandler struct {
	Attempts *service.AttemptService
	Metrics  *metrics.Metrics
	Log      *logger.Logger
}

func NewQuizHandler(attempts *service.AttemptService, m *metrics.Metrics, log *logger.Logger) *QuizHandler {
	return &QuizHandler{Attempts: attempts, Metrics: m, Log: log}
}

// ThemeQuestions starts an attempt: it returns the theme's questions,
// stripped of correct answers and explanations unless the caller is an
// admin.
func (h *QuizHandler) ThemeQuestions(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	questions, err := h.Attempts.StartAttempt(c.Request.Context(), id, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// submitRequest mirrors the wire payload of POST /api/quiz/submit.
// Pointer fields distinguish absent from zero; answer keys arrive as
// JSON object keys, i.e. strings.
type submitRequest struct {
	ThemeID   *int           `json:"themeId"`
	Answers   map[string]int `json:"answers"`
	TimeSpent *int           `json:"timeSpent"`
}

func (h *QuizHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corps de requête invalide"})
		return
	}
	if req.ThemeID == nil || req.Answers == nil || req.TimeSpent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "themeId, answers et timeSpent sont requis"})
		return
	}

	// Non-numeric keys are unknown question ids: dropped here, counted
	// as unanswered during scoring.
	answers := make(map[int]int, len(req.Answers))
	for key, selected := range req.Answers {
		questionID, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		answers[questionID] = selected
	}

	userID := middleware.UserID(c)
	result, err := h.Attempts.Submit(c.Request.Context(), userID, service.Submission{
		ThemeID:   *req.ThemeID,
		Answers:   answers,
		TimeSpent: *req.TimeSpent,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	if h.Metrics != nil {
		h.Metrics.QuizSubmissions.WithLabelValues(strconv.Itoa(result.Session.ThemeID)).Inc()
		h.Metrics.PointsAwarded.Add(float64(result.PointsEarned))
	}
	h.Log.WithUserID(userID).WithFields(logrus.Fields{
		"theme_id": result.Session.ThemeID,
		"score":    result.Score,
		"total":    result.TotalQuestions,
	}).Info("quiz submitted")

	c.JSON(http.StatusOK, result)
}
