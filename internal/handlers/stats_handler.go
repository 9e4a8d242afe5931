package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizarena/internal/logger"
	"quizarena/internal/middleware"
	"quizarena/internal/service"
)

type StatsHandler struct {
	Stats *service.StatsService
	Log   *logger.Logger
}

func NewStatsHandler(stats *service.StatsService, log *logger.Logger) *StatsHandler {
	return &StatsHandler{Stats: stats, Log: log}
}

// MyStats backs GET /api/users/me/stats: the caller's aggregate rows,
// overall quiz count and five most recent sessions.
func (h *StatsHandler) MyStats(c *gin.Context) {
	overview, err := h.Stats.UserOverview(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
