package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizarena/internal/logger"
	"quizarena/internal/service"
)

type LeaderboardHandler struct {
	Leaderboard *service.LeaderboardService
	Log         *logger.Logger
}

func NewLeaderboardHandler(leaderboard *service.LeaderboardService, log *logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{Leaderboard: leaderboard, Log: log}
}

func (h *LeaderboardHandler) Global(c *gin.Context) {
	entries, err := h.Leaderboard.Global(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) Theme(c *gin.Context) {
	themeID, ok := paramID(c, "themeId")
	if !ok {
		return
	}
	entries, err := h.Leaderboard.Theme(c.Request.Context(), themeID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
