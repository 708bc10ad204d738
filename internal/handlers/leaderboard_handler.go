package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"elearning-service/internal/service"
)

type LeaderboardHandler struct {
	Leaderboard *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Leaderboard: leaderboard}
}

// Top returns the n highest-scoring users. A missing or unparseable n falls
// back to the default size.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		n = service.DefaultLeaderboardSize
	}

	entries, err := h.Leaderboard.Top(context.Background(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
