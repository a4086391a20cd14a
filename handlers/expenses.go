package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleExpenses returns the user's raw expenses plus the client-side
// summary for the requested window.
func (h *Handler) HandleExpenses(c *gin.Context) {
	userID := c.Param("user_id")

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	expenses := h.store.FetchUserExpenses(c.Request.Context(), userID, days)
	summary := h.store.GetExpenseSummary(c.Request.Context(), userID, days)

	c.JSON(http.StatusOK, gin.H{
		"expenses":    expenses,
		"summary":     summary,
		"user_id":     userID,
		"period_days": days,
	})
}
