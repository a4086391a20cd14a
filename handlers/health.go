package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "expense-tracker-api",
		"message": "Expense extraction and financial insights API",
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
