package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// HandleChat answers a free-text financial query with the full pipeline:
// intent classification, conditional data fetch, contextual response.
func (h *Handler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.chat.ProcessQuery(c.Request.Context(), req.Query, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleChatQuick answers without fetching any user data; the query is only
// pre-processed with regex entity extraction.
func (h *Handler) HandleChatQuick(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.chat.QuickResponse(c.Request.Context(), req.Query, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleChatConversation answers a multi-turn query with history awareness.
func (h *Handler) HandleChatConversation(c *gin.Context) {
	var req models.ConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.chat.Conversation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleChatIntent returns only the intent classification for a query.
func (h *Handler) HandleChatIntent(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.chat.ClassifyIntent(c.Request.Context(), req.Query, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, intent)
}
