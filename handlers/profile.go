package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// HandleGetProfile fetches the user's financial profile.
func (h *Handler) HandleGetProfile(c *gin.Context) {
	profile, err := h.store.FetchUserProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// HandleUpsertProfile inserts or updates the user's profile.
func (h *Handler) HandleUpsertProfile(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.store.UpsertUserProfile(c.Request.Context(), c.Param("user_id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}
