package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

// HandleExtract extracts expenses from an uploaded receipt without
// persisting anything.
func (h *Handler) HandleExtract(c *gin.Context) {
	expenses, ok := h.runExtraction(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"extracted_data": expenses})
}

// HandleExtractAndSave extracts expenses and writes them to the user's
// expense history in one batch.
func (h *Handler) HandleExtractAndSave(c *gin.Context) {
	userID := c.Param("user_id")

	expenses, ok := h.runExtraction(c)
	if !ok {
		return
	}

	inserted, err := h.store.InsertExpenses(c.Request.Context(), userID, expenses)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.memory != nil && len(inserted) > 0 {
		// Indexing is best-effort and must not hold up the response.
		go func(rows []models.Expense) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.memory.RememberExpenses(ctx, userID, rows); err != nil {
				logger.Get().Error("failed to index expenses",
					zap.String("user_id", userID),
					zap.Error(err))
			}
		}(inserted)
	}

	c.JSON(http.StatusOK, gin.H{
		"extracted_data":    expenses,
		"saved_to_database": true,
		"user_id":           userID,
	})
}

// runExtraction saves the uploaded file to a unique temp path, runs the
// extraction pipeline, and removes the temp file whether or not the pipeline
// succeeded. Returns ok=false after writing the error response.
func (h *Handler) runExtraction(c *gin.Context) ([]models.ExtractedExpense, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return nil, false
	}

	// Unique prefix keeps concurrent uploads of the same filename apart.
	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%s_%s", uuid.NewString(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		respondError(c, fmt.Errorf("error saving uploaded file: %w", err))
		return nil, false
	}
	defer os.Remove(tempPath)

	expenses, err := h.extractor.ExtractFile(c.Request.Context(), tempPath, c.PostForm("input_type"))
	if err != nil {
		if errors.Is(err, llm.ErrMalformedOutput) || errors.Is(err, llm.ErrSchemaMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The provided file does not appear to be a bill or receipt."})
			return nil, false
		}
		respondError(c, err)
		return nil, false
	}

	return expenses, true
}
