package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleInsights serves the comprehensive analysis for a user.
func (h *Handler) HandleInsights(c *gin.Context) {
	userID := c.Param("user_id")

	period, err := strconv.Atoi(c.DefaultQuery("analysis_period", "30"))
	if err != nil || period <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_period must be a positive integer"})
		return
	}

	report, err := h.analyzer.ComprehensiveInsights(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleLatestInsights serves the most recent logged analysis for a user,
// optionally narrowed by insights_type.
func (h *Handler) HandleLatestInsights(c *gin.Context) {
	rec, err := h.store.GetLatestInsights(c.Request.Context(), c.Param("user_id"), c.Query("insights_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No insights generated yet"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// HandleBudget serves the smart budget plan.
func (h *Handler) HandleBudget(c *gin.Context) {
	userID := c.Param("user_id")

	target, err := strconv.ParseFloat(c.DefaultQuery("savings_target", "20.0"), 64)
	if err != nil || target < 0 || target > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "savings_target must be a percentage between 0 and 100"})
		return
	}

	plan, err := h.analyzer.SmartBudget(c.Request.Context(), userID, target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// HandleAlerts serves the anomaly analysis.
func (h *Handler) HandleAlerts(c *gin.Context) {
	report, err := h.analyzer.DetectAnomalies(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleReport serves the combined insights+budget+anomalies report. The
// report type is validated inside the analyzer before any model or database
// call happens.
func (h *Handler) HandleReport(c *gin.Context) {
	report, err := h.analyzer.Report(c.Request.Context(), c.Param("user_id"), c.DefaultQuery("report_type", "monthly"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
