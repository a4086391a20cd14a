// Package handlers maps HTTP requests onto the extraction, insights, and
// chat pipelines. Handlers are stateless across requests; every failure is
// reported through the status code, never through an error field in a 200
// body.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/db"
	"github.com/tohidkhanbagani/expense-tracker/insights"
	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/media"
	"github.com/tohidkhanbagani/expense-tracker/middleware"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

// ExpenseStore is the persistence surface the handlers touch directly.
type ExpenseStore interface {
	InsertExpenses(ctx context.Context, userID string, expenses []models.ExtractedExpense) ([]models.Expense, error)
	FetchUserExpenses(ctx context.Context, userID string, days int) []models.Expense
	GetExpenseSummary(ctx context.Context, userID string, days int) models.ExpenseSummary
	FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpsertUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.UserProfile, error)
	GetLatestInsights(ctx context.Context, userID, insightsType string) (*models.InsightsRecord, error)
}

// Extractor runs the receipt extraction pipeline over an uploaded file.
type Extractor interface {
	ExtractFile(ctx context.Context, path, inputType string) ([]models.ExtractedExpense, error)
}

// Analyzer runs the model-backed analyses.
type Analyzer interface {
	ComprehensiveInsights(ctx context.Context, userID string, periodDays int) (*models.InsightsReport, error)
	SmartBudget(ctx context.Context, userID string, savingsTarget float64) (*models.BudgetPlan, error)
	DetectAnomalies(ctx context.Context, userID string) (*models.AnomalyReport, error)
	Report(ctx context.Context, userID, reportType string) (*models.CombinedReport, error)
}

// Chat runs the NLP chat pipeline.
type Chat interface {
	ClassifyIntent(ctx context.Context, query, userID string) (*models.IntentClassification, error)
	ProcessQuery(ctx context.Context, query, userID string) (*models.ChatResponse, error)
	QuickResponse(ctx context.Context, query, userID string) (*models.QuickResponse, error)
	Conversation(ctx context.Context, req models.ConversationRequest) (*models.ConversationResponse, error)
}

// Memory indexes persisted expenses for retrieval; nil disables indexing.
type Memory interface {
	RememberExpenses(ctx context.Context, userID string, expenses []models.Expense) error
}

type Handler struct {
	store     ExpenseStore
	extractor Extractor
	analyzer  Analyzer
	chat      Chat
	memory    Memory
}

// New wires the handler set. memory may be nil.
func New(store ExpenseStore, extractor Extractor, analyzer Analyzer, chat Chat, memory Memory) *Handler {
	return &Handler{
		store:     store,
		extractor: extractor,
		analyzer:  analyzer,
		chat:      chat,
		memory:    memory,
	}
}

// RegisterRoutes installs every route on the engine. Auth is applied to the
// user-scoped routes only when a Supabase JWT secret is configured.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.CorsMiddleware)

	r.GET("/", h.HandleRoot)
	r.GET("/health", h.HandleHealth)

	authed := r.Group("/")
	if os.Getenv("SUPABASE_JWT_SECRET") != "" {
		authed.Use(middleware.AuthMiddleware)
	}

	authed.POST("/extract", h.HandleExtract)
	authed.POST("/extract/:user_id", h.HandleExtractAndSave)
	authed.GET("/insights/:user_id", h.HandleInsights)
	authed.GET("/insights/:user_id/latest", h.HandleLatestInsights)
	authed.GET("/budget/:user_id", h.HandleBudget)
	authed.GET("/alerts/:user_id", h.HandleAlerts)
	authed.GET("/report/:user_id", h.HandleReport)
	authed.POST("/chat", h.HandleChat)
	authed.POST("/chat/quick", h.HandleChatQuick)
	authed.POST("/chat/conversation", h.HandleChatConversation)
	authed.POST("/chat/intent", h.HandleChatIntent)
	authed.GET("/expenses/:user_id", h.HandleExpenses)
	authed.GET("/profile/:user_id", h.HandleGetProfile)
	authed.PUT("/profile/:user_id", h.HandleUpsertProfile)
}

// respondError translates pipeline failure kinds into status codes. Error
// kinds are matched with errors.Is, never by message text.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, media.ErrUnsupportedInputType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, llm.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file provided: " + err.Error()})
	case errors.Is(err, insights.ErrInvalidReportType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, insights.ErrNoExpenseData):
		c.JSON(http.StatusNotFound, gin.H{"error": "No expense data found for user"})
	case errors.Is(err, db.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User profile not found"})
	default:
		logger.Get().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
