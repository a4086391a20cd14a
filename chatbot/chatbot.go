// Package chatbot answers natural-language financial queries: classify the
// intent, optionally pull the user's data, and prompt the model for a
// structured response.
package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/models"
	"github.com/tohidkhanbagani/expense-tracker/prompts"
)

// Store is the read surface for conditional data fetches.
type Store interface {
	FetchUserExpenses(ctx context.Context, userID string, days int) []models.Expense
	FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// Invoker is the single opaque model call.
type Invoker interface {
	Invoke(ctx context.Context, p llm.Prompt) (string, error)
}

// History persists and replays conversation turns.
type History interface {
	SaveMessage(ctx context.Context, msg *models.ChatMessage) error
	HistoryByConversation(ctx context.Context, conversationID string) ([]models.ChatTurn, error)
}

// Memory retrieves similar past expense lines for extra model context.
type Memory interface {
	SearchSimilar(ctx context.Context, userID, query string, limit int) ([]string, error)
}

type Chatbot struct {
	store   Store
	llm     Invoker
	history History
	memory  Memory
}

// New wires the chatbot. history and memory may be nil; the corresponding
// features simply stay off.
func New(store Store, invoker Invoker, history History, memory Memory) *Chatbot {
	return &Chatbot{store: store, llm: invoker, history: history, memory: memory}
}

// ClassifyIntent classifies a free-text query into one of the fixed intent
// categories with extracted entities.
func (c *Chatbot) ClassifyIntent(ctx context.Context, query, userID string) (*models.IntentClassification, error) {
	raw, err := c.llm.Invoke(ctx, llm.Prompt{Text: prompts.IntentClassification(query)})
	if err != nil {
		return nil, err
	}

	intent := &models.IntentClassification{}
	if err := llm.ParseJSON(raw, intent); err != nil {
		return nil, err
	}
	intent.UserID = userID
	intent.ProcessedAt = time.Now().Format(time.RFC3339)

	return intent, nil
}

// ProcessQuery runs the full pipeline: classify, fetch data when the
// classification asks for it, and generate the contextual response.
func (c *Chatbot) ProcessQuery(ctx context.Context, query, userID string) (*models.ChatResponse, error) {
	intent, err := c.ClassifyIntent(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	userDataJSON := "{}"
	if intent.RequiresDataFetch {
		period := intent.SuggestedAnalysisPeriod
		if period <= 0 {
			period = 30
		}
		userDataJSON, err = c.marshalUserData(ctx, userID, period)
		if err != nil {
			return nil, err
		}
	}

	intentJSON, err := json.MarshalIndent(intent, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling intent: %w", err)
	}

	memoryContext := c.recallSimilar(ctx, userID, query)

	prompt := prompts.ContextualResponse(query, string(intentJSON), userDataJSON, intent.PrimaryIntent, memoryContext)
	raw, err := c.llm.Invoke(ctx, llm.Prompt{Text: prompt})
	if err != nil {
		return nil, err
	}

	response := &models.ChatResponse{}
	if err := llm.ParseJSON(raw, response); err != nil {
		return nil, err
	}
	response.UserID = userID
	response.OriginalQuery = query
	response.GeneratedAt = time.Now().Format(time.RFC3339)

	return response, nil
}

// QuickResponse answers simple queries without touching the database: the
// only grounding is regex entity extraction over the query text.
func (c *Chatbot) QuickResponse(ctx context.Context, query, userID string) (*models.QuickResponse, error) {
	entities := ExtractEntities(query)
	entitiesJSON, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling entities: %w", err)
	}

	raw, err := c.llm.Invoke(ctx, llm.Prompt{Text: prompts.Quick(query, string(entitiesJSON))})
	if err != nil {
		return nil, err
	}

	response := &models.QuickResponse{}
	if err := llm.ParseJSON(raw, response); err != nil {
		return nil, err
	}
	response.UserID = userID
	response.GeneratedAt = time.Now().Format(time.RFC3339)

	return response, nil
}

// Conversation handles a multi-turn query: a history-aware contextual reply
// combined with a fresh analysis of the current query. History comes from
// the request, or is replayed from the store when a conversation_id is given.
func (c *Chatbot) Conversation(ctx context.Context, req models.ConversationRequest) (*models.ConversationResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	history := req.History
	if len(history) == 0 && c.history != nil && req.ConversationID != "" {
		replayed, err := c.history.HistoryByConversation(ctx, req.ConversationID)
		if err != nil {
			logger.Get().Error("failed to replay conversation history",
				zap.String("conversation_id", req.ConversationID),
				zap.Error(err))
		} else {
			history = replayed
		}
	}

	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling conversation history: %w", err)
	}

	raw, err := c.llm.Invoke(ctx, llm.Prompt{Text: prompts.Conversation(string(historyJSON), req.Query)})
	if err != nil {
		return nil, err
	}

	conversationContext := &models.ConversationContext{}
	if err := llm.ParseJSON(raw, conversationContext); err != nil {
		return nil, err
	}

	current, err := c.ProcessQuery(ctx, req.Query, req.UserID)
	if err != nil {
		return nil, err
	}

	c.recordTurns(ctx, conversationID, req.UserID, req.Query, current.ConversationalResponse)

	return &models.ConversationResponse{
		ConversationContext: conversationContext,
		CurrentAnalysis:     current,
		ResponseType:        "multi_turn",
		ConversationID:      conversationID,
		UserID:              req.UserID,
		ProcessedAt:         time.Now().Format(time.RFC3339),
	}, nil
}

func (c *Chatbot) marshalUserData(ctx context.Context, userID string, periodDays int) (string, error) {
	expenses := c.store.FetchUserExpenses(ctx, userID, periodDays)

	var profile any = map[string]any{}
	if p, err := c.store.FetchUserProfile(ctx, userID); err == nil {
		profile = p
	}

	data, err := json.MarshalIndent(map[string]any{
		"expenses":      expenses,
		"profile":       profile,
		"expense_count": len(expenses),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling user data: %w", err)
	}
	return string(data), nil
}

func (c *Chatbot) recallSimilar(ctx context.Context, userID, query string) string {
	if c.memory == nil {
		return ""
	}

	lines, err := c.memory.SearchSimilar(ctx, userID, query, 5)
	if err != nil {
		logger.Get().Error("expense memory search failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return ""
	}
	if len(lines) == 0 {
		return ""
	}
	return "- " + strings.Join(lines, "\n- ")
}

func (c *Chatbot) recordTurns(ctx context.Context, conversationID, userID, query, reply string) {
	if c.history == nil {
		return
	}

	now := time.Now().Unix()
	turns := []*models.ChatMessage{
		{ConversationID: conversationID, UserID: userID, Sender: "user", Message: query, Timestamp: now},
		{ConversationID: conversationID, UserID: userID, Sender: "assistant", Message: reply, Timestamp: now},
	}
	for _, turn := range turns {
		if err := c.history.SaveMessage(ctx, turn); err != nil {
			logger.Get().Error("failed to save conversation turn",
				zap.String("conversation_id", conversationID),
				zap.Error(err))
		}
	}
}
