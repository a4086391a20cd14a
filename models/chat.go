package models

import "encoding/json"

// Intent categories the classifier is asked to choose from.
var IntentCategories = []string{
	"spending_analysis", "budget_planning", "financial_health",
	"savings_advice", "expense_breakdown", "spending_alerts",
	"comparison_analysis", "general_inquiry", "recommendation_request",
}

type ChatRequest struct {
	Query  string `json:"query" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

type ConversationRequest struct {
	Query          string     `json:"query" binding:"required"`
	UserID         string     `json:"user_id" binding:"required"`
	ConversationID string     `json:"conversation_id"`
	History        []ChatTurn `json:"conversation_history"`
}

// ChatTurn is one prior turn, either caller-supplied or replayed from the
// conversation history store.
type ChatTurn struct {
	Sender    string `json:"sender" bson:"sender"`
	Message   string `json:"message" bson:"message"`
	Timestamp int64  `json:"timestamp,omitempty" bson:"timestamp"`
}

// ChatMessage is a persisted conversation turn.
type ChatMessage struct {
	ConversationID string `json:"conversation_id" bson:"conversation_id"`
	UserID         string `json:"user_id" bson:"user_id"`
	Sender         string `json:"sender" bson:"sender"`
	Message        string `json:"message" bson:"message"`
	Timestamp      int64  `json:"timestamp" bson:"timestamp"`
}

type ExtractedEntities struct {
	TimePeriod          *string  `json:"time_period"`
	CategoriesMentioned []string `json:"categories_mentioned"`
	AmountMentioned     *float64 `json:"amount_mentioned"`
	ComparisonType      *string  `json:"comparison_type"`
}

// IntentClassification is the intent-only result.
type IntentClassification struct {
	PrimaryIntent           string            `json:"primary_intent"`
	ConfidenceScore         float64           `json:"confidence_score"`
	ExtractedEntities       ExtractedEntities `json:"extracted_entities"`
	QueryComplexity         string            `json:"query_complexity"`
	RequiresDataFetch       bool              `json:"requires_data_fetch"`
	SuggestedAnalysisPeriod int               `json:"suggested_analysis_period"`
	ResponseType            string            `json:"response_type"`
	UserSentiment           string            `json:"user_sentiment"`
	KeyTopics               []string          `json:"key_topics"`
	ActionableRequest       string            `json:"actionable_request"`
	UserID                  string            `json:"user_id,omitempty"`
	ProcessedAt             string            `json:"processed_at,omitempty"`
}

type ResponseMetadata struct {
	Intent         string  `json:"intent"`
	Confidence     float64 `json:"confidence"`
	ResponseType   string  `json:"response_type"`
	ProcessingTime string  `json:"processing_time"`
}

type RelevantMetrics struct {
	TotalSpending     float64         `json:"total_spending"`
	CategoryBreakdown json.RawMessage `json:"category_breakdown"`
	SpendingTrend     string          `json:"spending_trend"`
}

type FinancialAnalysis struct {
	KeyFindings     []string        `json:"key_findings"`
	RelevantMetrics RelevantMetrics `json:"relevant_metrics"`
	Insights        []string        `json:"insights"`
}

type ActionableRecommendation struct {
	Recommendation  string `json:"recommendation"`
	Category        string `json:"category"`
	Impact          string `json:"impact"`
	Timeframe       string `json:"timeframe"`
	ExpectedBenefit string `json:"expected_benefit"`
}

type AlertWarning struct {
	Type           string `json:"type"`
	Message        string `json:"message"`
	Severity       string `json:"severity"`
	ActionRequired string `json:"action_required"`
}

// ChatResponse is the full contextual response for a classified query.
type ChatResponse struct {
	ResponseMetadata             ResponseMetadata           `json:"response_metadata"`
	ConversationalResponse       string                     `json:"conversational_response"`
	FinancialAnalysis            FinancialAnalysis          `json:"financial_analysis"`
	ActionableRecommendations    []ActionableRecommendation `json:"actionable_recommendations"`
	FollowUpSuggestions          []string                   `json:"follow_up_suggestions"`
	AlertsAndWarnings            []AlertWarning             `json:"alerts_and_warnings"`
	DataVisualizationSuggestions []string                   `json:"data_visualization_suggestions"`
	UserID                       string                     `json:"user_id,omitempty"`
	OriginalQuery                string                     `json:"original_query,omitempty"`
	GeneratedAt                  string                     `json:"generated_at,omitempty"`
}

// QuickResponse is the lightweight, no-data-fetch result.
type QuickResponse struct {
	QuickResponse    string   `json:"quick_response"`
	ResponseType     string   `json:"response_type"`
	Confidence       float64  `json:"confidence"`
	RequiresData     bool     `json:"requires_data"`
	SuggestedActions []string `json:"suggested_actions"`
	FollowUpOptions  []string `json:"follow_up_options"`
	UserID           string   `json:"user_id,omitempty"`
	GeneratedAt      string   `json:"generated_at,omitempty"`
}

type ContextualResponse struct {
	AcknowledgesHistory    bool   `json:"acknowledges_history"`
	ReferencesPrevious     string `json:"references_previous"`
	ConversationalResponse string `json:"conversational_response"`
}

type ContinuedAnalysis struct {
	BuildsOnPrevious    string   `json:"builds_on_previous"`
	NewInsights         []string `json:"new_insights"`
	ComparativeAnalysis string   `json:"comparative_analysis"`
}

type SessionSummary struct {
	TopicsCovered []string `json:"topics_covered"`
	KeyDecisions  []string `json:"key_decisions"`
	ActionItems   []string `json:"action_items"`
}

// ConversationContext is the history-aware portion of a multi-turn reply.
type ConversationContext struct {
	ContextualResponse      ContextualResponse `json:"contextual_response"`
	ContinuedAnalysis       ContinuedAnalysis  `json:"continued_analysis"`
	ConversationSuggestions []string           `json:"conversation_suggestions"`
	SessionSummary          SessionSummary     `json:"session_summary"`
}

// ConversationResponse combines the contextual reply with a fresh analysis of
// the current query.
type ConversationResponse struct {
	ConversationContext *ConversationContext `json:"conversation_context"`
	CurrentAnalysis     *ChatResponse        `json:"current_analysis"`
	ResponseType        string               `json:"response_type"`
	ConversationID      string               `json:"conversation_id,omitempty"`
	UserID              string               `json:"user_id"`
	ProcessedAt         string               `json:"processed_at"`
}

// TextEntities are the regex-extracted hints attached to quick-response
// prompts before the model is called.
type TextEntities struct {
	Amounts            []string `json:"amounts"`
	Categories         []string `json:"categories"`
	TimeReferences     []string `json:"time_references"`
	ContainsQuestion   bool     `json:"contains_question"`
	ContainsComparison bool     `json:"contains_comparison"`
	UrgencyIndicators  bool     `json:"urgency_indicators"`
}
