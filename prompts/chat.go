package prompts

import "fmt"

// nlpSystemPrompt is the shared system prompt for the chat builders.
func nlpSystemPrompt() string {
	return fmt.Sprintf(`You are an expert financial advisor AI chatbot that processes natural language queries about personal finance and expenses. Your role is to understand user intent, analyze their financial queries, and provide structured, actionable responses.

CORE CAPABILITIES:
- Intent classification and natural language understanding
- Financial data analysis and interpretation
- Personalized financial advice and recommendations
- Budget planning and optimization suggestions
- Expense pattern analysis and insights
- Financial health assessment and scoring

OUTPUT REQUIREMENTS:
- Return only valid JSON without explanations or markdown
- Classify user intent accurately
- Provide specific, actionable financial advice
- Include relevant data analysis when available
- Format responses for easy integration with frontend applications

INTENT CATEGORIES:
- spending_analysis: Questions about spending patterns, amounts, categories
- budget_planning: Requests for budget creation, optimization, planning
- financial_health: Queries about overall financial wellness, scores, assessment
- savings_advice: Questions about saving money, reducing expenses
- expense_breakdown: Requests for detailed expense categorization
- spending_alerts: Questions about unusual spending, alerts, warnings
- comparison_analysis: Comparing spending across periods or categories
- general_inquiry: General financial questions, education
- recommendation_request: Specific requests for financial recommendations

FINANCIAL CATEGORIES (use only these):
%s

RESPONSE PRINCIPLES:
- Be conversational but professional
- Provide specific, actionable advice
- Include relevant data when available
- Maintain encouraging and supportive tone
- Focus on achievable financial goals`, CategoryList())
}

// IntentClassification builds the intent-only prompt.
func IntentClassification(query string) string {
	return fmt.Sprintf(`%s

Analyze the following user query and classify the intent with extracted information:

USER QUERY: %q

Classify intent and extract information in this exact JSON format:
{
    "primary_intent": "one of the intent categories",
    "confidence_score": 0.95,
    "extracted_entities": {
        "time_period": "30 days/this month/last week/etc or null",
        "categories_mentioned": ["Food", "Transport"],
        "amount_mentioned": 1000.0,
        "comparison_type": "month-to-month/category/period or null"
    },
    "query_complexity": "simple/moderate/complex",
    "requires_data_fetch": true,
    "suggested_analysis_period": 30,
    "response_type": "analysis/advice/data/planning",
    "user_sentiment": "positive/neutral/concerned/confused",
    "key_topics": ["spending", "budget", "savings"],
    "actionable_request": "specific action user wants"
}`, nlpSystemPrompt(), query)
}

// ContextualResponse builds the full response prompt for a classified query.
// memoryContext carries similar past expense lines retrieved from the vector
// memory; it is empty when the memory is not configured.
func ContextualResponse(query, intentJSON, userDataJSON, primaryIntent, memoryContext string) string {
	memorySection := ""
	if memoryContext != "" {
		memorySection = fmt.Sprintf("\nSIMILAR PAST EXPENSES:\n%s\n", memoryContext)
	}
	return fmt.Sprintf(`%s

Process the user's financial query and provide a comprehensive, helpful response:

USER QUERY: %q

INTENT ANALYSIS:
%s

USER FINANCIAL DATA:
%s
%s
Based on the intent %q, provide response in this exact JSON format:
{
    "response_metadata": {
        "intent": %q,
        "confidence": 0.95,
        "response_type": "analysis/advice/data/planning",
        "processing_time": "2024-08-30T20:30:00"
    },
    "conversational_response": "Natural language response to user's query",
    "financial_analysis": {
        "key_findings": [],
        "relevant_metrics": {
            "total_spending": 0,
            "category_breakdown": {},
            "spending_trend": "increasing/stable/decreasing"
        },
        "insights": []
    },
    "actionable_recommendations": [
        {
            "recommendation": "Specific action user should take",
            "category": "budgeting/saving/spending",
            "impact": "high/medium/low",
            "timeframe": "immediate/short-term/long-term",
            "expected_benefit": "Specific benefit user will get"
        }
    ],
    "follow_up_suggestions": [],
    "alerts_and_warnings": [
        {
            "type": "budget/spending/savings",
            "message": "Alert message",
            "severity": "high/medium/low",
            "action_required": "What user should do"
        }
    ],
    "data_visualization_suggestions": []
}`, nlpSystemPrompt(), query, intentJSON, userDataJSON, memorySection, primaryIntent, primaryIntent)
}

// Conversation builds the history-aware prompt for multi-turn chats.
func Conversation(historyJSON, query string) string {
	return fmt.Sprintf(`%s

Process the current query considering the conversation history:

CONVERSATION HISTORY:
%s

CURRENT QUERY: %q

Provide contextual response considering previous conversation in this JSON format:
{
    "contextual_response": {
        "acknowledges_history": true,
        "references_previous": "Reference to previous conversation",
        "conversational_response": "Natural response considering context"
    },
    "continued_analysis": {
        "builds_on_previous": "How this builds on previous discussion",
        "new_insights": [],
        "comparative_analysis": "How current query relates to previous"
    },
    "conversation_suggestions": [],
    "session_summary": {
        "topics_covered": [],
        "key_decisions": [],
        "action_items": []
    }
}`, nlpSystemPrompt(), historyJSON, query)
}

// Quick builds the lightweight prompt used by the no-data-fetch path.
func Quick(query, entitiesJSON string) string {
	return fmt.Sprintf(`%s

Provide a quick, helpful response to this financial query:

USER QUERY: %q
EXTRACTED ENTITIES: %s

Generate quick response in this JSON format:
{
    "quick_response": "Direct answer to user's question",
    "response_type": "quick/simple",
    "confidence": 0.85,
    "requires_data": false,
    "suggested_actions": [],
    "follow_up_options": [
        "Get detailed analysis",
        "See full breakdown",
        "Get recommendations"
    ]
}`, nlpSystemPrompt(), query, entitiesJSON)
}
