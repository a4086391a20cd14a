package prompts

import "fmt"

// financialInsightsPrompt is the shared system prompt for the analysis
// builders (comprehensive insights, smart budget, anomaly detection).
func financialInsightsPrompt() string {
	return fmt.Sprintf(`You are an expert financial advisor AI with deep knowledge of personal finance, budgeting, and expense management. Your role is to analyze user expense data and provide precise, actionable financial insights.

CORE RESPONSIBILITIES:
- Analyze spending patterns with statistical precision
- Identify financial risks and opportunities
- Provide personalized, evidence-based recommendations
- Generate realistic budget suggestions
- Assess financial health with scoring methodology

OUTPUT REQUIREMENTS:
- Return only valid JSON without explanations or markdown
- Use exact key names as specified
- Ensure all numeric values are properly formatted
- Categories must match predefined lists exactly
- Recommendations must be specific and actionable

ANALYSIS PRINCIPLES:
- Base insights on actual data patterns, not assumptions
- Consider seasonal variations and spending trends
- Prioritize high-impact, achievable recommendations
- Account for user's income-to-expense ratios
- Focus on sustainable financial habits

FINANCIAL CATEGORIES (use only these):
%s`, CategoryList())
}

// ComprehensiveInsights builds the full-analysis prompt over an expense
// window and the user's profile.
func ComprehensiveInsights(expensesJSON, profileJSON string, expenseCount, periodDays int) string {
	return fmt.Sprintf(`%s

Analyze the following user's financial data and provide comprehensive insights:

EXPENSE DATA (%d transactions over %d days):
%s

USER PROFILE:
%s

Provide analysis in this exact JSON format:
{
    "financial_summary": {
        "total_spending": 0,
        "average_daily_spending": 0,
        "total_transactions": 0,
        "analysis_period_days": %d
    },
    "spending_breakdown": {
        "category_analysis": {},
        "payment_mode_analysis": {}
    },
    "financial_health_score": {
        "overall_score": 0,
        "spending_discipline": 0,
        "budget_adherence": 0,
        "savings_rate": 0,
        "category_balance": 0
    },
    "key_insights": [],
    "personalized_recommendations": {
        "immediate_actions": [],
        "budget_optimizations": [],
        "savings_opportunities": []
    },
    "spending_alerts": [],
    "projected_monthly_budget": {}
}`, financialInsightsPrompt(), expenseCount, periodDays, expensesJSON, profileJSON, periodDays)
}

// SmartBudget builds the budget-plan prompt over a 60-day expense window and
// a target savings percentage.
func SmartBudget(expensesJSON, profileJSON string, savingsTarget float64) string {
	return fmt.Sprintf(`%s

Create a smart budget plan from the user's last 60 days of expenses and their profile, targeting %.1f%% savings of monthly income.

EXPENSE DATA (last 60 days):
%s

USER PROFILE:
%s

Provide the budget plan in this exact JSON format:
{
    "budget_overview": {
        "monthly_income": 0,
        "target_savings_percentage": %.1f,
        "target_savings_amount": 0,
        "available_for_spending": 0
    },
    "category_budgets": {
        "Food": {"recommended_amount": 0, "current_average": 0, "adjustment": "", "priority": ""}
    },
    "budget_strategy": {
        "approach": "",
        "key_focus_areas": [],
        "expected_savings": 0
    },
    "implementation_plan": [],
    "risk_assessment": {
        "feasibility_score": 0,
        "main_challenges": [],
        "success_factors": []
    }
}`, financialInsightsPrompt(), savingsTarget, expensesJSON, profileJSON, savingsTarget)
}

// AnomalyDetection builds the anomaly prompt comparing a recent 30-day window
// against a 90-day baseline.
func AnomalyDetection(recentJSON, baselineJSON string) string {
	return fmt.Sprintf(`%s

Compare the user's recent spending against their baseline and detect anomalies:

RECENT EXPENSES (last 30 days):
%s

BASELINE EXPENSES (last 90 days):
%s

Provide the anomaly analysis in this exact JSON format:
{
    "anomaly_summary": {
        "total_anomalies": 0,
        "risk_level": "low/medium/high",
        "total_excess_amount": 0
    },
    "detected_anomalies": [
        {"category": "", "description": "", "severity": "low/medium/high", "amount": 0}
    ],
    "spending_trends": {
        "overall_trend": "increasing/stable/decreasing",
        "category_trends": {}
    },
    "recommendations": []
}`, financialInsightsPrompt(), recentJSON, baselineJSON)
}
