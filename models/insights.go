package models

import (
	"encoding/json"
	"time"
)

// InsightsRecord is one row in the append-only financial_insights log.
type InsightsRecord struct {
	ID            string          `json:"id,omitempty"`
	UserID        string          `json:"user_id"`
	InsightsType  string          `json:"insights_type"`
	InsightsData  json.RawMessage `json:"insights_data"`
	GeneratedDate time.Time       `json:"generated_date"`
}

// The structs below are the output contracts for the analysis prompts. The
// same skeletons are embedded as literal JSON in the prompt text; the model
// is expected to return isomorphic JSON, and the decoded output is validated
// against these types rather than trusted shapeless.

type FinancialSummary struct {
	TotalSpending        float64 `json:"total_spending"`
	AverageDailySpending float64 `json:"average_daily_spending"`
	TotalTransactions    int     `json:"total_transactions"`
	AnalysisPeriodDays   int     `json:"analysis_period_days"`
}

type SpendingBreakdown struct {
	CategoryAnalysis    map[string]json.RawMessage `json:"category_analysis"`
	PaymentModeAnalysis map[string]json.RawMessage `json:"payment_mode_analysis"`
}

type FinancialHealthScore struct {
	OverallScore       float64 `json:"overall_score"`
	SpendingDiscipline float64 `json:"spending_discipline"`
	BudgetAdherence    float64 `json:"budget_adherence"`
	SavingsRate        float64 `json:"savings_rate"`
	CategoryBalance    float64 `json:"category_balance"`
}

type Recommendations struct {
	ImmediateActions     []string `json:"immediate_actions"`
	BudgetOptimizations  []string `json:"budget_optimizations"`
	SavingsOpportunities []string `json:"savings_opportunities"`
}

// InsightsReport is the comprehensive-insights result.
type InsightsReport struct {
	FinancialSummary            FinancialSummary     `json:"financial_summary"`
	SpendingBreakdown           SpendingBreakdown    `json:"spending_breakdown"`
	FinancialHealthScore        FinancialHealthScore `json:"financial_health_score"`
	KeyInsights                 []string             `json:"key_insights"`
	PersonalizedRecommendations Recommendations      `json:"personalized_recommendations"`
	SpendingAlerts              []json.RawMessage    `json:"spending_alerts"`
	ProjectedMonthlyBudget      json.RawMessage      `json:"projected_monthly_budget"`
	UserID                      string               `json:"user_id,omitempty"`
	GeneratedAt                 string               `json:"generated_at,omitempty"`
}

type BudgetOverview struct {
	MonthlyIncome           float64 `json:"monthly_income"`
	TargetSavingsPercentage float64 `json:"target_savings_percentage"`
	TargetSavingsAmount     float64 `json:"target_savings_amount"`
	AvailableForSpending    float64 `json:"available_for_spending"`
}

type CategoryBudget struct {
	RecommendedAmount float64 `json:"recommended_amount"`
	CurrentAverage    float64 `json:"current_average"`
	Adjustment        string  `json:"adjustment"`
	Priority          string  `json:"priority"`
}

type BudgetStrategy struct {
	Approach        string   `json:"approach"`
	KeyFocusAreas   []string `json:"key_focus_areas"`
	ExpectedSavings float64  `json:"expected_savings"`
}

type RiskAssessment struct {
	FeasibilityScore float64  `json:"feasibility_score"`
	MainChallenges   []string `json:"main_challenges"`
	SuccessFactors   []string `json:"success_factors"`
}

// BudgetPlan is the smart-budget result.
type BudgetPlan struct {
	BudgetOverview     BudgetOverview            `json:"budget_overview"`
	CategoryBudgets    map[string]CategoryBudget `json:"category_budgets"`
	BudgetStrategy     BudgetStrategy            `json:"budget_strategy"`
	ImplementationPlan []string                  `json:"implementation_plan"`
	RiskAssessment     RiskAssessment            `json:"risk_assessment"`
	UserID             string                    `json:"user_id,omitempty"`
	GeneratedAt        string                    `json:"generated_at,omitempty"`
}

type AnomalySummary struct {
	TotalAnomalies    int     `json:"total_anomalies"`
	RiskLevel         string  `json:"risk_level"`
	TotalExcessAmount float64 `json:"total_excess_amount"`
}

type DetectedAnomaly struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Amount      float64 `json:"amount"`
}

type SpendingTrends struct {
	OverallTrend   string            `json:"overall_trend"`
	CategoryTrends map[string]string `json:"category_trends"`
}

// AnomalyReport is the anomaly-detection result over the 30d vs 90d windows.
type AnomalyReport struct {
	AnomalySummary    AnomalySummary    `json:"anomaly_summary"`
	DetectedAnomalies []DetectedAnomaly `json:"detected_anomalies"`
	SpendingTrends    SpendingTrends    `json:"spending_trends"`
	Recommendations   []string          `json:"recommendations"`
	UserID            string            `json:"user_id,omitempty"`
	GeneratedAt       string            `json:"generated_at,omitempty"`
}

// CombinedReport is the envelope for the report endpoint.
type CombinedReport struct {
	ReportType  string          `json:"report_type"`
	PeriodDays  int             `json:"period_days"`
	UserID      string          `json:"user_id"`
	GeneratedAt string          `json:"generated_at"`
	Insights    *InsightsReport `json:"insights"`
	Budget      *BudgetPlan     `json:"budget"`
	Anomalies   *AnomalyReport  `json:"anomalies"`
}
