// Package insights generates model-backed financial analyses over a user's
// stored expense history: comprehensive insights, smart budgets, anomaly
// detection, and the combined report that wraps all three.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/models"
	"github.com/tohidkhanbagani/expense-tracker/prompts"
)

// ErrNoExpenseData signals that the user has nothing to analyze in the
// requested window. Handlers translate it to 404.
var ErrNoExpenseData = errors.New("no expense data found for user")

// ErrInvalidReportType rejects report types outside weekly/monthly/quarterly.
var ErrInvalidReportType = errors.New("report_type must be weekly, monthly or quarterly")

// Analysis window sizes, in days, per report type.
var reportPeriods = map[string]int{
	"weekly":    7,
	"monthly":   30,
	"quarterly": 90,
}

// Insight type tags used in the financial_insights log.
const (
	TypeComprehensive = "comprehensive"
	TypeBudget        = "budget"
	TypeAnomaly       = "anomaly"
	TypeReport        = "report"
)

// Store is the expense/profile read surface the analyzer needs.
type Store interface {
	FetchUserExpenses(ctx context.Context, userID string, days int) []models.Expense
	FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// Invoker is the single opaque model call.
type Invoker interface {
	Invoke(ctx context.Context, p llm.Prompt) (string, error)
}

// Sink receives generated analyses for asynchronous persistence.
type Sink interface {
	Submit(rec *models.InsightsRecord)
}

type Analyzer struct {
	store Store
	llm   Invoker
	sink  Sink
}

// New wires the analyzer. sink may be nil, in which case generated analyses
// are not persisted.
func New(store Store, invoker Invoker, sink Sink) *Analyzer {
	return &Analyzer{store: store, llm: invoker, sink: sink}
}

// ComprehensiveInsights analyzes the user's expenses over the given period
// together with their profile.
func (a *Analyzer) ComprehensiveInsights(ctx context.Context, userID string, periodDays int) (*models.InsightsReport, error) {
	expenses := a.store.FetchUserExpenses(ctx, userID, periodDays)
	if len(expenses) == 0 {
		return nil, ErrNoExpenseData
	}

	expensesJSON, profileJSON, err := a.marshalContext(ctx, userID, expenses)
	if err != nil {
		return nil, err
	}

	prompt := prompts.ComprehensiveInsights(expensesJSON, profileJSON, len(expenses), periodDays)
	raw, err := a.llm.Invoke(ctx, llm.Prompt{Text: prompt})
	if err != nil {
		return nil, err
	}

	report := &models.InsightsReport{}
	if err := llm.ParseJSON(raw, report); err != nil {
		return nil, err
	}
	report.UserID = userID
	report.GeneratedAt = time.Now().Format(time.RFC3339)

	a.persist(userID, TypeComprehensive, report)
	return report, nil
}

// SmartBudget builds a budget plan from the user's last 60 days of expenses
// and a target savings percentage.
func (a *Analyzer) SmartBudget(ctx context.Context, userID string, savingsTarget float64) (*models.BudgetPlan, error) {
	expenses := a.store.FetchUserExpenses(ctx, userID, 60)
	if len(expenses) == 0 {
		return nil, ErrNoExpenseData
	}

	expensesJSON, profileJSON, err := a.marshalContext(ctx, userID, expenses)
	if err != nil {
		return nil, err
	}

	prompt := prompts.SmartBudget(expensesJSON, profileJSON, savingsTarget)
	raw, err := a.llm.Invoke(ctx, llm.Prompt{Text: prompt})
	if err != nil {
		return nil, err
	}

	plan := &models.BudgetPlan{}
	if err := llm.ParseJSON(raw, plan); err != nil {
		return nil, err
	}
	plan.UserID = userID
	plan.GeneratedAt = time.Now().Format(time.RFC3339)

	a.persist(userID, TypeBudget, plan)
	return plan, nil
}

// DetectAnomalies compares the user's last 30 days against a 90-day baseline.
func (a *Analyzer) DetectAnomalies(ctx context.Context, userID string) (*models.AnomalyReport, error) {
	baseline := a.store.FetchUserExpenses(ctx, userID, 90)
	if len(baseline) == 0 {
		return nil, ErrNoExpenseData
	}
	recent := a.store.FetchUserExpenses(ctx, userID, 30)

	recentJSON, err := marshalExpenses(recent)
	if err != nil {
		return nil, err
	}
	baselineJSON, err := marshalExpenses(baseline)
	if err != nil {
		return nil, err
	}

	prompt := prompts.AnomalyDetection(recentJSON, baselineJSON)
	raw, err := a.llm.Invoke(ctx, llm.Prompt{Text: prompt})
	if err != nil {
		return nil, err
	}

	report := &models.AnomalyReport{}
	if err := llm.ParseJSON(raw, report); err != nil {
		return nil, err
	}
	report.UserID = userID
	report.GeneratedAt = time.Now().Format(time.RFC3339)

	a.persist(userID, TypeAnomaly, report)
	return report, nil
}

// Report validates the report type before any model or database call, then
// combines insights, budget, and anomalies into one envelope.
func (a *Analyzer) Report(ctx context.Context, userID, reportType string) (*models.CombinedReport, error) {
	periodDays, ok := reportPeriods[reportType]
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidReportType, reportType)
	}

	insightsReport, err := a.ComprehensiveInsights(ctx, userID, periodDays)
	if err != nil {
		return nil, err
	}

	budget, err := a.SmartBudget(ctx, userID, 20.0)
	if err != nil {
		return nil, err
	}

	anomalies, err := a.DetectAnomalies(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &models.CombinedReport{
		ReportType:  reportType,
		PeriodDays:  periodDays,
		UserID:      userID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Insights:    insightsReport,
		Budget:      budget,
		Anomalies:   anomalies,
	}

	a.persist(userID, TypeReport, report)
	return report, nil
}

// marshalContext renders the expense window and profile as the JSON blocks
// the prompts embed. A missing profile becomes an empty object, not an error.
func (a *Analyzer) marshalContext(ctx context.Context, userID string, expenses []models.Expense) (string, string, error) {
	expensesJSON, err := marshalExpenses(expenses)
	if err != nil {
		return "", "", err
	}

	profileJSON := "{}"
	profile, err := a.store.FetchUserProfile(ctx, userID)
	if err == nil {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return "", "", fmt.Errorf("error marshaling profile: %w", err)
		}
		profileJSON = string(data)
	}

	return expensesJSON, profileJSON, nil
}

func marshalExpenses(expenses []models.Expense) (string, error) {
	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling expenses: %w", err)
	}
	return string(data), nil
}

func (a *Analyzer) persist(userID, insightsType string, result any) {
	if a.sink == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("failed to marshal insights for persistence",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}

	a.sink.Submit(&models.InsightsRecord{
		UserID:        userID,
		InsightsType:  insightsType,
		InsightsData:  data,
		GeneratedDate: time.Now(),
	})
}
