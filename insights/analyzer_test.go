package insights

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

type stubStore struct {
	expenses     []models.Expense
	profile      *models.UserProfile
	profileErr   error
	fetchCalls   int
	profileCalls int
}

func (s *stubStore) FetchUserExpenses(ctx context.Context, userID string, days int) []models.Expense {
	s.fetchCalls++
	return s.expenses
}

func (s *stubStore) FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	s.profileCalls++
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

type stubInvoker struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubInvoker) Invoke(ctx context.Context, p llm.Prompt) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, p.Text)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubSink struct {
	records []*models.InsightsRecord
}

func (s *stubSink) Submit(rec *models.InsightsRecord) {
	s.records = append(s.records, rec)
}

func fixtureExpenses() []models.Expense {
	return []models.Expense{
		{ID: "id-1", UserID: "user-1", Name: "Coffee", Amount: 4.5, Category: "Food", Mode: "card", CreatedDate: time.Now()},
		{ID: "id-2", UserID: "user-1", Name: "Bus", Amount: 2.0, Category: "Transport", Mode: "cash", CreatedDate: time.Now()},
	}
}

const insightsFixture = `{
	"financial_summary": {"total_spending": 6.5, "average_daily_spending": 0.22, "total_transactions": 2, "analysis_period_days": 30},
	"financial_health_score": {"overall_score": 72},
	"key_insights": ["Food dominates spending"]
}`

func TestComprehensiveInsights(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses()}
	invoker := &stubInvoker{response: "```json\n" + insightsFixture + "\n```"}
	sink := &stubSink{}

	analyzer := New(store, invoker, sink)
	report, err := analyzer.ComprehensiveInsights(context.Background(), "user-1", 30)
	require.NoError(t, err)

	assert.Equal(t, 6.5, report.FinancialSummary.TotalSpending)
	assert.Equal(t, 72.0, report.FinancialHealthScore.OverallScore)
	assert.Equal(t, "user-1", report.UserID)
	assert.NotEmpty(t, report.GeneratedAt)

	require.Len(t, sink.records, 1)
	assert.Equal(t, TypeComprehensive, sink.records[0].InsightsType)
	assert.True(t, json.Valid(sink.records[0].InsightsData))
}

func TestComprehensiveInsightsNoData(t *testing.T) {
	store := &stubStore{}
	invoker := &stubInvoker{}

	analyzer := New(store, invoker, nil)
	_, err := analyzer.ComprehensiveInsights(context.Background(), "user-1", 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExpenseData)
	assert.Zero(t, invoker.calls, "no model call when there is nothing to analyze")
}

func TestComprehensiveInsightsMissingProfile(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses(), profileErr: errors.New("profile missing")}
	invoker := &stubInvoker{response: insightsFixture}

	analyzer := New(store, invoker, nil)
	_, err := analyzer.ComprehensiveInsights(context.Background(), "user-1", 30)
	require.NoError(t, err, "a missing profile is not an error")
	require.Len(t, invoker.prompts, 1)
	assert.Contains(t, invoker.prompts[0], "{}", "prompt falls back to an empty profile object")
}

func TestComprehensiveInsightsMalformedModelOutput(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses()}
	invoker := &stubInvoker{response: "I cannot analyze this."}
	sink := &stubSink{}

	analyzer := New(store, invoker, sink)
	_, err := analyzer.ComprehensiveInsights(context.Background(), "user-1", 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrMalformedOutput)
	assert.Empty(t, sink.records, "failed analyses are not persisted")
}

func TestSmartBudget(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses()}
	invoker := &stubInvoker{response: `{
		"budget_overview": {"monthly_income": 5000, "target_savings_percentage": 20},
		"implementation_plan": ["Track groceries weekly"]
	}`}
	sink := &stubSink{}

	analyzer := New(store, invoker, sink)
	plan, err := analyzer.SmartBudget(context.Background(), "user-1", 20.0)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, plan.BudgetOverview.MonthlyIncome)
	assert.Equal(t, 20.0, plan.BudgetOverview.TargetSavingsPercentage)
	require.Len(t, sink.records, 1)
	assert.Equal(t, TypeBudget, sink.records[0].InsightsType)
}

func TestDetectAnomaliesRequiresBaseline(t *testing.T) {
	store := &stubStore{}
	invoker := &stubInvoker{}

	analyzer := New(store, invoker, nil)
	_, err := analyzer.DetectAnomalies(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExpenseData)
	assert.Zero(t, invoker.calls)
}

func TestDetectAnomalies(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses()}
	invoker := &stubInvoker{response: `{
		"anomaly_summary": {"total_anomalies": 1, "risk_level": "medium", "total_excess_amount": 40},
		"detected_anomalies": [{"category": "Food", "description": "Spike in dining", "severity": "medium", "amount": 40}]
	}`}

	analyzer := New(store, invoker, nil)
	report, err := analyzer.DetectAnomalies(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, report.AnomalySummary.TotalAnomalies)
	require.Len(t, report.DetectedAnomalies, 1)
	assert.Equal(t, "Food", report.DetectedAnomalies[0].Category)
}

func TestReportRejectsUnknownTypeBeforeAnyCall(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses()}
	invoker := &stubInvoker{}

	analyzer := New(store, invoker, nil)
	_, err := analyzer.Report(context.Background(), "user-1", "yearly")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReportType)
	assert.Zero(t, store.fetchCalls, "no data fetch for a rejected report type")
	assert.Zero(t, invoker.calls, "no model call for a rejected report type")
}

func TestReportPeriods(t *testing.T) {
	assert.Equal(t, 7, reportPeriods["weekly"])
	assert.Equal(t, 30, reportPeriods["monthly"])
	assert.Equal(t, 90, reportPeriods["quarterly"])
}

func TestReportCombinesAllThree(t *testing.T) {
	store := &stubStore{expenses: fixtureExpenses()}
	invoker := &stubInvoker{response: `{}`}
	sink := &stubSink{}

	analyzer := New(store, invoker, sink)
	report, err := analyzer.Report(context.Background(), "user-1", "weekly")
	require.NoError(t, err)

	assert.Equal(t, "weekly", report.ReportType)
	assert.Equal(t, 7, report.PeriodDays)
	require.NotNil(t, report.Insights)
	require.NotNil(t, report.Budget)
	require.NotNil(t, report.Anomalies)
	assert.Equal(t, 3, invoker.calls, "one model call per section")

	// Each section logs under its own type, then the envelope itself.
	require.Len(t, sink.records, 4)
	assert.Equal(t, TypeComprehensive, sink.records[0].InsightsType)
	assert.Equal(t, TypeBudget, sink.records[1].InsightsType)
	assert.Equal(t, TypeAnomaly, sink.records[2].InsightsType)
	assert.Equal(t, TypeReport, sink.records[3].InsightsType)
}
