package models

import "time"

// UserProfile holds the financial profile used to ground insight prompts.
// One row per user_id, upserted.
type UserProfile struct {
	UserID         string    `json:"user_id"`
	MonthlyIncome  float64   `json:"monthly_income"`
	SavingsGoal    float64   `json:"savings_goal"`
	CurrentSavings float64   `json:"current_savings"`
	DebtAmount     float64   `json:"debt_amount"`
	FinancialGoals string    `json:"financial_goals"`
	CreatedDate    time.Time `json:"created_date"`
	UpdatedDate    time.Time `json:"updated_date"`
}

// ProfileUpdate carries the writable profile fields for an upsert.
type ProfileUpdate struct {
	MonthlyIncome  float64 `json:"monthly_income"`
	SavingsGoal    float64 `json:"savings_goal"`
	CurrentSavings float64 `json:"current_savings"`
	DebtAmount     float64 `json:"debt_amount"`
	FinancialGoals string  `json:"financial_goals"`
}
