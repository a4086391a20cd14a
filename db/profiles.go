package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// ErrProfileNotFound signals "no profile yet" for a user_id.
var ErrProfileNotFound = errors.New("user profile not found")

// FetchUserProfile returns the user's profile, or ErrProfileNotFound.
func (s *Store) FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `
		SELECT user_id, monthly_income, savings_goal, current_savings, debt_amount, financial_goals, created_date, updated_date
		FROM user_profiles
		WHERE user_id = $1
	`

	profile := &models.UserProfile{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.MonthlyIncome,
		&profile.SavingsGoal,
		&profile.CurrentSavings,
		&profile.DebtAmount,
		&profile.FinancialGoals,
		&profile.CreatedDate,
		&profile.UpdatedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error fetching user profile: %w", err)
	}

	return profile, nil
}

// UpsertUserProfile inserts or updates the user's profile in one conditional
// write. The single statement replaces the old fetch-then-write sequence, so
// two concurrent upserts for the same user can no longer race into duplicate
// rows or a lost update; created_date survives updates, updated_date is
// restamped every time.
func (s *Store) UpsertUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.UserProfile, error) {
	now := time.Now()

	query := `
		INSERT INTO user_profiles (user_id, monthly_income, savings_goal, current_savings, debt_amount, financial_goals, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			monthly_income = EXCLUDED.monthly_income,
			savings_goal = EXCLUDED.savings_goal,
			current_savings = EXCLUDED.current_savings,
			debt_amount = EXCLUDED.debt_amount,
			financial_goals = EXCLUDED.financial_goals,
			updated_date = EXCLUDED.updated_date
		RETURNING user_id, monthly_income, savings_goal, current_savings, debt_amount, financial_goals, created_date, updated_date
	`

	profile := &models.UserProfile{}
	err := s.db.QueryRowContext(ctx, query,
		userID,
		update.MonthlyIncome,
		update.SavingsGoal,
		update.CurrentSavings,
		update.DebtAmount,
		update.FinancialGoals,
		now,
	).Scan(
		&profile.UserID,
		&profile.MonthlyIncome,
		&profile.SavingsGoal,
		&profile.CurrentSavings,
		&profile.DebtAmount,
		&profile.FinancialGoals,
		&profile.CreatedDate,
		&profile.UpdatedDate,
	)
	if err != nil {
		return nil, fmt.Errorf("error upserting user profile: %w", err)
	}

	return profile, nil
}
