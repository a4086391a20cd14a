package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

// InsertExpenses writes a batch of extracted expenses for a user in a single
// multi-row insert, stamping each row with the insert time. The batch
// succeeds or fails as a whole.
func (s *Store) InsertExpenses(ctx context.Context, userID string, expenses []models.ExtractedExpense) ([]models.Expense, error) {
	if len(expenses) == 0 {
		return []models.Expense{}, nil
	}

	now := time.Now()
	placeholders := make([]string, 0, len(expenses))
	args := make([]any, 0, len(expenses)*7)
	for i, e := range expenses {
		base := i * 7
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, userID, e.BillNo, e.Name, e.Amount, e.Category, e.Mode, now)
	}

	query := fmt.Sprintf(`
		INSERT INTO expenses (user_id, bill_no, expence_name, amount, category, mode, created_date)
		VALUES %s
		RETURNING id, user_id, bill_no, expence_name, amount, category, mode, created_date
	`, strings.Join(placeholders, ", "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error inserting expenses: %w", err)
	}
	defer rows.Close()

	inserted, err := scanExpenses(rows)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("inserted expenses",
		zap.String("user_id", userID),
		zap.Int("count", len(inserted)))
	return inserted, nil
}

// FetchUserExpenses returns the user's expenses from the last `days` days,
// newest first. Backend errors are swallowed into an empty result so the
// analytical endpoints degrade to "no data" instead of failing outright.
func (s *Store) FetchUserExpenses(ctx context.Context, userID string, days int) []models.Expense {
	threshold := time.Now().AddDate(0, 0, -days)

	query := `
		SELECT id, user_id, bill_no, expence_name, amount, category, mode, created_date
		FROM expenses
		WHERE user_id = $1 AND created_date >= $2
		ORDER BY created_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, threshold)
	if err != nil {
		logger.Get().Error("error fetching expenses",
			zap.String("user_id", userID),
			zap.Error(err))
		return []models.Expense{}
	}
	defer rows.Close()

	expenses, err := scanExpenses(rows)
	if err != nil {
		logger.Get().Error("error scanning expenses",
			zap.String("user_id", userID),
			zap.Error(err))
		return []models.Expense{}
	}

	return expenses
}

// GetExpenseSummary folds a fetched expense window into totals client-side;
// there is no database aggregate behind it.
func (s *Store) GetExpenseSummary(ctx context.Context, userID string, days int) models.ExpenseSummary {
	expenses := s.FetchUserExpenses(ctx, userID, days)
	return Summarize(expenses, days)
}

// Summarize is the fold backing GetExpenseSummary, split out so it can be
// checked against fixture expense lists.
func Summarize(expenses []models.Expense, days int) models.ExpenseSummary {
	summary := models.ExpenseSummary{
		Categories: map[string]models.CategorySummary{},
		PeriodDays: days,
	}

	for _, e := range expenses {
		summary.Total += e.Amount
		summary.Count++

		cat := summary.Categories[e.Category]
		cat.Amount += e.Amount
		cat.Count++
		summary.Categories[e.Category] = cat
	}

	return summary
}

func scanExpenses(rows *sql.Rows) ([]models.Expense, error) {
	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var billNo sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &billNo, &e.Name, &e.Amount, &e.Category, &e.Mode, &e.CreatedDate); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		if billNo.Valid {
			e.BillNo = &billNo.String
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}
