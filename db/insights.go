package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// SaveFinancialInsights appends one generated analysis to the insights log.
// The log is append-only and unbounded; nothing ever evicts from it.
func (s *Store) SaveFinancialInsights(ctx context.Context, rec *models.InsightsRecord) error {
	query := `
		INSERT INTO financial_insights (user_id, insights_type, insights_data, generated_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		rec.UserID,
		rec.InsightsType,
		[]byte(rec.InsightsData),
		rec.GeneratedDate,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("error saving financial insights: %w", err)
	}

	return nil
}

// GetLatestInsights returns the most recent logged analysis for a user,
// optionally narrowed to one insights_type. Returns nil when the log has
// nothing for the user.
func (s *Store) GetLatestInsights(ctx context.Context, userID, insightsType string) (*models.InsightsRecord, error) {
	query := `
		SELECT id, user_id, insights_type, insights_data, generated_date
		FROM financial_insights
		WHERE user_id = $1
	`
	args := []any{userID}
	if insightsType != "" {
		query += ` AND insights_type = $2`
		args = append(args, insightsType)
	}
	query += `
		ORDER BY generated_date DESC
		LIMIT 1
	`

	rec := &models.InsightsRecord{}
	var data []byte
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.InsightsType,
		&data,
		&rec.GeneratedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching latest insights: %w", err)
	}
	rec.InsightsData = data

	return rec, nil
}
