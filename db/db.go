// Package db is the persistence adapter over the hosted Supabase Postgres
// store. One Store handle is constructed at process start and shared by every
// handler; pooling beyond database/sql's own is left to the driver.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/tohidkhanbagani/expense-tracker/logger"
)

type Store struct {
	db *sql.DB
}

// New wraps an already-open database handle. Used directly by tests.
func New(database *sql.DB) *Store {
	return &Store{db: database}
}

// Open connects to the Supabase Postgres instance and verifies the
// connection. A missing URL is a startup failure, not a degrade.
func Open(databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is not set")
	}

	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	logger.Get().Info("successfully connected to Supabase database")
	return &Store{db: database}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
