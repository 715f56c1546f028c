package util

import (
	"database/sql"
	"fmt"
	"os"
)

// NewTestDb connects to the local postgres instance used by
// db-dependent tests. Tests that call this should skip when the
// instance isn't reachable.
func NewTestDb() (*sql.DB, error) {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	connStr := fmt.Sprintf("user=postgres password=postgres host=%s port=5438 dbname=postgres_test sslmode=disable", host)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test db: %w", err)
	}

	return db, nil
}
