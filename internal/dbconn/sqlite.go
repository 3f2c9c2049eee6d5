package dbconn

import (
	"context"
	"database/sql"
	"fmt"
	_ "modernc.org/sqlite"
)

// CreateSQLiteConnection opens the database file at path. SQLite allows a
// single writer, so the pool is capped at one connection.
func CreateSQLiteConnection(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	return db, nil
}
