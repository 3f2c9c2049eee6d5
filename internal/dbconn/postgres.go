package dbconn

import (
	"context"
	"database/sql"
	"fmt"
	_ "github.com/lib/pq"
	"net/url"
	"time"
)

func PostgresConnectionString(host string, port string, user string, password string, dbname string, sslmode string) string {
	connURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%s", host, port),
		Path:     dbname,
		RawQuery: "sslmode=" + url.QueryEscape(sslmode),
	}
	return connURL.String()
}

func CreatePostgresConnection(ctx context.Context, host string, port string, user string, password string, dbname string, sslmode string) (*sql.DB, error) {
	db, err := sql.Open("postgres", PostgresConnectionString(host, port, user, password, dbname, sslmode))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
