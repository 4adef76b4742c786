package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the single-file SQLite store at path and verifies the
// connection.  The store is owned by exactly one process; the busy timeout
// covers the brief write lock SQLite takes for each mutating statement.
func Open(path string) (*sql.DB, error) {
	// _busy_timeout -> wait instead of failing on a locked file
	// _foreign_keys -> enforce declared references (off by default in SQLite)
	dsn := "file:" + path + "?_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; funneling every statement through one
	// connection avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the application's table on first startup.  The DDL
// uses IF NOT EXISTS so the call is idempotent across restarts.  Schema
// incompatibilities surface as errors from the first query that hits them;
// there is no migration path.
func EnsureSchema(db *sql.DB, ddl string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := db.ExecContext(ctx, ddl)
	return err
}
