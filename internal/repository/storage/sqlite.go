package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

const sqliteOptions = "?_busy_timeout=5000&_journal_mode=WAL"

type Storage struct {
	Connection *sql.DB
}

// NewSQLiteStorage - opens the database file, creating its directory when needed.
func NewSQLiteStorage(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("can't create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path+sqliteOptions)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS tournament_entries (
		tournament_id  TEXT    NOT NULL,
		player_address TEXT    NOT NULL,
		game_id        TEXT    NOT NULL,
		score          INTEGER NOT NULL,
		winner         TEXT    NOT NULL,
		turn_log_cid   TEXT    NOT NULL,
		recorded_at    INTEGER NOT NULL,
		PRIMARY KEY (tournament_id, player_address)
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
