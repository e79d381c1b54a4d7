package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open открывает (и при необходимости создаёт) SQLite-файл ledger
// и применяет схему.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}

	return db, nil
}

// initSchema создаёт таблицы ledger.
func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		country TEXT NOT NULL,
		scenario TEXT NOT NULL,
		r0 REAL NOT NULL,
		phase TEXT NOT NULL,
		read_only INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		peak_infected REAL NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT '',
		started_at DATETIME,
		finished_at DATETIME,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_country ON runs(country);
	`

	_, err := db.Exec(schema)
	return err
}
