package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the planning database at path and applies
// the schema. Foreign keys are enforced on every connection; WAL keeps reads
// from blocking the single writer.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		year INTEGER NOT NULL,
		quarter INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		UNIQUE(year, quarter)
	);

	CREATE TABLE IF NOT EXISTS positions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scenario_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		department TEXT NOT NULL,
		parent_position_id INTEGER,
		FOREIGN KEY (scenario_id) REFERENCES scenarios(id) ON DELETE CASCADE,
		FOREIGN KEY (parent_position_id) REFERENCES positions(id) ON DELETE SET NULL
	);

	CREATE INDEX IF NOT EXISTS idx_positions_scenario
		ON positions(scenario_id);

	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_code TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assignments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		position_id INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT,
		FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE,
		FOREIGN KEY (position_id) REFERENCES positions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_assignments_employee
		ON assignments(employee_id);
	CREATE INDEX IF NOT EXISTS idx_assignments_position
		ON assignments(position_id);
	`

	_, err := db.Exec(schema)
	return err
}
