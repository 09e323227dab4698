package sqlitedb

import (
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	t.Run("creates schema", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "career_planning.db"))
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		defer db.Close()

		for _, table := range []string{"scenarios", "positions", "employees", "assignments"} {
			var name string
			err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
			if err != nil {
				t.Fatalf("table %s: %v", table, err)
			}
		}
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "career_planning.db")
		db, err := Open(path)
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		defer db.Close()
	})

	t.Run("reopen is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "career_planning.db")
		db, err := Open(path)
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		db.Close()

		db, err = Open(path)
		if err != nil {
			t.Fatalf("reopen err=%v", err)
		}
		defer db.Close()
	})

	t.Run("foreign keys enforced", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "career_planning.db"))
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		defer db.Close()

		_, err = db.Exec(`INSERT INTO positions (scenario_id, title, department) VALUES (999, 'CTO', 'Tech')`)
		if err == nil {
			t.Fatal("expected foreign key violation")
		}
	})
}
