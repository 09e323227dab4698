package persistence

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jacksonlee411/career-planner/internal/sqlitedb"
	"github.com/jacksonlee411/career-planner/pkg/storeerr"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "career_planning.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEmployeeSQLiteStore_AddEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list", func(t *testing.T) {
		db := newTestDB(t)
		store := NewEmployeeSQLiteStore(db)

		if err := store.AddEmployee(ctx, "E001", "Ada Lovelace"); err != nil {
			t.Fatalf("add: %v", err)
		}
		employees, err := store.ListEmployees(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(employees) != 1 || employees[0].EmployeeCode != "E001" || employees[0].FullName != "Ada Lovelace" {
			t.Fatalf("employees=%+v", employees)
		}
	})

	t.Run("duplicate code is a constraint violation", func(t *testing.T) {
		db := newTestDB(t)
		store := NewEmployeeSQLiteStore(db)

		if err := store.AddEmployee(ctx, "E001", "Ada Lovelace"); err != nil {
			t.Fatalf("add: %v", err)
		}
		err := store.AddEmployee(ctx, "E001", "Grace Hopper")
		if !storeerr.IsConstraintViolation(err) {
			t.Fatalf("err=%v", err)
		}
	})
}

func TestEmployeeSQLiteStore_ListEmployees(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewEmployeeSQLiteStore(db)

	for _, e := range [][2]string{
		{"E003", "Grace Hopper"},
		{"E001", "Ada Lovelace"},
		{"E002", "Edsger Dijkstra"},
	} {
		if err := store.AddEmployee(ctx, e[0], e[1]); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	employees, err := store.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Ada Lovelace", "Edsger Dijkstra", "Grace Hopper"}
	for i, name := range want {
		if employees[i].FullName != name {
			t.Fatalf("employees[%d]=%q want %q", i, employees[i].FullName, name)
		}
	}

	options, err := store.ListEmployeeOptions(ctx)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(options) != 3 || options[0].FullName != "Ada Lovelace" {
		t.Fatalf("options=%+v", options)
	}
}

func TestEmployeeSQLiteStore_DeleteEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to assignments", func(t *testing.T) {
		db := newTestDB(t)
		store := NewEmployeeSQLiteStore(db)

		if err := store.AddEmployee(ctx, "E001", "Ada Lovelace"); err != nil {
			t.Fatalf("add: %v", err)
		}
		employees, _ := store.ListEmployees(ctx)
		employeeID := employees[0].ID

		if _, err := db.Exec(`
		INSERT INTO scenarios (name, year, quarter, start_date, end_date)
		VALUES ('FY2024 Q1', 2024, 1, '2024-01-01', '2024-04-01')
		`); err != nil {
			t.Fatalf("insert scenario: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO positions (scenario_id, title, department) VALUES (1, 'CTO', 'Tech')`); err != nil {
			t.Fatalf("insert position: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO assignments (employee_id, position_id, start_date) VALUES (?, 1, '2024-01-01')`, employeeID); err != nil {
			t.Fatalf("insert assignment: %v", err)
		}

		if err := store.DeleteEmployee(ctx, employeeID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM assignments`).Scan(&count); err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != 0 {
			t.Fatalf("assignments remaining=%d", count)
		}
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		db := newTestDB(t)
		store := NewEmployeeSQLiteStore(db)
		if err := store.DeleteEmployee(ctx, 12345); err != nil {
			t.Fatalf("err=%v", err)
		}
	})
}
