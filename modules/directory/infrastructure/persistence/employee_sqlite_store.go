package persistence

import (
	"context"
	"database/sql"

	"github.com/jacksonlee411/career-planner/modules/directory/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/directory/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/storeerr"
)

type sqlBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type EmployeeSQLiteStore struct {
	db sqlBeginner
}

func NewEmployeeSQLiteStore(db sqlBeginner) ports.EmployeeStore {
	return &EmployeeSQLiteStore{db: db}
}

func (s *EmployeeSQLiteStore) AddEmployee(ctx context.Context, employeeCode string, fullName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO employees (employee_code, full_name)
	VALUES (?, ?)
	`, employeeCode, fullName); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}

func (s *EmployeeSQLiteStore) ListEmployees(ctx context.Context) ([]types.Employee, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
	SELECT id, employee_code, full_name
	FROM employees
	ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Employee
	for rows.Next() {
		var e types.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeCode, &e.FullName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeSQLiteStore) ListEmployeeOptions(ctx context.Context) ([]types.EmployeeOption, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
	SELECT id, full_name
	FROM employees
	ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.EmployeeOption
	for rows.Next() {
		var o types.EmployeeOption
		if err := rows.Scan(&o.ID, &o.FullName); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeSQLiteStore) DeleteEmployee(ctx context.Context, employeeID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Assignment history goes with the employee (ON DELETE CASCADE).
	if _, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, employeeID); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}
