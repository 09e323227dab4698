package persistence

import (
	"context"
	"database/sql"

	"github.com/jacksonlee411/career-planner/modules/staffing/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/staffing/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/storeerr"
)

type sqlBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type AssignmentSQLiteStore struct {
	db sqlBeginner
}

func NewAssignmentSQLiteStore(db sqlBeginner) ports.AssignmentStore {
	return &AssignmentSQLiteStore{db: db}
}

func (s *AssignmentSQLiteStore) ListAssignments(ctx context.Context, scenarioID int64) ([]types.Assignment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
	SELECT a.id, a.employee_id, a.position_id, a.start_date, a.end_date
	FROM assignments a
	JOIN positions p ON a.position_id = p.id
	WHERE p.scenario_id = ?
	ORDER BY a.start_date DESC
	`, scenarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Assignment
	for rows.Next() {
		var a types.Assignment
		var end sql.NullString
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.PositionID, &a.StartDate, &end); err != nil {
			return nil, err
		}
		if end.Valid {
			a.EndDate = &end.String
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// MoveEmployee closes the employee's open assignment (all of them, should the
// invariant ever have been broken) and opens a new one at the target
// position. Both steps share one transaction: a failure on either side leaves
// the ledger untouched.
func (s *AssignmentSQLiteStore) MoveEmployee(ctx context.Context, employeeID int64, newPositionID int64, startDate string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	UPDATE assignments
	SET end_date = ?
	WHERE employee_id = ? AND end_date IS NULL
	`, startDate, employeeID); err != nil {
		return storeerr.FromSQLite(err)
	}

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO assignments (employee_id, position_id, start_date, end_date)
	VALUES (?, ?, ?, NULL)
	`, employeeID, newPositionID, startDate); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}

// DeleteAssignment removes the row unconditionally. It never reopens a
// previously closed assignment; an employee left with no open assignment is
// acceptable.
func (s *AssignmentSQLiteStore) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, assignmentID); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}
