package persistence

import (
	"context"
	"database/sql"

	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/storeerr"
)

type sqlBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type PositionSQLiteStore struct {
	db sqlBeginner
}

func NewPositionSQLiteStore(db sqlBeginner) ports.PositionStore {
	return &PositionSQLiteStore{db: db}
}

func (s *PositionSQLiteStore) AddPosition(ctx context.Context, scenarioID int64, title string, department string, parentPositionID *int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var parent any
	if parentPositionID != nil {
		parent = *parentPositionID
	}

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO positions (scenario_id, title, department, parent_position_id)
	VALUES (?, ?, ?, ?)
	`, scenarioID, title, department, parent); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}

func (s *PositionSQLiteStore) ListPositions(ctx context.Context, scenarioID int64) ([]types.Position, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
	SELECT id, scenario_id, title, department, parent_position_id
	FROM positions
	WHERE scenario_id = ?
	ORDER BY department, title
	`, scenarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Position
	for rows.Next() {
		var p types.Position
		var parent sql.NullInt64
		if err := rows.Scan(&p.ID, &p.ScenarioID, &p.Title, &p.Department, &parent); err != nil {
			return nil, err
		}
		if parent.Valid {
			p.ParentPositionID = &parent.Int64
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PositionSQLiteStore) ListPositionOptions(ctx context.Context, scenarioID int64) ([]types.PositionOption, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
	SELECT id, title
	FROM positions
	WHERE scenario_id = ?
	ORDER BY title
	`, scenarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.PositionOption
	for rows.Next() {
		var o types.PositionOption
		if err := rows.Scan(&o.ID, &o.Title); err != nil {
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

func (s *PositionSQLiteStore) DeletePosition(ctx context.Context, positionID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Children are orphaned to roots (ON DELETE SET NULL); assignments
	// referencing the position are removed (ON DELETE CASCADE).
	if _, err := tx.ExecContext(ctx, `DELETE FROM positions WHERE id = ?`, positionID); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}
