package persistence

import (
	"context"
	"database/sql"

	"github.com/jacksonlee411/career-planner/modules/scenario/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/scenario/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/fiscal"
	"github.com/jacksonlee411/career-planner/pkg/storeerr"
)

type sqlBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type ScenarioSQLiteStore struct {
	db sqlBeginner
}

func NewScenarioSQLiteStore(db sqlBeginner) ports.ScenarioStore {
	return &ScenarioSQLiteStore{db: db}
}

func (s *ScenarioSQLiteStore) InsertQuarters(ctx context.Context, quarters []fiscal.Quarter) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range quarters {
		// INSERT OR IGNORE keeps seeding idempotent: an existing
		// (year, quarter) row is left untouched.
		if _, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO scenarios (name, year, quarter, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)
		`, q.Name, q.Year, q.Quarter, q.StartDate, q.EndDate); err != nil {
			return storeerr.FromSQLite(err)
		}
	}

	return tx.Commit()
}

func (s *ScenarioSQLiteStore) ListScenarios(ctx context.Context) ([]types.Scenario, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
	SELECT id, name, year, quarter, start_date, end_date
	FROM scenarios
	ORDER BY year, quarter
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Scenario
	for rows.Next() {
		var sc types.Scenario
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Year, &sc.Quarter, &sc.StartDate, &sc.EndDate); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ScenarioSQLiteStore) DeleteScenario(ctx context.Context, scenarioID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Positions of the scenario go with it (ON DELETE CASCADE); a miss is a
	// no-op, not an error.
	if _, err := tx.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, scenarioID); err != nil {
		return storeerr.FromSQLite(err)
	}

	return tx.Commit()
}
