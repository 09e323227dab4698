package ports

import (
	"context"

	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
)

type PositionStore interface {
	AddPosition(ctx context.Context, scenarioID int64, title string, department string, parentPositionID *int64) error
	ListPositions(ctx context.Context, scenarioID int64) ([]types.Position, error)
	ListPositionOptions(ctx context.Context, scenarioID int64) ([]types.PositionOption, error)
	DeletePosition(ctx context.Context, positionID int64) error
}
