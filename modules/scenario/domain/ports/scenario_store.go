package ports

import (
	"context"

	"github.com/jacksonlee411/career-planner/modules/scenario/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/fiscal"
)

type ScenarioStore interface {
	InsertQuarters(ctx context.Context, quarters []fiscal.Quarter) error
	ListScenarios(ctx context.Context) ([]types.Scenario, error)
	DeleteScenario(ctx context.Context, scenarioID int64) error
}
