package services

import (
	"context"
	"time"

	"github.com/jacksonlee411/career-planner/modules/scenario/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/scenario/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/fiscal"
)

type ScenarioService struct {
	store ports.ScenarioStore
	now   func() time.Time
}

func NewScenarioService(store ports.ScenarioStore) *ScenarioService {
	return &ScenarioService{store: store, now: time.Now}
}

// SeedQuarters inserts 4 quarterly scenarios for each of the given number of
// calendar years starting with the current one. Already-present
// (year, quarter) periods are left untouched.
func (s *ScenarioService) SeedQuarters(ctx context.Context, years int) error {
	quarters, err := fiscal.QuartersFrom(s.now().Year(), years)
	if err != nil {
		return err
	}
	return s.store.InsertQuarters(ctx, quarters)
}

func (s *ScenarioService) ListScenarios(ctx context.Context) ([]types.Scenario, error) {
	return s.store.ListScenarios(ctx)
}

func (s *ScenarioService) DeleteScenario(ctx context.Context, scenarioID int64) error {
	return s.store.DeleteScenario(ctx, scenarioID)
}
