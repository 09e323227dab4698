package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/jacksonlee411/career-planner/internal/config"
	"github.com/jacksonlee411/career-planner/internal/server"
	"github.com/jacksonlee411/career-planner/internal/sqlitedb"
	directorypersistence "github.com/jacksonlee411/career-planner/modules/directory/infrastructure/persistence"
	orgchartpersistence "github.com/jacksonlee411/career-planner/modules/orgchart/infrastructure/persistence"
	scenariopersistence "github.com/jacksonlee411/career-planner/modules/scenario/infrastructure/persistence"
	scenarioservices "github.com/jacksonlee411/career-planner/modules/scenario/services"
	staffingpersistence "github.com/jacksonlee411/career-planner/modules/staffing/infrastructure/persistence"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	db, err := sqlitedb.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer func() { _ = db.Close() }()

	scenarioStore := scenariopersistence.NewScenarioSQLiteStore(db)

	scenarios := scenarioservices.NewScenarioService(scenarioStore)
	if err := scenarios.SeedQuarters(context.Background(), cfg.SeedYears); err != nil {
		logger.Fatal().Err(err).Msg("seed scenarios")
	}

	h, err := server.NewHandler(server.HandlerOptions{
		ScenarioStore:   scenarioStore,
		PositionStore:   orgchartpersistence.NewPositionSQLiteStore(db),
		EmployeeStore:   directorypersistence.NewEmployeeSQLiteStore(db),
		AssignmentStore: staffingpersistence.NewAssignmentSQLiteStore(db),
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("build handler")
	}

	logger.Info().Str("addr", cfg.HTTPAddr).Str("db", cfg.DBPath).Msg("listening")
	if err := http.ListenAndServe(cfg.HTTPAddr, h); err != nil {
		logger.Fatal().Err(err).Msg("serve")
	}
}
