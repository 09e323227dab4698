package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jacksonlee411/career-planner/internal/sqlitedb"
	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
	orgchartpersistence "github.com/jacksonlee411/career-planner/modules/orgchart/infrastructure/persistence"
	orgchartservices "github.com/jacksonlee411/career-planner/modules/orgchart/services"
	scenariopersistence "github.com/jacksonlee411/career-planner/modules/scenario/infrastructure/persistence"
	scenarioservices "github.com/jacksonlee411/career-planner/modules/scenario/services"
)

func main() {
	if len(os.Args) < 2 {
		fatalf("usage: dbtool <seed|scenarios|chart> [args]")
	}

	switch os.Args[1] {
	case "seed":
		seed(os.Args[2:])
	case "scenarios":
		scenarios(os.Args[2:])
	case "chart":
		chart(os.Args[2:])
	default:
		fatalf("unknown subcommand: %s", os.Args[1])
	}
}

func seed(args []string) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var dbPath string
	var years int
	fs.StringVar(&dbPath, "db", "career_planning.db", "database file")
	fs.IntVar(&years, "years", 3, "calendar years to seed, starting with the current one")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlitedb.Open(dbPath)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = db.Close() }()

	svc := scenarioservices.NewScenarioService(scenariopersistence.NewScenarioSQLiteStore(db))
	if err := svc.SeedQuarters(ctx, years); err != nil {
		fatal(err)
	}

	list, err := svc.ListScenarios(ctx)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("seeded; %d scenarios present\n", len(list))
}

func scenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var dbPath string
	fs.StringVar(&dbPath, "db", "career_planning.db", "database file")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlitedb.Open(dbPath)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = db.Close() }()

	svc := scenarioservices.NewScenarioService(scenariopersistence.NewScenarioSQLiteStore(db))
	list, err := svc.ListScenarios(ctx)
	if err != nil {
		fatal(err)
	}
	for _, s := range list {
		fmt.Printf("%d\t%s\t%s..%s\n", s.ID, s.Name, s.StartDate, s.EndDate)
	}
}

func chart(args []string) {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var dbPath, root string
	var scenarioID int64
	fs.StringVar(&dbPath, "db", "career_planning.db", "database file")
	fs.Int64Var(&scenarioID, "scenario", 0, "scenario id")
	fs.StringVar(&root, "root", "", "root position title (empty for the full chart)")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	if scenarioID == 0 {
		fatalf("missing --scenario")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlitedb.Open(dbPath)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = db.Close() }()

	store := orgchartpersistence.NewPositionSQLiteStore(db)
	positions, err := store.ListPositions(ctx, scenarioID)
	if err != nil {
		fatal(err)
	}
	forest, err := orgchartservices.BuildForest(positions, root)
	if err != nil {
		fatal(err)
	}
	for _, node := range forest {
		printNode(node, 0)
	}
}

func printNode(node types.TreeNode, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), node.Label)
	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}

func fatal(err error) {
	fatalf("%v", err)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
