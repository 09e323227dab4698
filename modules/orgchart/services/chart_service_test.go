package services

import (
	"errors"
	"testing"

	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
)

func position(id int64, title, department string, parent *int64) types.Position {
	return types.Position{ID: id, ScenarioID: 1, Title: title, Department: department, ParentPositionID: parent}
}

func ref(id int64) *int64 { return &id }

func TestBuildForest(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		forest, err := BuildForest(nil, "")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(forest) != 0 {
			t.Fatalf("forest=%+v", forest)
		}
	})

	t.Run("full chart renders one tree per root", func(t *testing.T) {
		positions := []types.Position{
			position(1, "CEO", "Exec", nil),
			position(2, "CTO", "Tech", ref(1)),
			position(3, "CFO", "Finance", ref(1)),
			position(4, "Facilities Lead", "Ops", nil),
		}

		forest, err := BuildForest(positions, "")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(forest) != 2 {
			t.Fatalf("len=%d", len(forest))
		}
		// Roots sorted by (department, title): Exec before Ops.
		if forest[0].Label != "CEO (Exec)" || forest[1].Label != "Facilities Lead (Ops)" {
			t.Fatalf("roots=%q,%q", forest[0].Label, forest[1].Label)
		}
		// Children sorted by (department, title): Finance before Tech.
		kids := forest[0].Children
		if len(kids) != 2 || kids[0].Label != "CFO (Finance)" || kids[1].Label != "CTO (Tech)" {
			t.Fatalf("children=%+v", kids)
		}
	})

	t.Run("sentinel equals full chart", func(t *testing.T) {
		positions := []types.Position{
			position(1, "CEO", "Exec", nil),
			position(2, "CTO", "Tech", ref(1)),
		}
		full, err := BuildForest(positions, FullChartRoot)
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(full) != 1 || full[0].Label != "CEO (Exec)" {
			t.Fatalf("forest=%+v", full)
		}
	})

	t.Run("subtree root", func(t *testing.T) {
		positions := []types.Position{
			position(1, "CEO", "Exec", nil),
			position(2, "CTO", "Tech", ref(1)),
			position(3, "Staff Engineer", "Tech", ref(2)),
		}

		forest, err := BuildForest(positions, "CTO")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(forest) != 1 || forest[0].Label != "CTO (Tech)" {
			t.Fatalf("forest=%+v", forest)
		}
		if len(forest[0].Children) != 1 || forest[0].Children[0].Label != "Staff Engineer (Tech)" {
			t.Fatalf("children=%+v", forest[0].Children)
		}
	})

	t.Run("unresolved root title yields empty forest", func(t *testing.T) {
		positions := []types.Position{position(1, "CEO", "Exec", nil)}
		forest, err := BuildForest(positions, "Nobody")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(forest) != 0 {
			t.Fatalf("forest=%+v", forest)
		}
	})

	t.Run("depth beyond any recursion concern", func(t *testing.T) {
		var positions []types.Position
		positions = append(positions, position(1, "P1", "D", nil))
		for id := int64(2); id <= 5000; id++ {
			parent := id - 1
			positions = append(positions, position(id, "P", "D", &parent))
		}

		forest, err := BuildForest(positions, "")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		depth := 0
		for node := forest; len(node) == 1; node = node[0].Children {
			depth++
		}
		if depth != 5000 {
			t.Fatalf("depth=%d", depth)
		}
	})

	t.Run("cycle reachable from subtree root errors", func(t *testing.T) {
		positions := []types.Position{
			position(1, "A", "D", ref(2)),
			position(2, "B", "D", ref(1)),
		}
		if _, err := BuildForest(positions, "A"); !errors.Is(err, ErrHierarchyCycle) {
			t.Fatalf("err=%v", err)
		}
	})

	t.Run("cycle not reachable from roots stays unrendered", func(t *testing.T) {
		positions := []types.Position{
			position(1, "CEO", "Exec", nil),
			position(2, "A", "D", ref(3)),
			position(3, "B", "D", ref(2)),
		}
		forest, err := BuildForest(positions, "")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(forest) != 1 || forest[0].Label != "CEO (Exec)" {
			t.Fatalf("forest=%+v", forest)
		}
	})

	t.Run("duplicate titles resolve to the last match", func(t *testing.T) {
		positions := []types.Position{
			position(1, "Manager", "Alpha", nil),
			position(2, "Manager", "Beta", nil),
			position(3, "Analyst", "Beta", ref(2)),
		}
		forest, err := BuildForest(positions, "Manager")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if len(forest) != 1 || forest[0].Label != "Manager (Beta)" {
			t.Fatalf("forest=%+v", forest)
		}
		if len(forest[0].Children) != 1 {
			t.Fatalf("children=%+v", forest[0].Children)
		}
	})
}
