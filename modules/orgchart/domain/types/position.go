package types

// Position is an org-chart node scoped to one scenario. ParentPositionID nil
// means the position is a root of the scenario's forest.
type Position struct {
	ID               int64  `json:"id"`
	ScenarioID       int64  `json:"scenario_id"`
	Title            string `json:"title"`
	Department       string `json:"department"`
	ParentPositionID *int64 `json:"parent_position_id"`
}

// PositionOption is the (id, title) pair the presentation shell uses to map
// free-text selections back to position ids.
type PositionOption struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type TreeNode struct {
	Title      string     `json:"title"`
	Department string     `json:"department"`
	Label      string     `json:"label"`
	Children   []TreeNode `json:"children,omitempty"`
}
