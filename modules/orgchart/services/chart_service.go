package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
)

// FullChartRoot is the sentinel subchart-root selection meaning "render the
// whole forest". An empty selection means the same thing.
const FullChartRoot = "(Full Org Chart)"

// ErrHierarchyCycle reports a parent chain that loops back on itself. The
// store never writes cycles on its own, but parent ids are caller-supplied
// and unvalidated, so rendering guards against them instead of hanging.
var ErrHierarchyCycle = errors.New("orgchart: position hierarchy contains a cycle")

// BuildForest renders the flat parent-pointer records as a forest. Siblings
// are ordered by (department, title); each node is labelled
// "{title} ({department})". A non-sentinel rootTitle is resolved by exact
// title match within positions and only that subtree is rendered; an
// unresolved title yields an empty forest.
func BuildForest(positions []types.Position, rootTitle string) ([]types.TreeNode, error) {
	byID := make(map[int64]types.Position, len(positions))
	for _, p := range positions {
		byID[p.ID] = p
	}

	children := make(map[int64][]int64)
	var roots []int64
	for _, p := range positions {
		if p.ParentPositionID == nil {
			roots = append(roots, p.ID)
		} else {
			children[*p.ParentPositionID] = append(children[*p.ParentPositionID], p.ID)
		}
	}

	bySiblingOrder := func(ids []int64) {
		sort.Slice(ids, func(i, j int) bool {
			a, b := byID[ids[i]], byID[ids[j]]
			if a.Department != b.Department {
				return a.Department < b.Department
			}
			return a.Title < b.Title
		})
	}
	bySiblingOrder(roots)
	for _, ids := range children {
		bySiblingOrder(ids)
	}

	startIDs := roots
	if sel := strings.TrimSpace(rootTitle); sel != "" && sel != FullChartRoot {
		rootID, ok := resolveTitle(positions, sel)
		if !ok {
			return nil, nil
		}
		startIDs = []int64{rootID}
	}

	// Iterative preorder walk with an explicit stack. Every position has at
	// most one parent, so seeing an id twice means the parent chain loops.
	visited := make(map[int64]bool, len(positions))
	var order []int64
	stack := make([]int64, len(startIDs))
	for i, id := range startIDs {
		stack[len(startIDs)-1-i] = id
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			return nil, ErrHierarchyCycle
		}
		visited[id] = true
		order = append(order, id)

		kids := children[id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	// Assemble bottom-up: reverse preorder guarantees children before parents.
	nodes := make(map[int64]*types.TreeNode, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		p := byID[id]
		n := &types.TreeNode{
			Title:      p.Title,
			Department: p.Department,
			Label:      fmt.Sprintf("%s (%s)", p.Title, p.Department),
		}
		for _, childID := range children[id] {
			n.Children = append(n.Children, *nodes[childID])
		}
		nodes[id] = n
	}

	var forest []types.TreeNode
	for _, id := range startIDs {
		forest = append(forest, *nodes[id])
	}
	return forest, nil
}

// resolveTitle maps an exact title to a position id. Titles are not unique;
// the last match wins, mirroring how the shell's lookup map is built.
func resolveTitle(positions []types.Position, title string) (int64, bool) {
	var id int64
	found := false
	for _, p := range positions {
		if p.Title == title {
			id = p.ID
			found = true
		}
	}
	return id, found
}
