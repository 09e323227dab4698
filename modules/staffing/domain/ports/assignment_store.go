package ports

import (
	"context"

	"github.com/jacksonlee411/career-planner/modules/staffing/domain/types"
)

type AssignmentStore interface {
	ListAssignments(ctx context.Context, scenarioID int64) ([]types.Assignment, error)
	MoveEmployee(ctx context.Context, employeeID int64, newPositionID int64, startDate string) error
	DeleteAssignment(ctx context.Context, assignmentID int64) error
}
