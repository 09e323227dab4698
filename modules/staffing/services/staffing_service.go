package services

import (
	"context"
	"time"

	"github.com/jacksonlee411/career-planner/modules/staffing/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/staffing/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/httperr"
)

type StaffingService struct {
	store ports.AssignmentStore
}

func NewStaffingService(store ports.AssignmentStore) StaffingService {
	return StaffingService{store: store}
}

func (s StaffingService) ListAssignments(ctx context.Context, scenarioID int64) ([]types.Assignment, error) {
	return s.store.ListAssignments(ctx, scenarioID)
}

// MoveEmployee closes every open assignment for the employee and opens a new
// one on the target position, all within one store transaction.
func (s StaffingService) MoveEmployee(ctx context.Context, employeeID, newPositionID int64, startDate string) error {
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return httperr.NewBadRequest("start_date must be YYYY-MM-DD")
	}
	return s.store.MoveEmployee(ctx, employeeID, newPositionID, startDate)
}

func (s StaffingService) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	return s.store.DeleteAssignment(ctx, assignmentID)
}
