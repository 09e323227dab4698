package services

import (
	"context"
	"testing"

	"github.com/jacksonlee411/career-planner/modules/staffing/domain/types"
	"github.com/jacksonlee411/career-planner/pkg/httperr"
)

type assignmentStoreStub struct {
	listFn   func(ctx context.Context, scenarioID int64) ([]types.Assignment, error)
	moveFn   func(ctx context.Context, employeeID, newPositionID int64, startDate string) error
	deleteFn func(ctx context.Context, assignmentID int64) error
}

func (s assignmentStoreStub) ListAssignments(ctx context.Context, scenarioID int64) ([]types.Assignment, error) {
	return s.listFn(ctx, scenarioID)
}

func (s assignmentStoreStub) MoveEmployee(ctx context.Context, employeeID, newPositionID int64, startDate string) error {
	return s.moveFn(ctx, employeeID, newPositionID, startDate)
}

func (s assignmentStoreStub) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	return s.deleteFn(ctx, assignmentID)
}

func TestStaffingService_MoveEmployee(t *testing.T) {
	t.Run("rejects malformed start date", func(t *testing.T) {
		called := false
		svc := NewStaffingService(assignmentStoreStub{
			moveFn: func(ctx context.Context, employeeID, newPositionID int64, startDate string) error {
				called = true
				return nil
			},
		})

		err := svc.MoveEmployee(context.Background(), 1, 2, "01/04/2024")
		if !httperr.IsBadRequest(err) {
			t.Fatalf("err=%v", err)
		}
		if called {
			t.Fatal("store reached with invalid date")
		}
	})

	t.Run("delegates valid moves", func(t *testing.T) {
		var gotEmployee, gotPosition int64
		var gotStart string
		svc := NewStaffingService(assignmentStoreStub{
			moveFn: func(ctx context.Context, employeeID, newPositionID int64, startDate string) error {
				gotEmployee, gotPosition, gotStart = employeeID, newPositionID, startDate
				return nil
			},
		})

		if err := svc.MoveEmployee(context.Background(), 7, 9, "2024-04-01"); err != nil {
			t.Fatalf("err=%v", err)
		}
		if gotEmployee != 7 || gotPosition != 9 || gotStart != "2024-04-01" {
			t.Fatalf("got employee=%d position=%d start=%q", gotEmployee, gotPosition, gotStart)
		}
	})
}

func TestStaffingService_ListAssignments(t *testing.T) {
	end := "2024-04-01"
	want := []types.Assignment{
		{ID: 2, EmployeeID: 1, PositionID: 5, StartDate: "2024-04-01"},
		{ID: 1, EmployeeID: 1, PositionID: 4, StartDate: "2024-01-01", EndDate: &end},
	}
	svc := NewStaffingService(assignmentStoreStub{
		listFn: func(ctx context.Context, scenarioID int64) ([]types.Assignment, error) {
			if scenarioID != 3 {
				t.Fatalf("scenarioID=%d", scenarioID)
			}
			return want, nil
		},
	})

	got, err := svc.ListAssignments(context.Background(), 3)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("got=%+v", got)
	}
}

func TestStaffingService_DeleteAssignment(t *testing.T) {
	var gotID int64
	svc := NewStaffingService(assignmentStoreStub{
		deleteFn: func(ctx context.Context, assignmentID int64) error {
			gotID = assignmentID
			return nil
		},
	})

	if err := svc.DeleteAssignment(context.Background(), 42); err != nil {
		t.Fatalf("err=%v", err)
	}
	if gotID != 42 {
		t.Fatalf("gotID=%d", gotID)
	}
}
