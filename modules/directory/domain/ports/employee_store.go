package ports

import (
	"context"

	"github.com/jacksonlee411/career-planner/modules/directory/domain/types"
)

type EmployeeStore interface {
	AddEmployee(ctx context.Context, employeeCode string, fullName string) error
	ListEmployees(ctx context.Context) ([]types.Employee, error)
	ListEmployeeOptions(ctx context.Context) ([]types.EmployeeOption, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
}
