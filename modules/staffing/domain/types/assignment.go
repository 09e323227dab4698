package types

// Assignment records an employee occupying a position over
// [StartDate, EndDate). EndDate nil marks the currently active assignment;
// at most one per employee is open at a time.
type Assignment struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	PositionID int64   `json:"position_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
}
