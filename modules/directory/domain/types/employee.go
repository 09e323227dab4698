package types

// Employee is an identity record shared by all scenarios.
type Employee struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}

type EmployeeOption struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}
