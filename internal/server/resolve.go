package server

import (
	directorytypes "github.com/jacksonlee411/career-planner/modules/directory/domain/types"
	orgcharttypes "github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
)

// resolvePositionID maps a displayed title back to its id by exact match.
// The empty string means no selection. Duplicate titles resolve to the last
// option listed.
func resolvePositionID(options []orgcharttypes.PositionOption, title string) (int64, bool) {
	if title == "" {
		return 0, false
	}
	var id int64
	found := false
	for _, opt := range options {
		if opt.Title == title {
			id = opt.ID
			found = true
		}
	}
	return id, found
}

// resolveEmployeeID maps a displayed full name back to its id the same way.
func resolveEmployeeID(options []directorytypes.EmployeeOption, fullName string) (int64, bool) {
	if fullName == "" {
		return 0, false
	}
	var id int64
	found := false
	for _, opt := range options {
		if opt.FullName == fullName {
			id = opt.ID
			found = true
		}
	}
	return id, found
}
