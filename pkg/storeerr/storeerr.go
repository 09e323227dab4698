package storeerr

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ConstraintViolationError is a unique-key or foreign-key violation reported
// by the backing store. It is surfaced to the caller and never retried.
type ConstraintViolationError struct {
	Kind string // "unique" or "foreign_key"
	msg  string
}

func (e *ConstraintViolationError) Error() string { return e.msg }

func NewConstraintViolation(kind, msg string) error {
	return &ConstraintViolationError{Kind: kind, msg: msg}
}

func IsConstraintViolation(err error) bool {
	_, ok := errors.AsType[*ConstraintViolationError](err)
	return ok
}

// FromSQLite maps a driver error to a ConstraintViolationError when it is a
// SQLITE_CONSTRAINT, and returns err unchanged otherwise.
func FromSQLite(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr, ok := errors.AsType[sqlite3.Error](err)
	if !ok || sqliteErr.Code != sqlite3.ErrConstraint {
		return err
	}

	kind := "constraint"
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		kind = "unique"
	case sqlite3.ErrConstraintForeignKey:
		kind = "foreign_key"
	}
	return &ConstraintViolationError{Kind: kind, msg: sqliteErr.Error()}
}
