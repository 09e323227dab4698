package httperr

import "errors"

// BadRequestError marks a request that failed shell-level validation: missing
// fields, unresolvable names, malformed dates. The stores never see these.
type BadRequestError struct {
	msg string
}

func (e *BadRequestError) Error() string { return e.msg }

func NewBadRequest(msg string) error { return &BadRequestError{msg: msg} }

func IsBadRequest(err error) bool {
	_, ok := errors.AsType[*BadRequestError](err)
	return ok
}

// Message returns the validation message when err is a BadRequestError, or
// the empty string otherwise.
func Message(err error) string {
	if e, ok := errors.AsType[*BadRequestError](err); ok {
		return e.msg
	}
	return ""
}
