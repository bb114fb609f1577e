package shiftrequest

import "errors"

var (
	ErrRequestNotFound       = errors.New("Shift request not found")
	ErrNotRequestOwner       = errors.New("Shift request belongs to another user")
	ErrRequestNotPending     = errors.New("Shift request is no longer pending")
	ErrAlreadyProcessed      = errors.New("Shift request already processed")
	ErrDeadlinePassed        = errors.New("Request deadline has passed")
	ErrTimeOffNotConvertible = errors.New("A time-off request cannot be converted to a shift")
	ErrNotConvertible        = errors.New("Shift request is not in a convertible status")
)
