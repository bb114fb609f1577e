package schedule

import "errors"

var (
	ErrWeekScheduleNotFound = errors.New("Week schedule not found")
	ErrWeekAlreadyExists    = errors.New("Week schedule already exists for this week")
	ErrShiftNotFound        = errors.New("Shift not found")
	ErrShiftOverlap         = errors.New("Shift overlaps an existing shift")
)
