package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("Attendance record not found")
	ErrShiftNotEnded      = errors.New("Shift has not ended yet")
	ErrPlaceholderShift   = errors.New("Cannot record attendance for a placeholder shift")
)
