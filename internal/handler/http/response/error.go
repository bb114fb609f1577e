package response

import (
	"errors"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/attendance"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/payroll"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/position"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/shiftrequest"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/timeoff"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager role required")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWeekScheduleNotFound):
		NotFound(w, "Week schedule not found")
	case errors.Is(err, schedule.ErrWeekAlreadyExists):
		Conflict(w, "A schedule already exists for this week")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftOverlap):
		Conflict(w, err.Error())

	// Shift request domain errors
	case errors.Is(err, shiftrequest.ErrRequestNotFound):
		NotFound(w, "Shift request not found")
	case errors.Is(err, shiftrequest.ErrNotRequestOwner):
		Forbidden(w, "Shift request belongs to another user")
	case errors.Is(err, shiftrequest.ErrRequestNotPending):
		BadRequestWithCode(w, "INVALID_STATE", "Shift request is no longer pending")
	case errors.Is(err, shiftrequest.ErrAlreadyProcessed):
		Conflict(w, "Shift request already processed")
	case errors.Is(err, shiftrequest.ErrDeadlinePassed):
		BadRequestWithCode(w, "DEADLINE_PASSED", "The request deadline for this week has passed")
	case errors.Is(err, shiftrequest.ErrTimeOffNotConvertible):
		BadRequestWithCode(w, "INVALID_STATE", "A time-off request cannot be converted to a shift")
	case errors.Is(err, shiftrequest.ErrNotConvertible):
		BadRequestWithCode(w, "INVALID_STATE", "Shift request is not in a convertible status")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrShiftNotEnded):
		BadRequestWithCode(w, "SHIFT_NOT_ENDED", "Attendance can only be recorded after the shift ends")
	case errors.Is(err, attendance.ErrPlaceholderShift):
		BadRequestWithCode(w, "INVALID_STATE", "Cannot record attendance for a placeholder shift")

	// Time-off domain errors
	case errors.Is(err, timeoff.ErrTimeOffNotFound):
		NotFound(w, "Time-off request not found")
	case errors.Is(err, timeoff.ErrAlreadyProcessed):
		Conflict(w, "Time-off request already processed")
	case errors.Is(err, timeoff.ErrInsufficientBalance):
		BadRequestWithCode(w, "INSUFFICIENT_BALANCE", err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionInactive):
		BadRequestWithCode(w, "INVALID_STATE", "Position is inactive")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
