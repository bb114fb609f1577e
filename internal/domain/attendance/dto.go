package attendance

import (
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	Status          string  `json:"status"`
	ActualStartTime *string `json:"actual_start_time,omitempty"` // RFC3339, PRESENT only
	ActualEndTime   *string `json:"actual_end_time,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, AttendanceStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, SICK, ABSENT",
		})
	}

	if AttendanceStatus(r.Status) == StatusPresent {
		if r.ActualStartTime == nil || r.ActualEndTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "actual_start_time",
				Message: "actual_start_time and actual_end_time are required when status is PRESENT",
			})
		} else {
			start, startOK := validator.IsValidDateTime(*r.ActualStartTime)
			if !startOK {
				errs = append(errs, validator.ValidationError{
					Field:   "actual_start_time",
					Message: "actual_start_time must be a valid RFC3339 timestamp",
				})
			}
			end, endOK := validator.IsValidDateTime(*r.ActualEndTime)
			if !endOK {
				errs = append(errs, validator.ValidationError{
					Field:   "actual_end_time",
					Message: "actual_end_time must be a valid RFC3339 timestamp",
				})
			}
			if startOK && endOK && !start.Before(end) {
				errs = append(errs, validator.ValidationError{
					Field:   "actual_end_time",
					Message: "actual_end_time must be after actual_start_time",
				})
			}
		}
	} else {
		if r.ActualStartTime != nil || r.ActualEndTime != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "actual_start_time",
				Message: "actual times must be empty unless status is PRESENT",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string     `json:"id"`
	ShiftID           string     `json:"shift_id"`
	UserID            string     `json:"user_id"`
	Status            string     `json:"status"`
	ActualStartTime   *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime     *time.Time `json:"actual_end_time,omitempty"`
	ActualHoursWorked *string    `json:"actual_hours_worked,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	RecordedBy        string     `json:"recorded_by"`
	RecordedAt        time.Time  `json:"recorded_at"`
}

func NewAttendanceResponse(a ActualWorkHours) AttendanceResponse {
	resp := AttendanceResponse{
		ID:              a.ID,
		ShiftID:         a.ShiftID,
		UserID:          a.UserID,
		Status:          string(a.Status),
		ActualStartTime: a.ActualStartTime,
		ActualEndTime:   a.ActualEndTime,
		Notes:           a.Notes,
		RecordedBy:      a.RecordedBy,
		RecordedAt:      a.RecordedAt,
	}
	if a.ActualHoursWorked != nil {
		hours := a.ActualHoursWorked.String()
		resp.ActualHoursWorked = &hours
	}
	return resp
}
