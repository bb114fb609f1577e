package schedule

import (
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
)

type CreateWeekScheduleRequest struct {
	WeekStart       string  `json:"week_start"`                 // "2006-01-02", must be a Monday
	RequestDeadline *string `json:"request_deadline,omitempty"` // RFC3339
}

func (r *CreateWeekScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	weekStart, ok := validator.IsValidDate(r.WeekStart)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid date (YYYY-MM-DD)",
		})
	} else if !validator.IsMonday(weekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a Monday",
		})
	}

	if r.RequestDeadline != nil {
		if _, ok := validator.IsValidDateTime(*r.RequestDeadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "request_deadline",
				Message: "request_deadline must be a valid RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PublishWeekScheduleRequest struct {
	IsPublished bool `json:"is_published"`
}

type UpsertShiftRequest struct {
	WeekScheduleID string  `json:"week_schedule_id"`
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`       // "2006-01-02"
	PositionID     *string `json:"position_id,omitempty"`
	StartTime      string  `json:"start_time"` // RFC3339
	EndTime        string  `json:"end_time"`   // RFC3339
	Notes          *string `json:"notes,omitempty"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_schedule_id",
			Message: "week_schedule_id is required",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	start, startOK := validator.IsValidDateTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid RFC3339 timestamp",
		})
	}
	end, endOK := validator.IsValidDateTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid RFC3339 timestamp",
		})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID             string     `json:"id"`
	WeekScheduleID string     `json:"week_schedule_id"`
	UserID         string     `json:"user_id"`
	UserName       *string    `json:"user_name,omitempty"`
	Date           string     `json:"date"`
	PositionID     *string    `json:"position_id,omitempty"`
	PositionName   *string    `json:"position_name,omitempty"`
	PositionColor  *string    `json:"position_color,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	HoursWorked    *string    `json:"hours_worked,omitempty"`
	IsPlaceholder  bool       `json:"is_placeholder"`
	Notes          *string    `json:"notes,omitempty"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:             s.ID,
		WeekScheduleID: s.WeekScheduleID,
		UserID:         s.UserID,
		UserName:       s.UserName,
		Date:           s.Date.Format("2006-01-02"),
		PositionID:     s.PositionID,
		PositionName:   s.PositionName,
		PositionColor:  s.PositionColor,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		IsPlaceholder:  s.IsPlaceholder(),
		Notes:          s.Notes,
	}
	if s.HoursWorked != nil {
		hours := s.HoursWorked.String()
		resp.HoursWorked = &hours
	}
	return resp
}

type WeekScheduleResponse struct {
	ID              string          `json:"id"`
	WeekStart       string          `json:"week_start"`
	WeekEnd         string          `json:"week_end"`
	RequestDeadline *time.Time      `json:"request_deadline,omitempty"`
	IsPublished     bool            `json:"is_published"`
	CreatedBy       string          `json:"created_by"`
	Shifts          []ShiftResponse `json:"shifts,omitempty"`
}

func NewWeekScheduleResponse(w WeekSchedule) WeekScheduleResponse {
	resp := WeekScheduleResponse{
		ID:              w.ID,
		WeekStart:       w.WeekStart.Format("2006-01-02"),
		WeekEnd:         w.WeekEnd.Format("2006-01-02"),
		RequestDeadline: w.RequestDeadline,
		IsPublished:     w.IsPublished,
		CreatedBy:       w.CreatedBy,
	}
	for _, s := range w.Shifts {
		resp.Shifts = append(resp.Shifts, NewShiftResponse(s))
	}
	return resp
}
