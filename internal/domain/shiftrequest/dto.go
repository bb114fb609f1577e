package shiftrequest

import (
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
)

type SubmitRequestRequest struct {
	WeekScheduleID     string  `json:"week_schedule_id"`
	Type               string  `json:"request_type"`
	Date               string  `json:"date"` // "2006-01-02"
	PositionID         *string `json:"position_id,omitempty"`
	PreferredStartTime *string `json:"preferred_start_time,omitempty"` // RFC3339, SPECIFIC_TIME only
	PreferredEndTime   *string `json:"preferred_end_time,omitempty"`
	VacationDays       *int    `json:"vacation_days,omitempty"` // TIME_OFF only
	Notes              *string `json:"notes,omitempty"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_schedule_id",
			Message: "week_schedule_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, RequestTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_type",
			Message: "request_type must be one of SPECIFIC_TIME, AVAILABLE_ALL_DAY, TIME_OFF",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	errs = append(errs, r.validateTypeFields()...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateTypeFields enforces the per-type required fields: SPECIFIC_TIME
// carries a preferred interval with start < end, TIME_OFF carries a positive
// day count, AVAILABLE_ALL_DAY carries neither.
func (r *SubmitRequestRequest) validateTypeFields() validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch RequestType(r.Type) {
	case TypeSpecificTime:
		if r.PreferredStartTime == nil || r.PreferredEndTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_start_time",
				Message: "preferred_start_time and preferred_end_time are required for SPECIFIC_TIME requests",
			})
			return errs
		}
		start, startOK := validator.IsValidDateTime(*r.PreferredStartTime)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_start_time",
				Message: "preferred_start_time must be a valid RFC3339 timestamp",
			})
		}
		end, endOK := validator.IsValidDateTime(*r.PreferredEndTime)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_end_time",
				Message: "preferred_end_time must be a valid RFC3339 timestamp",
			})
		}
		if startOK && endOK && !start.Before(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_end_time",
				Message: "preferred_end_time must be after preferred_start_time",
			})
		}
	case TypeTimeOff:
		if r.VacationDays == nil || *r.VacationDays <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "vacation_days",
				Message: "vacation_days must be a positive integer for TIME_OFF requests",
			})
		}
	case TypeAvailableAllDay:
		if r.PreferredStartTime != nil || r.PreferredEndTime != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_start_time",
				Message: "AVAILABLE_ALL_DAY requests carry no preferred time",
			})
		}
	}

	return errs
}

type UpdateRequestRequest struct {
	PositionID         *string `json:"position_id,omitempty"`
	Date               *string `json:"date,omitempty"`
	PreferredStartTime *string `json:"preferred_start_time,omitempty"`
	PreferredEndTime   *string `json:"preferred_end_time,omitempty"`
	VacationDays       *int    `json:"vacation_days,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

func (r *UpdateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.PreferredStartTime != nil {
		if _, ok := validator.IsValidDateTime(*r.PreferredStartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_start_time",
				Message: "preferred_start_time must be a valid RFC3339 timestamp",
			})
		}
	}
	if r.PreferredEndTime != nil {
		if _, ok := validator.IsValidDateTime(*r.PreferredEndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_end_time",
				Message: "preferred_end_time must be a valid RFC3339 timestamp",
			})
		}
	}
	if r.VacationDays != nil && *r.VacationDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days",
			Message: "vacation_days must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

type ReviewRequestRequest struct {
	Action ReviewAction `json:"action"`
	Reason *string      `json:"reason,omitempty"` // required on reject
}

func (r *ReviewRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != ReviewActionApprove && r.Action != ReviewActionReject {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}
	if r.Action == ReviewActionReject && (r.Reason == nil || validator.IsEmpty(*r.Reason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConvertRequestRequest struct {
	PositionID *string `json:"position_id,omitempty"`
	StartTime  string  `json:"start_time"` // RFC3339
	EndTime    string  `json:"end_time"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ConvertRequestRequest) Validate() error {
	var errs validator.ValidationErrors

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

type RequestFilter struct {
	WeekScheduleID *string
	UserID         *string
	Status         *RequestStatus
}

type RequestResponse struct {
	ID                  string     `json:"id"`
	WeekScheduleID      string     `json:"week_schedule_id"`
	UserID              string     `json:"user_id"`
	UserName            *string    `json:"user_name,omitempty"`
	PositionID          *string    `json:"position_id,omitempty"`
	PositionName        *string    `json:"position_name,omitempty"`
	Type                string     `json:"request_type"`
	Date                string     `json:"date"`
	PreferredStartTime  *time.Time `json:"preferred_start_time,omitempty"`
	PreferredEndTime    *time.Time `json:"preferred_end_time,omitempty"`
	Status              string     `json:"status"`
	Notes               *string    `json:"notes,omitempty"`
	RejectionReason     *string    `json:"rejection_reason,omitempty"`
	VacationDays        *int       `json:"vacation_days,omitempty"`
	DeductedFromBalance bool       `json:"deducted_from_balance"`
	ReviewedBy          *string    `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time `json:"reviewed_at,omitempty"`
}

func NewRequestResponse(r ShiftRequest) RequestResponse {
	return RequestResponse{
		ID:                  r.ID,
		WeekScheduleID:      r.WeekScheduleID,
		UserID:              r.UserID,
		UserName:            r.UserName,
		PositionID:          r.PositionID,
		PositionName:        r.PositionName,
		Type:                string(r.Type),
		Date:                r.Date.Format("2006-01-02"),
		PreferredStartTime:  r.PreferredStartTime,
		PreferredEndTime:    r.PreferredEndTime,
		Status:              string(r.Status),
		Notes:               r.Notes,
		RejectionReason:     r.RejectionReason,
		VacationDays:        r.VacationDays,
		DeductedFromBalance: r.DeductedFromBalance,
		ReviewedBy:          r.ReviewedBy,
		ReviewedAt:          r.ReviewedAt,
	}
}
