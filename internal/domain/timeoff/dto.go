package timeoff

import (
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
)

type CreateTimeOffRequest struct {
	Type      string `json:"time_off_type"`
	StartDate string `json:"start_date"` // "2006-01-02"
	EndDate   string `json:"end_date"`
	DaysCount int    `json:"days_count"`
}

func (r *CreateTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, TimeOffTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_off_type",
			Message: "time_off_type must be one of VACATION, SICK_LEAVE",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.DaysCount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_count",
			Message: "days_count must be a positive integer",
		})
	}
	if startOK && endOK {
		span := int(end.Sub(start).Hours()/24) + 1
		if r.DaysCount > span {
			errs = append(errs, validator.ValidationError{
				Field:   "days_count",
				Message: "days_count must not exceed the requested date span",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewTimeOffRequest struct {
	Action string  `json:"action"` // approve | reject
	Reason *string `json:"reason,omitempty"`
}

func (r *ReviewTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != "approve" && r.Action != "reject" {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}
	if r.Action == "reject" && (r.Reason == nil || validator.IsEmpty(*r.Reason)) {
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

type TimeOffFilter struct {
	UserID *string
	Status *TimeOffStatus
	Year   *int
}

type TimeOffResponse struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"user_id"`
	UserName            *string    `json:"user_name,omitempty"`
	Type                string     `json:"time_off_type"`
	StartDate           string     `json:"start_date"`
	EndDate             string     `json:"end_date"`
	DaysCount           int        `json:"days_count"`
	Status              string     `json:"status"`
	RejectionReason     *string    `json:"rejection_reason,omitempty"`
	DeductedFromBalance bool       `json:"deducted_from_balance"`
	ReviewedBy          *string    `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time `json:"reviewed_at,omitempty"`
}

func NewTimeOffResponse(r TimeOffRequest) TimeOffResponse {
	return TimeOffResponse{
		ID:                  r.ID,
		UserID:              r.UserID,
		UserName:            r.UserName,
		Type:                string(r.Type),
		StartDate:           r.StartDate.Format("2006-01-02"),
		EndDate:             r.EndDate.Format("2006-01-02"),
		DaysCount:           r.DaysCount,
		Status:              string(r.Status),
		RejectionReason:     r.RejectionReason,
		DeductedFromBalance: r.DeductedFromBalance,
		ReviewedBy:          r.ReviewedBy,
		ReviewedAt:          r.ReviewedAt,
	}
}
