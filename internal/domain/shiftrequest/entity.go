package shiftrequest

import "time"

type RequestType string

const (
	TypeSpecificTime    RequestType = "SPECIFIC_TIME"
	TypeAvailableAllDay RequestType = "AVAILABLE_ALL_DAY"
	TypeTimeOff         RequestType = "TIME_OFF"
)

var RequestTypeValues = []string{
	string(TypeSpecificTime),
	string(TypeAvailableAllDay),
	string(TypeTimeOff),
}

type RequestStatus string

const (
	StatusPending          RequestStatus = "PENDING"
	StatusApproved         RequestStatus = "APPROVED"
	StatusRejected         RequestStatus = "REJECTED"
	StatusConvertedToShift RequestStatus = "CONVERTED_TO_SHIFT"
)

// Convertible reports whether a request in this status may still be turned
// into a shift. Approval is an optional intermediate step: converting a
// PENDING request directly is a combined approve-and-convert action.
func (s RequestStatus) Convertible() bool {
	return s == StatusPending || s == StatusApproved
}

// ShiftRequest is an employee-submitted availability or time-off entry tied
// to a week schedule. Transitions are one-directional: PENDING may move to
// APPROVED, REJECTED or CONVERTED_TO_SHIFT; APPROVED (non-TIME_OFF) may move
// to CONVERTED_TO_SHIFT; REJECTED and CONVERTED_TO_SHIFT are terminal.
type ShiftRequest struct {
	ID                  string
	WeekScheduleID      string
	UserID              string
	PositionID          *string
	Type                RequestType
	Date                time.Time
	PreferredStartTime  *time.Time // set iff Type == SPECIFIC_TIME
	PreferredEndTime    *time.Time
	Status              RequestStatus
	Notes               *string
	RejectionReason     *string // set iff Status == REJECTED
	VacationDays        *int    // set iff Type == TIME_OFF
	DeductedFromBalance bool
	ReviewedBy          *string
	ReviewedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	UserName     *string
	PositionName *string
}
