package timeoff

import "time"

type TimeOffType string

const (
	TypeVacation  TimeOffType = "VACATION"
	TypeSickLeave TimeOffType = "SICK_LEAVE"
)

var TimeOffTypeValues = []string{
	string(TypeVacation),
	string(TypeSickLeave),
}

type TimeOffStatus string

const (
	StatusPending  TimeOffStatus = "PENDING"
	StatusApproved TimeOffStatus = "APPROVED"
	StatusRejected TimeOffStatus = "REJECTED"
)

// TimeOffRequest is a multi-day leave entry, a ledger independent of the
// week-schedule shift requests. VACATION days count against the annual
// allotment; SICK_LEAVE days do not.
type TimeOffRequest struct {
	ID                  string
	UserID              string
	Type                TimeOffType
	StartDate           time.Time
	EndDate             time.Time
	DaysCount           int
	Status              TimeOffStatus
	RejectionReason     *string
	DeductedFromBalance bool
	ReviewedBy          *string
	ReviewedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	UserName *string
}

// VacationBalance is the derived accounting for one user and vacation year.
// Invariant: AvailableDays = AnnualVacationDays - UsedVacationDays - PendingDays.
type VacationBalance struct {
	UserID             string `json:"user_id"`
	Year               int    `json:"year"`
	AnnualVacationDays int    `json:"annual_vacation_days"`
	UsedVacationDays   int    `json:"used_vacation_days"`
	PendingDays        int    `json:"pending_days"`
	RemainingDays      int    `json:"remaining_days"`
	AvailableDays      int    `json:"available_days"`
	UsagePercentage    int    `json:"usage_percentage"`
}

// NewVacationBalance derives the balance from the annual allotment and the
// used/pending day sums. Pending days are reserved, not yet spent.
func NewVacationBalance(userID string, year, annualDays, usedDays, pendingDays int) VacationBalance {
	remaining := annualDays - usedDays
	usagePct := 0
	if annualDays > 0 {
		// round half up at presentation, sums stay exact integers
		usagePct = (usedDays*100 + annualDays/2) / annualDays
	}
	return VacationBalance{
		UserID:             userID,
		Year:               year,
		AnnualVacationDays: annualDays,
		UsedVacationDays:   usedDays,
		PendingDays:        pendingDays,
		RemainingDays:      remaining,
		AvailableDays:      remaining - pendingDays,
		UsagePercentage:    usagePct,
	}
}
