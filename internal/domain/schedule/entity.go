package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeekSchedule is a Monday-anchored roster week. It is created by a manager,
// mutated only through publish/unpublish, and never deleted once shifts
// reference it.
type WeekSchedule struct {
	ID              string
	WeekStart       time.Time // always a Monday
	WeekEnd         time.Time // WeekStart + 6 days
	RequestDeadline *time.Time
	IsPublished     bool
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Shifts []Shift
}

// DeadlinePassed reports whether request mutations are closed at the given
// instant. A week without a deadline never closes.
func (w WeekSchedule) DeadlinePassed(now time.Time) bool {
	return w.RequestDeadline != nil && now.After(*w.RequestDeadline)
}

// Shift is one user/day slot inside a week. A nil StartTime/EndTime pair
// denotes a placeholder: the slot is reserved but carries no work yet.
// Placeholders become timed shifts only through explicit creation; timed
// shifts fall back to placeholders only through deletion and recreation.
type Shift struct {
	ID             string
	WeekScheduleID string
	UserID         string
	Date           time.Time
	PositionID     *string
	StartTime      *time.Time
	EndTime        *time.Time
	HoursWorked    *decimal.Decimal
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	UserName      *string
	PositionName  *string
	PositionColor *string
}

// IsPlaceholder reports whether the shift has no assigned time interval.
func (s Shift) IsPlaceholder() bool {
	return s.StartTime == nil || s.EndTime == nil
}

// Interval returns the shift's time interval. ok is false for placeholders,
// which keeps the conflict check from ever running against one.
func (s Shift) Interval() (start, end time.Time, ok bool) {
	if s.IsPlaceholder() {
		return time.Time{}, time.Time{}, false
	}
	return *s.StartTime, *s.EndTime, true
}

// PlannedHours computes the planned duration in hours, exact to the minute.
func PlannedHours(start, end time.Time) decimal.Decimal {
	minutes := end.Sub(start) / time.Minute
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
}
