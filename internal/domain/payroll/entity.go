package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftHours is the per-shift source record payroll aggregates over: the
// planned hours joined with the attendance outcome, if any. ActualHours is
// nil when no attendance record exists (payroll then previews on planned
// hours) and zero for SICK/ABSENT outcomes.
type ShiftHours struct {
	ShiftID          string
	UserID           string
	Date             time.Time
	PlannedHours     decimal.Decimal
	ActualHours      *decimal.Decimal
	AttendanceStatus *string
}

// Hours returns the billable hours for the shift: the reconciled actual
// hours when attendance exists, the planned hours otherwise.
func (s ShiftHours) Hours() decimal.Decimal {
	if s.AttendanceStatus != nil {
		if s.ActualHours != nil {
			return *s.ActualHours
		}
		return decimal.Zero // SICK or ABSENT
	}
	return s.PlannedHours
}
