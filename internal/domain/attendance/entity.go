package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusSick    AttendanceStatus = "SICK"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

var AttendanceStatusValues = []string{
	string(StatusPresent),
	string(StatusSick),
	string(StatusAbsent),
}

// ActualWorkHours reconciles what actually happened against a planned shift.
// At most one record exists per shift; recording again overwrites it. A
// record may only exist for a timed shift whose end time has passed.
type ActualWorkHours struct {
	ID                string
	ShiftID           string
	UserID            string
	ActualStartTime   *time.Time // set iff Status == PRESENT
	ActualEndTime     *time.Time
	ActualHoursWorked *decimal.Decimal // derived from the actual interval
	Status            AttendanceStatus
	Notes             *string
	RecordedBy        string
	RecordedAt        time.Time
	UpdatedAt         time.Time
}

// ActualHours computes the worked duration in hours, exact to the minute.
func ActualHours(start, end time.Time) decimal.Decimal {
	minutes := end.Sub(start) / time.Minute
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
}
