package attendance

import "context"

// AttendanceRepository - interface for the actual_work_hours table
type AttendanceRepository interface {
	// Upsert inserts or overwrites the record keyed by shift id.
	Upsert(ctx context.Context, a ActualWorkHours) (ActualWorkHours, error)
	GetByShiftID(ctx context.Context, shiftID string) (ActualWorkHours, error)
	ListByWeekSchedule(ctx context.Context, weekScheduleID string) ([]ActualWorkHours, error)
}
