package attendance

import "context"

// AttendanceService records post-shift reconciliation. Recording is a plain
// upsert keyed by shift id; warning the operator about overwrites is the
// caller's concern.
type AttendanceService interface {
	Record(ctx context.Context, shiftID string, req RecordAttendanceRequest, recordedBy string) (AttendanceResponse, error)
	GetByShift(ctx context.Context, shiftID string) (AttendanceResponse, error)
	ListByWeek(ctx context.Context, weekScheduleID string) ([]AttendanceResponse, error)
}
