package schedule

import "context"

// ScheduleService owns week schedules and shifts. Shift mutations are
// conflict-guarded: a timed shift may never overlap another timed shift for
// the same user on the same date.
type ScheduleService interface {
	CreateWeek(ctx context.Context, req CreateWeekScheduleRequest, createdBy string) (WeekScheduleResponse, error)
	GetWeek(ctx context.Context, id string, includeUnpublished bool) (WeekScheduleResponse, error)
	ListWeeks(ctx context.Context, from, to string, includeUnpublished bool) ([]WeekScheduleResponse, error)
	SetPublished(ctx context.Context, id string, published bool) (WeekScheduleResponse, error)

	CreateShift(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	UpdateShift(ctx context.Context, shiftID string, req UpsertShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, shiftID string) error
}
