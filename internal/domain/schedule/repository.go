package schedule

import (
	"context"
	"time"
)

// WeekScheduleRepository - interface for the week_schedules table
type WeekScheduleRepository interface {
	Create(ctx context.Context, ws WeekSchedule) (WeekSchedule, error)
	GetByID(ctx context.Context, id string) (WeekSchedule, error)
	GetByWeekStart(ctx context.Context, weekStart time.Time) (WeekSchedule, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]WeekSchedule, error)
	SetPublished(ctx context.Context, id string, published bool) error
}

// ShiftRepository - interface for the shifts table
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	// CreatePlaceholders bulk-inserts one placeholder shift per user per day
	// and returns the number of rows created.
	CreatePlaceholders(ctx context.Context, weekScheduleID string, userIDs []string, days []time.Time) (int, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error
	ListByWeekSchedule(ctx context.Context, weekScheduleID string) ([]Shift, error)
	// LockTimedByUserAndDate returns the user's non-placeholder shifts on the
	// given date. Inside a transaction the rows are locked (SELECT ... FOR
	// UPDATE) so concurrent conflict checks on the same user/day serialize.
	LockTimedByUserAndDate(ctx context.Context, userID string, date time.Time) ([]Shift, error)
}
