package payroll

import (
	"context"
	"time"
)

// PayrollRepository reads the per-shift source records payroll aggregates
// over. Placeholder shifts carry no hours and are excluded at the query
// level.
type PayrollRepository interface {
	// ListShiftHours returns timed shifts joined with their attendance
	// outcome for one user in [from, to].
	ListShiftHours(ctx context.Context, userID string, from, to time.Time) ([]ShiftHours, error)
	// ListTeamShiftHours returns the same join for every active user.
	ListTeamShiftHours(ctx context.Context, from, to time.Time) ([]ShiftHours, error)
}
