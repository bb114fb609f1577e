package timeoff

import "context"

// LedgerSums are the aggregate day counts the vacation balance derives from.
// Used covers approved-and-deducted entries, Pending covers entries still
// awaiting review. Both ledgers contribute: TimeOffRequest rows of type
// VACATION and week-schedule shift requests of type TIME_OFF.
type LedgerSums struct {
	UsedDays    int
	PendingDays int
}

// TimeOffRepository - interface for the time_off_requests table
type TimeOffRepository interface {
	Create(ctx context.Context, r TimeOffRequest) (TimeOffRequest, error)
	GetByID(ctx context.Context, id string) (TimeOffRequest, error)
	List(ctx context.Context, filter TimeOffFilter) ([]TimeOffRequest, error)
	// Review moves a PENDING request to APPROVED or REJECTED, stamps the
	// reviewer and, for approved VACATION entries, marks the days deducted in
	// the same statement. Returns ErrAlreadyProcessed when the request is no
	// longer PENDING.
	Review(ctx context.Context, id string, status TimeOffStatus, reviewedBy string, reason *string, deduct bool) error
	// SumVacationDays aggregates used and pending vacation days for the user
	// in the given year across both leave ledgers.
	SumVacationDays(ctx context.Context, userID string, year int) (LedgerSums, error)
}
