package timeoff

import "context"

// TimeOffService owns the independent time-off ledger and the derived
// vacation balance. Approval moves a request's days from pending to used
// atomically with the status transition.
type TimeOffService interface {
	Create(ctx context.Context, req CreateTimeOffRequest, actingUserID string) (TimeOffResponse, error)
	Review(ctx context.Context, requestID string, req ReviewTimeOffRequest, actingUserID string) (TimeOffResponse, error)
	List(ctx context.Context, filter TimeOffFilter) ([]TimeOffResponse, error)
	Balance(ctx context.Context, userID string, year int) (VacationBalance, error)
}
