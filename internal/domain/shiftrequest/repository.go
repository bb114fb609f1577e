package shiftrequest

import "context"

// ShiftRequestRepository - interface for the shift_requests table
type ShiftRequestRepository interface {
	Create(ctx context.Context, r ShiftRequest) (ShiftRequest, error)
	GetByID(ctx context.Context, id string) (ShiftRequest, error)
	// Update rewrites the mutable submission fields (date, position,
	// preferred interval, vacation days, notes).
	Update(ctx context.Context, r ShiftRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RequestFilter) ([]ShiftRequest, error)
	// SetStatusIfConvertible moves a PENDING or APPROVED request to
	// CONVERTED_TO_SHIFT. Returns ErrAlreadyProcessed when the request has
	// already left a convertible status, so a concurrent conversion loses.
	SetStatusIfConvertible(ctx context.Context, id string) error
	// Review moves a PENDING request to APPROVED or REJECTED and stamps the
	// reviewer. deduct marks TIME_OFF days as taken from the vacation balance
	// in the same statement. Returns ErrAlreadyProcessed when the request is
	// no longer PENDING.
	Review(ctx context.Context, id string, status RequestStatus, reviewedBy string, reason *string, deduct bool) error
}
