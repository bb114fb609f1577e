package shiftrequest

import (
	"context"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
)

// RequestService owns the shift-request lifecycle. Submission and owner
// mutations are gated on PENDING status and the week's request deadline;
// review and conversion are manager actions. Conversion inserts a
// conflict-guarded shift and advances the request atomically.
type RequestService interface {
	Submit(ctx context.Context, req SubmitRequestRequest, actingUserID string) (RequestResponse, error)
	Edit(ctx context.Context, requestID string, req UpdateRequestRequest, actingUserID string) (RequestResponse, error)
	Withdraw(ctx context.Context, requestID string, actingUserID string) error
	Review(ctx context.Context, requestID string, req ReviewRequestRequest, actingUserID string) (RequestResponse, error)
	Convert(ctx context.Context, requestID string, req ConvertRequestRequest, actingUserID string) (RequestResponse, schedule.ShiftResponse, error)
	List(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
	Get(ctx context.Context, requestID string) (RequestResponse, error)
}
