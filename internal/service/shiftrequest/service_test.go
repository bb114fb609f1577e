package shiftrequest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/shiftrequest"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeekRepo struct {
	weeks map[string]schedule.WeekSchedule
}

func (f *fakeWeekRepo) Create(_ context.Context, ws schedule.WeekSchedule) (schedule.WeekSchedule, error) {
	f.weeks[ws.ID] = ws
	return ws, nil
}

func (f *fakeWeekRepo) GetByID(_ context.Context, id string) (schedule.WeekSchedule, error) {
	ws, ok := f.weeks[id]
	if !ok {
		return schedule.WeekSchedule{}, schedule.ErrWeekScheduleNotFound
	}
	return ws, nil
}

func (f *fakeWeekRepo) GetByWeekStart(_ context.Context, _ time.Time) (schedule.WeekSchedule, error) {
	return schedule.WeekSchedule{}, schedule.ErrWeekScheduleNotFound
}

func (f *fakeWeekRepo) ListByRange(_ context.Context, _, _ time.Time) ([]schedule.WeekSchedule, error) {
	return nil, nil
}

func (f *fakeWeekRepo) SetPublished(_ context.Context, id string, published bool) error {
	ws, ok := f.weeks[id]
	if !ok {
		return schedule.ErrWeekScheduleNotFound
	}
	ws.IsPublished = published
	f.weeks[id] = ws
	return nil
}

type fakeRequestRepo struct {
	requests map[string]shiftrequest.ShiftRequest
	nextID   int
}

func (f *fakeRequestRepo) Create(_ context.Context, r shiftrequest.ShiftRequest) (shiftrequest.ShiftRequest, error) {
	f.nextID++
	r.ID = fmt.Sprintf("req-%d", f.nextID)
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (shiftrequest.ShiftRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return shiftrequest.ShiftRequest{}, shiftrequest.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, r shiftrequest.ShiftRequest) error {
	existing, ok := f.requests[r.ID]
	if !ok {
		return shiftrequest.ErrRequestNotFound
	}
	existing.PositionID = r.PositionID
	existing.Date = r.Date
	existing.PreferredStartTime = r.PreferredStartTime
	existing.PreferredEndTime = r.PreferredEndTime
	existing.VacationDays = r.VacationDays
	existing.Notes = r.Notes
	f.requests[r.ID] = existing
	return nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return shiftrequest.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeRequestRepo) List(_ context.Context, _ shiftrequest.RequestFilter) ([]shiftrequest.ShiftRequest, error) {
	out := make([]shiftrequest.ShiftRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) SetStatusIfConvertible(_ context.Context, id string) error {
	r, ok := f.requests[id]
	if !ok || !r.Status.Convertible() {
		return shiftrequest.ErrAlreadyProcessed
	}
	r.Status = shiftrequest.StatusConvertedToShift
	f.requests[id] = r
	return nil
}

func (f *fakeRequestRepo) Review(_ context.Context, id string, status shiftrequest.RequestStatus, reviewedBy string, reason *string, deduct bool) error {
	r, ok := f.requests[id]
	if !ok || r.Status != shiftrequest.StatusPending {
		return shiftrequest.ErrAlreadyProcessed
	}
	now := time.Now()
	r.Status = status
	r.ReviewedBy = &reviewedBy
	r.ReviewedAt = &now
	r.RejectionReason = reason
	r.DeductedFromBalance = deduct
	f.requests[id] = r
	return nil
}

func newFixtures(deadline string) (*fakeWeekRepo, *fakeRequestRepo) {
	weekStart := time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC)
	week := schedule.WeekSchedule{
		ID:        "week-1",
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
	}
	if deadline != "" {
		d, _ := time.Parse(time.RFC3339, deadline)
		week.RequestDeadline = &d
	}
	return &fakeWeekRepo{weeks: map[string]schedule.WeekSchedule{"week-1": week}},
		&fakeRequestRepo{requests: map[string]shiftrequest.ShiftRequest{}}
}

func pendingRequest(repo *fakeRequestRepo, userID string, reqType shiftrequest.RequestType) shiftrequest.ShiftRequest {
	r := shiftrequest.ShiftRequest{
		WeekScheduleID: "week-1",
		UserID:         userID,
		Type:           reqType,
		Date:           time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:         shiftrequest.StatusPending,
	}
	if reqType == shiftrequest.TypeTimeOff {
		days := 1
		r.VacationDays = &days
	}
	created, _ := repo.Create(context.Background(), r)
	return created
}

func TestSubmitDeadlineGate(t *testing.T) {
	weekRepo, requestRepo := newFixtures("2025-10-03T23:59:59Z")

	submit := shiftrequest.SubmitRequestRequest{
		WeekScheduleID: "week-1",
		Type:           string(shiftrequest.TypeAvailableAllDay),
		Date:           "2025-10-01",
	}

	t.Run("before the deadline", func(t *testing.T) {
		svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-03T23:59:59Z"))

		resp, err := svc.Submit(context.Background(), submit, "user-1")
		require.NoError(t, err)
		assert.Equal(t, string(shiftrequest.StatusPending), resp.Status)
		assert.Equal(t, "user-1", resp.UserID)
	})

	t.Run("after the deadline", func(t *testing.T) {
		svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-04T00:00:00Z"))

		_, err := svc.Submit(context.Background(), submit, "user-1")
		assert.ErrorIs(t, err, shiftrequest.ErrDeadlinePassed)
	})

	t.Run("week without a deadline never closes", func(t *testing.T) {
		openWeekRepo, openRequestRepo := newFixtures("")
		svc := NewRequestService(nil, openRequestRepo, openWeekRepo, nil, clock.FixedAt("2030-01-01T00:00:00Z"))

		_, err := svc.Submit(context.Background(), submit, "user-1")
		assert.NoError(t, err)
	})
}

func TestSubmitTypeFieldValidation(t *testing.T) {
	weekRepo, requestRepo := newFixtures("")
	svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

	_, err := svc.Submit(context.Background(), shiftrequest.SubmitRequestRequest{
		WeekScheduleID: "week-1",
		Type:           string(shiftrequest.TypeSpecificTime),
		Date:           "2025-10-01",
	}, "user-1")
	assert.Error(t, err, "SPECIFIC_TIME without a preferred interval must fail")

	days := 0
	_, err = svc.Submit(context.Background(), shiftrequest.SubmitRequestRequest{
		WeekScheduleID: "week-1",
		Type:           string(shiftrequest.TypeTimeOff),
		Date:           "2025-10-01",
		VacationDays:   &days,
	}, "user-1")
	assert.Error(t, err, "TIME_OFF without a positive day count must fail")
}

func TestEditGuards(t *testing.T) {
	weekRepo, requestRepo := newFixtures("2025-10-03T23:59:59Z")
	created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeAvailableAllDay)

	notes := "prefer the afternoon"
	patch := shiftrequest.UpdateRequestRequest{Notes: &notes}

	t.Run("owner edits while pending", func(t *testing.T) {
		svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

		resp, err := svc.Edit(context.Background(), created.ID, patch, "user-1")
		require.NoError(t, err)
		require.NotNil(t, resp.Notes)
		assert.Equal(t, notes, *resp.Notes)
	})

	t.Run("another user cannot edit", func(t *testing.T) {
		svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

		_, err := svc.Edit(context.Background(), created.ID, patch, "user-2")
		assert.ErrorIs(t, err, shiftrequest.ErrNotRequestOwner)
	})

	t.Run("deadline closes edits", func(t *testing.T) {
		svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-05T00:00:00Z"))

		_, err := svc.Edit(context.Background(), created.ID, patch, "user-1")
		assert.ErrorIs(t, err, shiftrequest.ErrDeadlinePassed)
	})

	t.Run("processed requests are frozen", func(t *testing.T) {
		r := requestRepo.requests[created.ID]
		r.Status = shiftrequest.StatusApproved
		requestRepo.requests[created.ID] = r

		svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

		_, err := svc.Edit(context.Background(), created.ID, patch, "user-1")
		assert.ErrorIs(t, err, shiftrequest.ErrRequestNotPending)
	})
}

func TestWithdraw(t *testing.T) {
	weekRepo, requestRepo := newFixtures("2025-10-03T23:59:59Z")
	created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeAvailableAllDay)

	svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

	require.NoError(t, svc.Withdraw(context.Background(), created.ID, "user-1"))

	_, err := svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, shiftrequest.ErrRequestNotFound)
}

func TestReview(t *testing.T) {
	weekRepo, requestRepo := newFixtures("")
	svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

	t.Run("approve stamps the reviewer", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)

		resp, err := svc.Review(context.Background(), created.ID, shiftrequest.ReviewRequestRequest{
			Action: shiftrequest.ReviewActionApprove,
		}, "manager-1")
		require.NoError(t, err)
		assert.Equal(t, string(shiftrequest.StatusApproved), resp.Status)
		require.NotNil(t, resp.ReviewedBy)
		assert.Equal(t, "manager-1", *resp.ReviewedBy)
		assert.False(t, resp.DeductedFromBalance)
	})

	t.Run("approving TIME_OFF deducts from the balance", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeTimeOff)

		resp, err := svc.Review(context.Background(), created.ID, shiftrequest.ReviewRequestRequest{
			Action: shiftrequest.ReviewActionApprove,
		}, "manager-1")
		require.NoError(t, err)
		assert.True(t, resp.DeductedFromBalance)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)

		_, err := svc.Review(context.Background(), created.ID, shiftrequest.ReviewRequestRequest{
			Action: shiftrequest.ReviewActionReject,
		}, "manager-1")
		assert.Error(t, err)
	})

	t.Run("reject records the reason", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)
		reason := "shift already covered"

		resp, err := svc.Review(context.Background(), created.ID, shiftrequest.ReviewRequestRequest{
			Action: shiftrequest.ReviewActionReject,
			Reason: &reason,
		}, "manager-1")
		require.NoError(t, err)
		assert.Equal(t, string(shiftrequest.StatusRejected), resp.Status)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, reason, *resp.RejectionReason)
	})

	t.Run("second review loses", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)

		_, err := svc.Review(context.Background(), created.ID, shiftrequest.ReviewRequestRequest{
			Action: shiftrequest.ReviewActionApprove,
		}, "manager-1")
		require.NoError(t, err)

		_, err = svc.Review(context.Background(), created.ID, shiftrequest.ReviewRequestRequest{
			Action: shiftrequest.ReviewActionApprove,
		}, "manager-2")
		assert.ErrorIs(t, err, shiftrequest.ErrAlreadyProcessed)
	})
}

func TestConvertGuards(t *testing.T) {
	weekRepo, requestRepo := newFixtures("")
	svc := NewRequestService(nil, requestRepo, weekRepo, nil, clock.FixedAt("2025-10-01T12:00:00Z"))

	convert := shiftrequest.ConvertRequestRequest{
		StartTime: "2025-10-01T09:00:00Z",
		EndTime:   "2025-10-01T17:00:00Z",
	}

	t.Run("TIME_OFF is never convertible", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeTimeOff)

		_, _, err := svc.Convert(context.Background(), created.ID, convert, "manager-1")
		assert.ErrorIs(t, err, shiftrequest.ErrTimeOffNotConvertible)
	})

	t.Run("rejected requests are terminal", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)
		r := requestRepo.requests[created.ID]
		r.Status = shiftrequest.StatusRejected
		requestRepo.requests[created.ID] = r

		_, _, err := svc.Convert(context.Background(), created.ID, convert, "manager-1")
		assert.ErrorIs(t, err, shiftrequest.ErrNotConvertible)
	})

	t.Run("converted requests cannot convert twice", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)
		r := requestRepo.requests[created.ID]
		r.Status = shiftrequest.StatusConvertedToShift
		requestRepo.requests[created.ID] = r

		_, _, err := svc.Convert(context.Background(), created.ID, convert, "manager-1")
		assert.ErrorIs(t, err, shiftrequest.ErrNotConvertible)
	})

	t.Run("interval must be ordered", func(t *testing.T) {
		created := pendingRequest(requestRepo, "user-1", shiftrequest.TypeSpecificTime)

		_, _, err := svc.Convert(context.Background(), created.ID, shiftrequest.ConvertRequestRequest{
			StartTime: "2025-10-01T17:00:00Z",
			EndTime:   "2025-10-01T09:00:00Z",
		}, "manager-1")
		assert.Error(t, err)
	})
}
