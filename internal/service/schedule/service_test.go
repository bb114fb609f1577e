package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
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

func (f *fakeWeekRepo) GetByWeekStart(_ context.Context, weekStart time.Time) (schedule.WeekSchedule, error) {
	for _, ws := range f.weeks {
		if ws.WeekStart.Equal(weekStart) {
			return ws, nil
		}
	}
	return schedule.WeekSchedule{}, schedule.ErrWeekScheduleNotFound
}

func (f *fakeWeekRepo) ListByRange(_ context.Context, from, to time.Time) ([]schedule.WeekSchedule, error) {
	var out []schedule.WeekSchedule
	for _, ws := range f.weeks {
		if !ws.WeekStart.Before(from) && !ws.WeekStart.After(to) {
			out = append(out, ws)
		}
	}
	return out, nil
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

type fakeShiftRepo struct {
	shifts map[string]schedule.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, s schedule.Shift) (schedule.Shift, error) {
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) CreatePlaceholders(_ context.Context, _ string, userIDs []string, days []time.Time) (int, error) {
	return len(userIDs) * len(days), nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (schedule.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, s schedule.Shift) error {
	f.shifts[s.ID] = s
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return schedule.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) ListByWeekSchedule(_ context.Context, weekScheduleID string) ([]schedule.Shift, error) {
	var out []schedule.Shift
	for _, s := range f.shifts {
		if s.WeekScheduleID == weekScheduleID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) LockTimedByUserAndDate(_ context.Context, userID string, date time.Time) ([]schedule.Shift, error) {
	var out []schedule.Shift
	for _, s := range f.shifts {
		if s.UserID == userID && s.Date.Equal(date) && !s.IsPlaceholder() {
			out = append(out, s)
		}
	}
	return out, nil
}

func fixtureWeeks() *fakeWeekRepo {
	published := schedule.WeekSchedule{
		ID:          "week-pub",
		WeekStart:   time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC),
		WeekEnd:     time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
		IsPublished: true,
	}
	draft := schedule.WeekSchedule{
		ID:        "week-draft",
		WeekStart: time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
	}
	return &fakeWeekRepo{weeks: map[string]schedule.WeekSchedule{
		published.ID: published,
		draft.ID:     draft,
	}}
}

func TestCreateWeekValidation(t *testing.T) {
	svc := NewScheduleService(nil, fixtureWeeks(), &fakeShiftRepo{shifts: map[string]schedule.Shift{}}, nil, nil, clock.FixedAt("2025-09-01T00:00:00Z"))

	t.Run("week start must be a Monday", func(t *testing.T) {
		_, err := svc.CreateWeek(context.Background(), schedule.CreateWeekScheduleRequest{
			WeekStart: "2025-09-30",
		}, "manager-1")
		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.CreateWeek(context.Background(), schedule.CreateWeekScheduleRequest{
			WeekStart: "30-09-2025",
		}, "manager-1")
		assert.Error(t, err)
	})
}

func TestGetWeekVisibility(t *testing.T) {
	shiftRepo := &fakeShiftRepo{shifts: map[string]schedule.Shift{}}
	svc := NewScheduleService(nil, fixtureWeeks(), shiftRepo, nil, nil, clock.FixedAt("2025-10-01T00:00:00Z"))

	t.Run("published week is visible to everyone", func(t *testing.T) {
		resp, err := svc.GetWeek(context.Background(), "week-pub", false)
		require.NoError(t, err)
		assert.Equal(t, "2025-09-29", resp.WeekStart)
		assert.Equal(t, "2025-10-05", resp.WeekEnd)
	})

	t.Run("draft week is hidden from employees", func(t *testing.T) {
		_, err := svc.GetWeek(context.Background(), "week-draft", false)
		assert.ErrorIs(t, err, schedule.ErrWeekScheduleNotFound)
	})

	t.Run("draft week is visible to managers", func(t *testing.T) {
		resp, err := svc.GetWeek(context.Background(), "week-draft", true)
		require.NoError(t, err)
		assert.False(t, resp.IsPublished)
	})
}

func TestListWeeksFiltersDrafts(t *testing.T) {
	shiftRepo := &fakeShiftRepo{shifts: map[string]schedule.Shift{}}
	svc := NewScheduleService(nil, fixtureWeeks(), shiftRepo, nil, nil, clock.FixedAt("2025-10-01T00:00:00Z"))

	employee, err := svc.ListWeeks(context.Background(), "2025-09-01", "2025-10-31", false)
	require.NoError(t, err)
	require.Len(t, employee, 1)
	assert.Equal(t, "week-pub", employee[0].ID)

	manager, err := svc.ListWeeks(context.Background(), "2025-09-01", "2025-10-31", true)
	require.NoError(t, err)
	assert.Len(t, manager, 2)
}

func TestSetPublished(t *testing.T) {
	shiftRepo := &fakeShiftRepo{shifts: map[string]schedule.Shift{}}
	svc := NewScheduleService(nil, fixtureWeeks(), shiftRepo, nil, nil, clock.FixedAt("2025-10-01T00:00:00Z"))

	resp, err := svc.SetPublished(context.Background(), "week-draft", true)
	require.NoError(t, err)
	assert.True(t, resp.IsPublished)

	resp, err = svc.SetPublished(context.Background(), "week-draft", false)
	require.NoError(t, err)
	assert.False(t, resp.IsPublished)
}

func TestCreateShiftPreconditions(t *testing.T) {
	shiftRepo := &fakeShiftRepo{shifts: map[string]schedule.Shift{}}
	svc := NewScheduleService(nil, fixtureWeeks(), shiftRepo, nil, nil, clock.FixedAt("2025-10-01T00:00:00Z"))

	t.Run("unknown week", func(t *testing.T) {
		_, err := svc.CreateShift(context.Background(), schedule.UpsertShiftRequest{
			WeekScheduleID: "missing",
			UserID:         "user-1",
			Date:           "2025-10-01",
			StartTime:      "2025-10-01T09:00:00Z",
			EndTime:        "2025-10-01T17:00:00Z",
		})
		assert.ErrorIs(t, err, schedule.ErrWeekScheduleNotFound)
	})

	t.Run("reversed interval", func(t *testing.T) {
		_, err := svc.CreateShift(context.Background(), schedule.UpsertShiftRequest{
			WeekScheduleID: "week-pub",
			UserID:         "user-1",
			Date:           "2025-10-01",
			StartTime:      "2025-10-01T17:00:00Z",
			EndTime:        "2025-10-01T09:00:00Z",
		})
		assert.Error(t, err)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		_, err := svc.CreateShift(context.Background(), schedule.UpsertShiftRequest{
			WeekScheduleID: "week-pub",
			UserID:         "user-1",
			Date:           "2025-10-01",
			StartTime:      "2025-10-01T09:00:00Z",
			EndTime:        "2025-10-01T09:00:00Z",
		})
		assert.Error(t, err)
	})
}

func TestDeleteShiftFallsBackToPlaceholder(t *testing.T) {
	start := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 1, 17, 0, 0, 0, time.UTC)
	shiftRepo := &fakeShiftRepo{shifts: map[string]schedule.Shift{
		"shift-1": {
			ID:             "shift-1",
			WeekScheduleID: "week-pub",
			UserID:         "user-1",
			Date:           time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			StartTime:      &start,
			EndTime:        &end,
		},
	}}
	svc := NewScheduleService(nil, fixtureWeeks(), shiftRepo, nil, nil, clock.FixedAt("2025-10-01T00:00:00Z"))

	require.NoError(t, svc.DeleteShift(context.Background(), "shift-1"))
	assert.ErrorIs(t, svc.DeleteShift(context.Background(), "shift-1"), schedule.ErrShiftNotFound)
}
