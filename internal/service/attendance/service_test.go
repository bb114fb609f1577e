package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/attendance"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.ActualWorkHours
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, a attendance.ActualWorkHours) (attendance.ActualWorkHours, error) {
	a.ID = "awh-" + a.ShiftID
	a.RecordedAt = time.Now()
	f.records[a.ShiftID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByShiftID(_ context.Context, shiftID string) (attendance.ActualWorkHours, error) {
	a, ok := f.records[shiftID]
	if !ok {
		return attendance.ActualWorkHours{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) ListByWeekSchedule(_ context.Context, _ string) ([]attendance.ActualWorkHours, error) {
	out := make([]attendance.ActualWorkHours, 0, len(f.records))
	for _, a := range f.records {
		out = append(out, a)
	}
	return out, nil
}

type fakeShiftRepo struct {
	shifts map[string]schedule.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, s schedule.Shift) (schedule.Shift, error) {
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) CreatePlaceholders(_ context.Context, _ string, _ []string, _ []time.Time) (int, error) {
	return 0, nil
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
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) ListByWeekSchedule(_ context.Context, _ string) ([]schedule.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) LockTimedByUserAndDate(_ context.Context, _ string, _ time.Time) ([]schedule.Shift, error) {
	return nil, nil
}

func fixtureShifts() *fakeShiftRepo {
	start := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 1, 17, 0, 0, 0, time.UTC)
	return &fakeShiftRepo{shifts: map[string]schedule.Shift{
		"shift-1": {
			ID:             "shift-1",
			WeekScheduleID: "week-1",
			UserID:         "user-1",
			Date:           time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			StartTime:      &start,
			EndTime:        &end,
		},
		"placeholder-1": {
			ID:             "placeholder-1",
			WeekScheduleID: "week-1",
			UserID:         "user-1",
			Date:           time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
		},
	}}
}

func strPtr(s string) *string { return &s }

func TestRecordGates(t *testing.T) {
	shiftRepo := fixtureShifts()
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.ActualWorkHours{}}

	present := attendance.RecordAttendanceRequest{
		Status:          string(attendance.StatusPresent),
		ActualStartTime: strPtr("2025-10-01T09:00:00Z"),
		ActualEndTime:   strPtr("2025-10-01T17:00:00Z"),
	}

	t.Run("too early while the shift runs", func(t *testing.T) {
		svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-01T16:00:00Z"))

		_, err := svc.Record(context.Background(), "shift-1", present, "manager-1")
		assert.ErrorIs(t, err, attendance.ErrShiftNotEnded)
	})

	t.Run("too early at the exact end instant", func(t *testing.T) {
		svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-01T17:00:00Z"))

		_, err := svc.Record(context.Background(), "shift-1", present, "manager-1")
		assert.ErrorIs(t, err, attendance.ErrShiftNotEnded)
	})

	t.Run("placeholders cannot be reconciled", func(t *testing.T) {
		svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-03T00:00:00Z"))

		_, err := svc.Record(context.Background(), "placeholder-1", present, "manager-1")
		assert.ErrorIs(t, err, attendance.ErrPlaceholderShift)
	})

	t.Run("unknown shift", func(t *testing.T) {
		svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-03T00:00:00Z"))

		_, err := svc.Record(context.Background(), "missing", present, "manager-1")
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})
}

func TestRecordPresentDerivesHours(t *testing.T) {
	shiftRepo := fixtureShifts()
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.ActualWorkHours{}}
	svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-01T18:00:00Z"))

	// 09:10 to 16:15 is 425 minutes.
	resp, err := svc.Record(context.Background(), "shift-1", attendance.RecordAttendanceRequest{
		Status:          string(attendance.StatusPresent),
		ActualStartTime: strPtr("2025-10-01T09:10:00Z"),
		ActualEndTime:   strPtr("2025-10-01T16:15:00Z"),
	}, "manager-1")
	require.NoError(t, err)

	stored := attendanceRepo.records["shift-1"]
	require.NotNil(t, stored.ActualHoursWorked)
	expected := decimal.NewFromInt(425).Div(decimal.NewFromInt(60))
	assert.True(t, stored.ActualHoursWorked.Equal(expected),
		"got %s, want %s", stored.ActualHoursWorked, expected)
	assert.Equal(t, "manager-1", resp.RecordedBy)
}

func TestRecordSickClearsTimes(t *testing.T) {
	shiftRepo := fixtureShifts()
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.ActualWorkHours{}}
	svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-01T18:00:00Z"))

	resp, err := svc.Record(context.Background(), "shift-1", attendance.RecordAttendanceRequest{
		Status: string(attendance.StatusSick),
	}, "manager-1")
	require.NoError(t, err)
	assert.Nil(t, resp.ActualStartTime)
	assert.Nil(t, resp.ActualEndTime)
	assert.Nil(t, resp.ActualHoursWorked)
	assert.Equal(t, string(attendance.StatusSick), resp.Status)
}

func TestRecordOverwrites(t *testing.T) {
	shiftRepo := fixtureShifts()
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.ActualWorkHours{}}
	svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-01T18:00:00Z"))

	_, err := svc.Record(context.Background(), "shift-1", attendance.RecordAttendanceRequest{
		Status: string(attendance.StatusAbsent),
	}, "manager-1")
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), "shift-1", attendance.RecordAttendanceRequest{
		Status:          string(attendance.StatusPresent),
		ActualStartTime: strPtr("2025-10-01T09:00:00Z"),
		ActualEndTime:   strPtr("2025-10-01T17:00:00Z"),
	}, "manager-2")
	require.NoError(t, err)

	stored, err := svc.GetByShift(context.Background(), "shift-1")
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), stored.Status)
	assert.Equal(t, "manager-2", stored.RecordedBy)
	assert.Len(t, attendanceRepo.records, 1)
}

func TestRecordValidation(t *testing.T) {
	shiftRepo := fixtureShifts()
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.ActualWorkHours{}}
	svc := NewAttendanceService(attendanceRepo, shiftRepo, clock.FixedAt("2025-10-01T18:00:00Z"))

	_, err := svc.Record(context.Background(), "shift-1", attendance.RecordAttendanceRequest{
		Status: string(attendance.StatusPresent),
	}, "manager-1")
	assert.Error(t, err, "PRESENT without actual times must fail")

	_, err = svc.Record(context.Background(), "shift-1", attendance.RecordAttendanceRequest{
		Status:          string(attendance.StatusAbsent),
		ActualStartTime: strPtr("2025-10-01T09:00:00Z"),
	}, "manager-1")
	assert.Error(t, err, "ABSENT with actual times must fail")
}
