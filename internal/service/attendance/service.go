package attendance

import (
	"context"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/attendance"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/clock"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      schedule.ShiftRepository
	clk            clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo schedule.ShiftRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		clk:            clk,
	}
}

// Record reconciles a finished shift. Placeholders carry no plan to reconcile
// against, and a shift still in progress cannot be recorded yet.
func (s *attendanceServiceImpl) Record(ctx context.Context, shiftID string, req attendance.RecordAttendanceRequest, recordedBy string) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if shift.IsPlaceholder() {
		return attendance.AttendanceResponse{}, attendance.ErrPlaceholderShift
	}
	if !s.clk.Now().After(*shift.EndTime) {
		return attendance.AttendanceResponse{}, attendance.ErrShiftNotEnded
	}

	record := attendance.ActualWorkHours{
		ShiftID:    shift.ID,
		UserID:     shift.UserID,
		Status:     attendance.AttendanceStatus(req.Status),
		Notes:      req.Notes,
		RecordedBy: recordedBy,
	}
	if record.Status == attendance.StatusPresent {
		start, _ := time.Parse(time.RFC3339, *req.ActualStartTime)
		end, _ := time.Parse(time.RFC3339, *req.ActualEndTime)
		hours := attendance.ActualHours(start, end)
		record.ActualStartTime = &start
		record.ActualEndTime = &end
		record.ActualHoursWorked = &hours
	}

	saved, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(saved), nil
}

func (s *attendanceServiceImpl) GetByShift(ctx context.Context, shiftID string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByShiftID(ctx, shiftID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(record), nil
}

func (s *attendanceServiceImpl) ListByWeek(ctx context.Context, weekScheduleID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByWeekSchedule(ctx, weekScheduleID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}

	return responses, nil
}
