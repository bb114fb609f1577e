package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/position"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/clock"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/Aggron2k/nexus-hub-sub000/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type scheduleServiceImpl struct {
	db           *database.DB
	weekRepo     schedule.WeekScheduleRepository
	shiftRepo    schedule.ShiftRepository
	userRepo     user.UserRepository
	positionRepo position.PositionRepository
	clk          clock.Clock
}

func NewScheduleService(
	db *database.DB,
	weekRepo schedule.WeekScheduleRepository,
	shiftRepo schedule.ShiftRepository,
	userRepo user.UserRepository,
	positionRepo position.PositionRepository,
	clk clock.Clock,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		db:           db,
		weekRepo:     weekRepo,
		shiftRepo:    shiftRepo,
		userRepo:     userRepo,
		positionRepo: positionRepo,
		clk:          clk,
	}
}

// CreateWeek creates a Monday-anchored week and fans out one placeholder
// shift per active user per day, so every user has an addressable slot
// before any concrete shift exists.
func (s *scheduleServiceImpl) CreateWeek(ctx context.Context, req schedule.CreateWeekScheduleRequest, createdBy string) (schedule.WeekScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekScheduleResponse{}, err
	}

	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)
	week := schedule.WeekSchedule{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		CreatedBy: createdBy,
	}
	if req.RequestDeadline != nil {
		deadline, _ := time.Parse(time.RFC3339, *req.RequestDeadline)
		week.RequestDeadline = &deadline
	}

	var created schedule.WeekSchedule
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.weekRepo.Create(txCtx, week)
		if err != nil {
			return err
		}

		users, err := s.userRepo.ListActive(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list active users: %w", err)
		}
		if len(users) == 0 {
			return nil
		}

		userIDs := make([]string, 0, len(users))
		for _, u := range users {
			userIDs = append(userIDs, u.ID)
		}
		days := make([]time.Time, 0, 7)
		for d := 0; d < 7; d++ {
			days = append(days, weekStart.AddDate(0, 0, d))
		}

		if _, err := s.shiftRepo.CreatePlaceholders(txCtx, created.ID, userIDs, days); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return schedule.WeekScheduleResponse{}, err
	}

	created.Shifts, err = s.shiftRepo.ListByWeekSchedule(ctx, created.ID)
	if err != nil {
		return schedule.WeekScheduleResponse{}, err
	}

	return schedule.NewWeekScheduleResponse(created), nil
}

func (s *scheduleServiceImpl) GetWeek(ctx context.Context, id string, includeUnpublished bool) (schedule.WeekScheduleResponse, error) {
	week, err := s.weekRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.WeekScheduleResponse{}, err
	}
	// Unpublished weeks stay invisible to employees.
	if !week.IsPublished && !includeUnpublished {
		return schedule.WeekScheduleResponse{}, schedule.ErrWeekScheduleNotFound
	}

	week.Shifts, err = s.shiftRepo.ListByWeekSchedule(ctx, week.ID)
	if err != nil {
		return schedule.WeekScheduleResponse{}, err
	}

	return schedule.NewWeekScheduleResponse(week), nil
}

func (s *scheduleServiceImpl) ListWeeks(ctx context.Context, from, to string, includeUnpublished bool) ([]schedule.WeekScheduleResponse, error) {
	fromDate, err := parseRangeDate(from, s.clk.Now().AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}
	toDate, err := parseRangeDate(to, s.clk.Now().AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	weeks, err := s.weekRepo.ListByRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.WeekScheduleResponse, 0, len(weeks))
	for _, w := range weeks {
		if !w.IsPublished && !includeUnpublished {
			continue
		}
		responses = append(responses, schedule.NewWeekScheduleResponse(w))
	}

	return responses, nil
}

func parseRangeDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

func (s *scheduleServiceImpl) SetPublished(ctx context.Context, id string, published bool) (schedule.WeekScheduleResponse, error) {
	if err := s.weekRepo.SetPublished(ctx, id, published); err != nil {
		return schedule.WeekScheduleResponse{}, err
	}
	return s.GetWeek(ctx, id, true)
}

// CreateShift inserts a timed shift after the conflict guard clears the
// interval. The row lock taken by LockTimedByUserAndDate makes the
// check-then-insert atomic against concurrent placements for the same
// user/day.
func (s *scheduleServiceImpl) CreateShift(ctx context.Context, req schedule.UpsertShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	if _, err := s.weekRepo.GetByID(ctx, req.WeekScheduleID); err != nil {
		return schedule.ShiftResponse{}, err
	}
	if err := s.guardPosition(ctx, req.PositionID); err != nil {
		return schedule.ShiftResponse{}, err
	}

	shift := buildShift(req)

	var created schedule.Shift
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.guardConflict(txCtx, shift, ""); err != nil {
			return err
		}

		var err error
		created, err = s.shiftRepo.Create(txCtx, shift)
		return err
	})
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	return s.shiftResponse(ctx, created.ID)
}

// UpdateShift resizes or reassigns an existing shift under the same conflict
// guard, excluding the shift itself from the overlap scan.
func (s *scheduleServiceImpl) UpdateShift(ctx context.Context, shiftID string, req schedule.UpsertShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	if err := s.guardPosition(ctx, req.PositionID); err != nil {
		return schedule.ShiftResponse{}, err
	}

	updated := buildShift(req)
	updated.ID = existing.ID
	updated.WeekScheduleID = existing.WeekScheduleID
	updated.UserID = existing.UserID

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.guardConflict(txCtx, updated, existing.ID); err != nil {
			return err
		}

		return s.shiftRepo.Update(txCtx, updated)
	})
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	return s.shiftResponse(ctx, shiftID)
}

func (s *scheduleServiceImpl) DeleteShift(ctx context.Context, shiftID string) error {
	return s.shiftRepo.Delete(ctx, shiftID)
}

// guardPosition rejects shifts pointing at a retired catalog entry.
func (s *scheduleServiceImpl) guardPosition(ctx context.Context, positionID *string) error {
	if positionID == nil {
		return nil
	}
	p, err := s.positionRepo.GetByID(ctx, *positionID)
	if err != nil {
		return err
	}
	if !p.IsActive {
		return position.ErrPositionInactive
	}
	return nil
}

func (s *scheduleServiceImpl) guardConflict(ctx context.Context, shift schedule.Shift, excludeShiftID string) error {
	start, end, ok := shift.Interval()
	if !ok {
		return nil
	}

	existing, err := s.shiftRepo.LockTimedByUserAndDate(ctx, shift.UserID, shift.Date)
	if err != nil {
		return err
	}

	if hit := schedule.FindConflict(existing, start, end, excludeShiftID); hit != nil {
		return fmt.Errorf("%w: %s-%s collides with existing shift %s-%s",
			schedule.ErrShiftOverlap,
			start.Format("15:04"), end.Format("15:04"),
			hit.StartTime.Format("15:04"), hit.EndTime.Format("15:04"),
		)
	}
	return nil
}

func (s *scheduleServiceImpl) shiftResponse(ctx context.Context, shiftID string) (schedule.ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	return schedule.NewShiftResponse(shift), nil
}

func buildShift(req schedule.UpsertShiftRequest) schedule.Shift {
	date, _ := time.Parse("2006-01-02", req.Date)
	start, _ := time.Parse(time.RFC3339, req.StartTime)
	end, _ := time.Parse(time.RFC3339, req.EndTime)
	hours := schedule.PlannedHours(start, end)

	return schedule.Shift{
		WeekScheduleID: req.WeekScheduleID,
		UserID:         req.UserID,
		Date:           date,
		PositionID:     req.PositionID,
		StartTime:      &start,
		EndTime:        &end,
		HoursWorked:    &hours,
		Notes:          req.Notes,
	}
}
