package postgresql

import (
	"context"
	"fmt"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/attendance"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.ActualWorkHours) (attendance.ActualWorkHours, error) {
	q := GetQuerier(ctx, r.db)

	// One record per shift; recording again overwrites the prior outcome.
	query := `
		INSERT INTO actual_work_hours (
			id, shift_id, user_id, actual_start_time, actual_end_time,
			actual_hours_worked, status, notes, recorded_by, recorded_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		)
		ON CONFLICT (shift_id) DO UPDATE SET
			actual_start_time = EXCLUDED.actual_start_time,
			actual_end_time = EXCLUDED.actual_end_time,
			actual_hours_worked = EXCLUDED.actual_hours_worked,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			recorded_by = EXCLUDED.recorded_by,
			recorded_at = NOW(),
			updated_at = NOW()
		RETURNING id, recorded_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ShiftID, a.UserID, a.ActualStartTime, a.ActualEndTime,
		a.ActualHoursWorked, a.Status, a.Notes, a.RecordedBy,
	).Scan(&a.ID, &a.RecordedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.ActualWorkHours{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) GetByShiftID(ctx context.Context, shiftID string) (attendance.ActualWorkHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, user_id, actual_start_time, actual_end_time,
			   actual_hours_worked, status, notes, recorded_by, recorded_at, updated_at
		FROM actual_work_hours
		WHERE shift_id = $1
	`

	var a attendance.ActualWorkHours
	err := q.QueryRow(ctx, query, shiftID).Scan(
		&a.ID, &a.ShiftID, &a.UserID, &a.ActualStartTime, &a.ActualEndTime,
		&a.ActualHoursWorked, &a.Status, &a.Notes, &a.RecordedBy, &a.RecordedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ActualWorkHours{}, attendance.ErrAttendanceNotFound
		}
		return attendance.ActualWorkHours{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) ListByWeekSchedule(ctx context.Context, weekScheduleID string) ([]attendance.ActualWorkHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT awh.id, awh.shift_id, awh.user_id, awh.actual_start_time, awh.actual_end_time,
			   awh.actual_hours_worked, awh.status, awh.notes, awh.recorded_by, awh.recorded_at, awh.updated_at
		FROM actual_work_hours awh
		JOIN shifts s ON awh.shift_id = s.id
		WHERE s.week_schedule_id = $1
		ORDER BY s.date, awh.recorded_at
	`

	rows, err := q.Query(ctx, query, weekScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by week schedule: %w", err)
	}
	defer rows.Close()

	var records []attendance.ActualWorkHours
	for rows.Next() {
		var a attendance.ActualWorkHours
		err := rows.Scan(
			&a.ID, &a.ShiftID, &a.UserID, &a.ActualStartTime, &a.ActualEndTime,
			&a.ActualHoursWorked, &a.Status, &a.Notes, &a.RecordedBy, &a.RecordedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
