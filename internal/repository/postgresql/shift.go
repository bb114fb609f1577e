package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.week_schedule_id, s.user_id, s.date, s.position_id,
	s.start_time, s.end_time, s.hours_worked, s.notes,
	s.created_at, s.updated_at
`

func scanShift(row pgx.Row) (schedule.Shift, error) {
	var s schedule.Shift
	err := row.Scan(
		&s.ID, &s.WeekScheduleID, &s.UserID, &s.Date, &s.PositionID,
		&s.StartTime, &s.EndTime, &s.HoursWorked, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, week_schedule_id, user_id, date, position_id, start_time, end_time, hours_worked, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.WeekScheduleID, s.UserID, s.Date, s.PositionID,
		s.StartTime, s.EndTime, s.HoursWorked, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) CreatePlaceholders(ctx context.Context, weekScheduleID string, userIDs []string, days []time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	// One placeholder per user per day; unnest builds the cross product
	// server-side so a whole week lands in a single statement.
	query := `
		INSERT INTO shifts (id, week_schedule_id, user_id, date, created_at, updated_at)
		SELECT uuidv7(), $1, u.user_id, d.date, NOW(), NOW()
		FROM unnest($2::uuid[]) AS u(user_id)
		CROSS JOIN unnest($3::date[]) AS d(date)
	`

	commandTag, err := q.Exec(ctx, query, weekScheduleID, userIDs, days)
	if err != nil {
		return 0, fmt.Errorf("failed to create placeholder shifts: %w", err)
	}

	return int(commandTag.RowsAffected()), nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `,
			   u.name AS user_name, p.name AS position_name, p.color AS position_color
		FROM shifts s
		JOIN users u ON s.user_id = u.id
		LEFT JOIN positions p ON s.position_id = p.id
		WHERE s.id = $1
	`

	var s schedule.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.WeekScheduleID, &s.UserID, &s.Date, &s.PositionID,
		&s.StartTime, &s.EndTime, &s.HoursWorked, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
		&s.UserName, &s.PositionName, &s.PositionColor,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s schedule.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET position_id = $2, start_time = $3, end_time = $4, hours_worked = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, s.ID, s.PositionID, s.StartTime, s.EndTime, s.HoursWorked, s.Notes)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepositoryImpl) ListByWeekSchedule(ctx context.Context, weekScheduleID string) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `,
			   u.name AS user_name, p.name AS position_name, p.color AS position_color
		FROM shifts s
		JOIN users u ON s.user_id = u.id
		LEFT JOIN positions p ON s.position_id = p.id
		WHERE s.week_schedule_id = $1
		ORDER BY s.date, s.start_time NULLS LAST, u.name
	`

	rows, err := q.Query(ctx, query, weekScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts by week schedule: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		err := rows.Scan(
			&s.ID, &s.WeekScheduleID, &s.UserID, &s.Date, &s.PositionID,
			&s.StartTime, &s.EndTime, &s.HoursWorked, &s.Notes,
			&s.CreatedAt, &s.UpdatedAt,
			&s.UserName, &s.PositionName, &s.PositionColor,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) LockTimedByUserAndDate(ctx context.Context, userID string, date time.Time) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	// FOR UPDATE serializes concurrent conflict checks for the same user/day:
	// the second transaction blocks here until the first commits its insert.
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.user_id = $1 AND s.date = $2
		  AND s.start_time IS NOT NULL AND s.end_time IS NOT NULL
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to lock shifts for user/date: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}
