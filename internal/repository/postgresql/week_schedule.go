package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type weekScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWeekScheduleRepository(db *database.DB) schedule.WeekScheduleRepository {
	return &weekScheduleRepositoryImpl{db: db}
}

func (r *weekScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WeekSchedule) (schedule.WeekSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO week_schedules (id, week_start, week_end, request_deadline, is_published, created_by, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, FALSE, $4, NOW(), NOW())
		RETURNING id, is_published, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, ws.WeekStart, ws.WeekEnd, ws.RequestDeadline, ws.CreatedBy).Scan(
		&ws.ID, &ws.IsPublished, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on week_start
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.WeekSchedule{}, schedule.ErrWeekAlreadyExists
		}
		return schedule.WeekSchedule{}, fmt.Errorf("failed to create week schedule: %w", err)
	}

	return ws, nil
}

func (r *weekScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WeekSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, week_start, week_end, request_deadline, is_published, created_by, created_at, updated_at
		FROM week_schedules
		WHERE id = $1
	`

	var ws schedule.WeekSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.WeekStart, &ws.WeekEnd, &ws.RequestDeadline,
		&ws.IsPublished, &ws.CreatedBy, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WeekSchedule{}, schedule.ErrWeekScheduleNotFound
		}
		return schedule.WeekSchedule{}, fmt.Errorf("failed to get week schedule: %w", err)
	}

	return ws, nil
}

func (r *weekScheduleRepositoryImpl) GetByWeekStart(ctx context.Context, weekStart time.Time) (schedule.WeekSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, week_start, week_end, request_deadline, is_published, created_by, created_at, updated_at
		FROM week_schedules
		WHERE week_start = $1
	`

	var ws schedule.WeekSchedule
	err := q.QueryRow(ctx, query, weekStart).Scan(
		&ws.ID, &ws.WeekStart, &ws.WeekEnd, &ws.RequestDeadline,
		&ws.IsPublished, &ws.CreatedBy, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WeekSchedule{}, schedule.ErrWeekScheduleNotFound
		}
		return schedule.WeekSchedule{}, fmt.Errorf("failed to get week schedule by week start: %w", err)
	}

	return ws, nil
}

func (r *weekScheduleRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]schedule.WeekSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, week_start, week_end, request_deadline, is_published, created_by, created_at, updated_at
		FROM week_schedules
		WHERE week_start <= $2 AND week_end >= $1
		ORDER BY week_start
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list week schedules: %w", err)
	}
	defer rows.Close()

	var weeks []schedule.WeekSchedule
	for rows.Next() {
		var ws schedule.WeekSchedule
		err := rows.Scan(
			&ws.ID, &ws.WeekStart, &ws.WeekEnd, &ws.RequestDeadline,
			&ws.IsPublished, &ws.CreatedBy, &ws.CreatedAt, &ws.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, ws)
	}

	return weeks, rows.Err()
}

func (r *weekScheduleRepositoryImpl) SetPublished(ctx context.Context, id string, published bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE week_schedules
		SET is_published = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, published)
	if err != nil {
		return fmt.Errorf("failed to set published: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrWeekScheduleNotFound
	}

	return nil
}
