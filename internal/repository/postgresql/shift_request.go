package postgresql

import (
	"context"
	"fmt"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/shiftrequest"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRequestRepositoryImpl struct {
	db *database.DB
}

func NewShiftRequestRepository(db *database.DB) shiftrequest.ShiftRequestRepository {
	return &shiftRequestRepositoryImpl{db: db}
}

const shiftRequestColumns = `
	sr.id, sr.week_schedule_id, sr.user_id, sr.position_id, sr.request_type, sr.date,
	sr.preferred_start_time, sr.preferred_end_time, sr.status, sr.notes,
	sr.rejection_reason, sr.vacation_days, sr.deducted_from_balance,
	sr.reviewed_by, sr.reviewed_at, sr.created_at, sr.updated_at
`

func scanShiftRequest(row pgx.Row) (shiftrequest.ShiftRequest, error) {
	var sr shiftrequest.ShiftRequest
	err := row.Scan(
		&sr.ID, &sr.WeekScheduleID, &sr.UserID, &sr.PositionID, &sr.Type, &sr.Date,
		&sr.PreferredStartTime, &sr.PreferredEndTime, &sr.Status, &sr.Notes,
		&sr.RejectionReason, &sr.VacationDays, &sr.DeductedFromBalance,
		&sr.ReviewedBy, &sr.ReviewedAt, &sr.CreatedAt, &sr.UpdatedAt,
	)
	return sr, err
}

func (r *shiftRequestRepositoryImpl) Create(ctx context.Context, req shiftrequest.ShiftRequest) (shiftrequest.ShiftRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_requests (
			id, week_schedule_id, user_id, position_id, request_type, date,
			preferred_start_time, preferred_end_time, status, notes, vacation_days,
			deducted_from_balance, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			FALSE, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.WeekScheduleID, req.UserID, req.PositionID, req.Type, req.Date,
		req.PreferredStartTime, req.PreferredEndTime, req.Status, req.Notes, req.VacationDays,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return shiftrequest.ShiftRequest{}, fmt.Errorf("failed to create shift request: %w", err)
	}

	return req, nil
}

func (r *shiftRequestRepositoryImpl) GetByID(ctx context.Context, id string) (shiftrequest.ShiftRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftRequestColumns + `,
			   u.name AS user_name, p.name AS position_name
		FROM shift_requests sr
		JOIN users u ON sr.user_id = u.id
		LEFT JOIN positions p ON sr.position_id = p.id
		WHERE sr.id = $1
	`

	var sr shiftrequest.ShiftRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&sr.ID, &sr.WeekScheduleID, &sr.UserID, &sr.PositionID, &sr.Type, &sr.Date,
		&sr.PreferredStartTime, &sr.PreferredEndTime, &sr.Status, &sr.Notes,
		&sr.RejectionReason, &sr.VacationDays, &sr.DeductedFromBalance,
		&sr.ReviewedBy, &sr.ReviewedAt, &sr.CreatedAt, &sr.UpdatedAt,
		&sr.UserName, &sr.PositionName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shiftrequest.ShiftRequest{}, shiftrequest.ErrRequestNotFound
		}
		return shiftrequest.ShiftRequest{}, fmt.Errorf("failed to get shift request: %w", err)
	}

	return sr, nil
}

func (r *shiftRequestRepositoryImpl) Update(ctx context.Context, req shiftrequest.ShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_requests
		SET position_id = $2, date = $3, preferred_start_time = $4, preferred_end_time = $5,
			vacation_days = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		req.ID, req.PositionID, req.Date, req.PreferredStartTime, req.PreferredEndTime,
		req.VacationDays, req.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift request: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return shiftrequest.ErrRequestNotFound
	}

	return nil
}

func (r *shiftRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shift_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift request: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return shiftrequest.ErrRequestNotFound
	}

	return nil
}

func (r *shiftRequestRepositoryImpl) List(ctx context.Context, filter shiftrequest.RequestFilter) ([]shiftrequest.ShiftRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftRequestColumns + `,
			   u.name AS user_name, p.name AS position_name
		FROM shift_requests sr
		JOIN users u ON sr.user_id = u.id
		LEFT JOIN positions p ON sr.position_id = p.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIndex := 1

	if filter.WeekScheduleID != nil {
		query += fmt.Sprintf(" AND sr.week_schedule_id = $%d", argIndex)
		args = append(args, *filter.WeekScheduleID)
		argIndex++
	}
	if filter.UserID != nil {
		query += fmt.Sprintf(" AND sr.user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND sr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	query += " ORDER BY sr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift requests: %w", err)
	}
	defer rows.Close()

	var requests []shiftrequest.ShiftRequest
	for rows.Next() {
		var sr shiftrequest.ShiftRequest
		err := rows.Scan(
			&sr.ID, &sr.WeekScheduleID, &sr.UserID, &sr.PositionID, &sr.Type, &sr.Date,
			&sr.PreferredStartTime, &sr.PreferredEndTime, &sr.Status, &sr.Notes,
			&sr.RejectionReason, &sr.VacationDays, &sr.DeductedFromBalance,
			&sr.ReviewedBy, &sr.ReviewedAt, &sr.CreatedAt, &sr.UpdatedAt,
			&sr.UserName, &sr.PositionName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, sr)
	}

	return requests, rows.Err()
}

func (r *shiftRequestRepositoryImpl) SetStatusIfConvertible(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Conditional update: a concurrent conversion or review has already moved
	// the row out of PENDING/APPROVED when no row matches.
	query := `
		UPDATE shift_requests
		SET status = 'CONVERTED_TO_SHIFT', updated_at = NOW()
		WHERE id = $1 AND status IN ('PENDING', 'APPROVED')
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark shift request converted: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return shiftrequest.ErrAlreadyProcessed
	}

	return nil
}

func (r *shiftRequestRepositoryImpl) Review(ctx context.Context, id string, status shiftrequest.RequestStatus, reviewedBy string, reason *string, deduct bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_requests
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(),
			rejection_reason = $4, deducted_from_balance = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	commandTag, err := q.Exec(ctx, query, id, status, reviewedBy, reason, deduct)
	if err != nil {
		return fmt.Errorf("failed to review shift request: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return shiftrequest.ErrAlreadyProcessed
	}

	return nil
}
