package postgresql

import (
	"context"
	"fmt"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/timeoff"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.TimeOffRepository {
	return &timeOffRepositoryImpl{db: db}
}

func (r *timeOffRepositoryImpl) Create(ctx context.Context, req timeoff.TimeOffRequest) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_requests (
			id, user_id, time_off_type, start_date, end_date, days_count,
			status, deducted_from_balance, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID, req.Type, req.StartDate, req.EndDate, req.DaysCount, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to create time-off request: %w", err)
	}

	return req, nil
}

func (r *timeOffRepositoryImpl) GetByID(ctx context.Context, id string) (timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tor.id, tor.user_id, tor.time_off_type, tor.start_date, tor.end_date, tor.days_count,
			   tor.status, tor.rejection_reason, tor.deducted_from_balance,
			   tor.reviewed_by, tor.reviewed_at, tor.created_at, tor.updated_at,
			   u.name AS user_name
		FROM time_off_requests tor
		JOIN users u ON tor.user_id = u.id
		WHERE tor.id = $1
	`

	var req timeoff.TimeOffRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate, &req.DaysCount,
		&req.Status, &req.RejectionReason, &req.DeductedFromBalance,
		&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.UserName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOffRequest{}, fmt.Errorf("failed to get time-off request: %w", err)
	}

	return req, nil
}

func (r *timeOffRepositoryImpl) List(ctx context.Context, filter timeoff.TimeOffFilter) ([]timeoff.TimeOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tor.id, tor.user_id, tor.time_off_type, tor.start_date, tor.end_date, tor.days_count,
			   tor.status, tor.rejection_reason, tor.deducted_from_balance,
			   tor.reviewed_by, tor.reviewed_at, tor.created_at, tor.updated_at,
			   u.name AS user_name
		FROM time_off_requests tor
		JOIN users u ON tor.user_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIndex := 1

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND tor.user_id = $%d", argIndex)
		args = append(args, *filter.UserID)
		argIndex++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND tor.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM tor.start_date) = $%d", argIndex)
		args = append(args, *filter.Year)
		argIndex++
	}

	query += " ORDER BY tor.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off requests: %w", err)
	}
	defer rows.Close()

	var requests []timeoff.TimeOffRequest
	for rows.Next() {
		var req timeoff.TimeOffRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate, &req.DaysCount,
			&req.Status, &req.RejectionReason, &req.DeductedFromBalance,
			&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *timeOffRepositoryImpl) Review(ctx context.Context, id string, status timeoff.TimeOffStatus, reviewedBy string, reason *string, deduct bool) error {
	q := GetQuerier(ctx, r.db)

	// Conditional update keeps the status transition and the balance
	// deduction in one statement; a concurrent review sees zero rows.
	query := `
		UPDATE time_off_requests
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(),
			rejection_reason = $4, deducted_from_balance = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	commandTag, err := q.Exec(ctx, query, id, status, reviewedBy, reason, deduct)
	if err != nil {
		return fmt.Errorf("failed to review time-off request: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return timeoff.ErrAlreadyProcessed
	}

	return nil
}

func (r *timeOffRepositoryImpl) SumVacationDays(ctx context.Context, userID string, year int) (timeoff.LedgerSums, error) {
	q := GetQuerier(ctx, r.db)

	// Both leave ledgers contribute to the same vacation balance: multi-day
	// VACATION entries here, single-day TIME_OFF shift requests in the
	// week-schedule ledger. SICK_LEAVE never counts.
	query := `
		SELECT
			COALESCE(SUM(days) FILTER (WHERE used), 0)    AS used_days,
			COALESCE(SUM(days) FILTER (WHERE pending), 0) AS pending_days
		FROM (
			SELECT days_count AS days,
				   status = 'APPROVED' AND deducted_from_balance AS used,
				   status = 'PENDING' AS pending
			FROM time_off_requests
			WHERE user_id = $1 AND time_off_type = 'VACATION'
			  AND EXTRACT(YEAR FROM start_date) = $2
			UNION ALL
			SELECT COALESCE(vacation_days, 0) AS days,
				   status = 'APPROVED' AND deducted_from_balance AS used,
				   status = 'PENDING' AS pending
			FROM shift_requests
			WHERE user_id = $1 AND request_type = 'TIME_OFF'
			  AND EXTRACT(YEAR FROM date) = $2
		) ledger
	`

	var sums timeoff.LedgerSums
	err := q.QueryRow(ctx, query, userID, year).Scan(&sums.UsedDays, &sums.PendingDays)
	if err != nil {
		return timeoff.LedgerSums{}, fmt.Errorf("failed to sum vacation days: %w", err)
	}

	return sums, nil
}
