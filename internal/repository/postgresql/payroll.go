package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/payroll"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const shiftHoursQuery = `
	SELECT s.id, s.user_id, s.date, s.hours_worked,
		   awh.actual_hours_worked, awh.status
	FROM shifts s
	LEFT JOIN actual_work_hours awh ON awh.shift_id = s.id
	WHERE s.start_time IS NOT NULL AND s.end_time IS NOT NULL
	  AND s.date BETWEEN $1 AND $2
`

func (r *payrollRepositoryImpl) ListShiftHours(ctx context.Context, userID string, from, to time.Time) ([]payroll.ShiftHours, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftHoursQuery + ` AND s.user_id = $3 ORDER BY s.date`

	rows, err := q.Query(ctx, query, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift hours: %w", err)
	}
	defer rows.Close()

	var records []payroll.ShiftHours
	for rows.Next() {
		var sh payroll.ShiftHours
		err := rows.Scan(
			&sh.ShiftID, &sh.UserID, &sh.Date, &sh.PlannedHours,
			&sh.ActualHours, &sh.AttendanceStatus,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, sh)
	}

	return records, rows.Err()
}

func (r *payrollRepositoryImpl) ListTeamShiftHours(ctx context.Context, from, to time.Time) ([]payroll.ShiftHours, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftHoursQuery + ` ORDER BY s.user_id, s.date`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list team shift hours: %w", err)
	}
	defer rows.Close()

	var records []payroll.ShiftHours
	for rows.Next() {
		var sh payroll.ShiftHours
		err := rows.Scan(
			&sh.ShiftID, &sh.UserID, &sh.Date, &sh.PlannedHours,
			&sh.ActualHours, &sh.AttendanceStatus,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, sh)
	}

	return records, rows.Err()
}
