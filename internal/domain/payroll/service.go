package payroll

import "context"

// PayrollService is a read-only aggregator: it never mutates schedule or
// attendance state, and it rounds only at presentation, never in
// intermediate sums.
type PayrollService interface {
	MonthlySummary(ctx context.Context, userID string, year, month int) (MonthlySummary, error)
	YearlySummary(ctx context.Context, userID string, year int) (YearlySummary, error)
	TeamSummary(ctx context.Context, year, month int) (TeamSummary, error)
}
