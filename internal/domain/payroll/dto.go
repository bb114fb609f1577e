package payroll

import "github.com/shopspring/decimal"

// WeeklyBucket is an ISO-week sub-total inside a monthly summary. A shift
// belongs to exactly one ISO week, so monthly totals equal the sum of their
// buckets with no double counting at week boundaries.
type WeeklyBucket struct {
	ISOYear     int             `json:"iso_year"`
	ISOWeek     int             `json:"iso_week"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

type MonthlySummary struct {
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name,omitempty"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Weeks       []WeeklyBucket  `json:"weeks"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

type YearlySummary struct {
	UserID      string           `json:"user_id"`
	UserName    string           `json:"user_name,omitempty"`
	Year        int              `json:"year"`
	HourlyRate  decimal.Decimal  `json:"hourly_rate"`
	Months      []MonthlySummary `json:"months"`
	TotalHours  decimal.Decimal  `json:"total_hours"`
	GrossAmount decimal.Decimal  `json:"gross_amount"`
}

type TeamMemberSummary struct {
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

type TeamSummary struct {
	Year               int                 `json:"year"`
	Month              int                 `json:"month"`
	EmployeeCount      int                 `json:"employee_count"`
	Members            []TeamMemberSummary `json:"members"`
	TotalHours         decimal.Decimal     `json:"total_hours"`
	TotalGrossAmount   decimal.Decimal     `json:"total_gross_amount"`
	AverageHours       decimal.Decimal     `json:"average_hours"`
	AverageGrossAmount decimal.Decimal     `json:"average_gross_amount"`
}
