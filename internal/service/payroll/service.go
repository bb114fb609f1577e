package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/payroll"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/shopspring/decimal"
)

type payrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, userRepo user.UserRepository) payroll.PayrollService {
	return &payrollServiceImpl{
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
	}
}

func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func validPeriod(year, month int) bool {
	return year >= 2000 && year <= 2100 && month >= 1 && month <= 12
}

func (s *payrollServiceImpl) MonthlySummary(ctx context.Context, userID string, year, month int) (payroll.MonthlySummary, error) {
	if !validPeriod(year, month) {
		return payroll.MonthlySummary{}, payroll.ErrInvalidPeriod
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return payroll.MonthlySummary{}, err
	}

	from, to := monthRange(year, month)
	records, err := s.payrollRepo.ListShiftHours(ctx, userID, from, to)
	if err != nil {
		return payroll.MonthlySummary{}, err
	}

	return buildMonthlySummary(u, year, month, records), nil
}

// buildMonthlySummary buckets shift hours by ISO week. A shift belongs to
// exactly one ISO week even when the calendar month splits mid-week, so the
// monthly total is the exact sum of its buckets.
func buildMonthlySummary(u user.User, year, month int, records []payroll.ShiftHours) payroll.MonthlySummary {
	type weekKey struct {
		isoYear int
		isoWeek int
	}

	buckets := make(map[weekKey]*payroll.WeeklyBucket)
	total := decimal.Zero
	for _, r := range records {
		hours := r.Hours()
		total = total.Add(hours)

		isoYear, isoWeek := r.Date.ISOWeek()
		key := weekKey{isoYear, isoWeek}
		b, ok := buckets[key]
		if !ok {
			b = &payroll.WeeklyBucket{ISOYear: isoYear, ISOWeek: isoWeek, TotalHours: decimal.Zero}
			buckets[key] = b
		}
		b.TotalHours = b.TotalHours.Add(hours)
	}

	weeks := make([]payroll.WeeklyBucket, 0, len(buckets))
	for _, b := range buckets {
		b.GrossAmount = b.TotalHours.Mul(u.HourlyRate)
		weeks = append(weeks, *b)
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].ISOYear != weeks[j].ISOYear {
			return weeks[i].ISOYear < weeks[j].ISOYear
		}
		return weeks[i].ISOWeek < weeks[j].ISOWeek
	})

	return payroll.MonthlySummary{
		UserID:      u.ID,
		UserName:    u.Name,
		Year:        year,
		Month:       month,
		HourlyRate:  u.HourlyRate,
		Weeks:       weeks,
		TotalHours:  total,
		GrossAmount: total.Mul(u.HourlyRate),
	}
}

func (s *payrollServiceImpl) YearlySummary(ctx context.Context, userID string, year int) (payroll.YearlySummary, error) {
	if !validPeriod(year, 1) {
		return payroll.YearlySummary{}, payroll.ErrInvalidPeriod
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return payroll.YearlySummary{}, err
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	records, err := s.payrollRepo.ListShiftHours(ctx, userID, from, to)
	if err != nil {
		return payroll.YearlySummary{}, err
	}

	byMonth := make(map[int][]payroll.ShiftHours)
	for _, r := range records {
		byMonth[int(r.Date.Month())] = append(byMonth[int(r.Date.Month())], r)
	}

	summary := payroll.YearlySummary{
		UserID:      u.ID,
		UserName:    u.Name,
		Year:        year,
		HourlyRate:  u.HourlyRate,
		Months:      make([]payroll.MonthlySummary, 0, len(byMonth)),
		TotalHours:  decimal.Zero,
		GrossAmount: decimal.Zero,
	}
	for month := 1; month <= 12; month++ {
		monthRecords, ok := byMonth[month]
		if !ok {
			continue
		}
		ms := buildMonthlySummary(u, year, month, monthRecords)
		summary.Months = append(summary.Months, ms)
		summary.TotalHours = summary.TotalHours.Add(ms.TotalHours)
		summary.GrossAmount = summary.GrossAmount.Add(ms.GrossAmount)
	}

	return summary, nil
}

// TeamSummary aggregates one month across all active users. Users with no
// shifts still count toward the averages.
func (s *payrollServiceImpl) TeamSummary(ctx context.Context, year, month int) (payroll.TeamSummary, error) {
	if !validPeriod(year, month) {
		return payroll.TeamSummary{}, payroll.ErrInvalidPeriod
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return payroll.TeamSummary{}, err
	}

	from, to := monthRange(year, month)
	records, err := s.payrollRepo.ListTeamShiftHours(ctx, from, to)
	if err != nil {
		return payroll.TeamSummary{}, err
	}

	hoursByUser := make(map[string]decimal.Decimal)
	for _, r := range records {
		hoursByUser[r.UserID] = hoursByUser[r.UserID].Add(r.Hours())
	}

	summary := payroll.TeamSummary{
		Year:               year,
		Month:              month,
		EmployeeCount:      len(users),
		Members:            make([]payroll.TeamMemberSummary, 0, len(users)),
		TotalHours:         decimal.Zero,
		TotalGrossAmount:   decimal.Zero,
		AverageHours:       decimal.Zero,
		AverageGrossAmount: decimal.Zero,
	}
	for _, u := range users {
		hours := hoursByUser[u.ID]
		gross := hours.Mul(u.HourlyRate)
		summary.Members = append(summary.Members, payroll.TeamMemberSummary{
			UserID:      u.ID,
			UserName:    u.Name,
			TotalHours:  hours,
			GrossAmount: gross,
		})
		summary.TotalHours = summary.TotalHours.Add(hours)
		summary.TotalGrossAmount = summary.TotalGrossAmount.Add(gross)
	}

	if summary.EmployeeCount > 0 {
		count := decimal.NewFromInt(int64(summary.EmployeeCount))
		summary.AverageHours = summary.TotalHours.Div(count).Round(2)
		summary.AverageGrossAmount = summary.TotalGrossAmount.Div(count).Round(2)
	}

	return summary, nil
}
