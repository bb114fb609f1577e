package timeoff

import (
	"context"
	"fmt"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/timeoff"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
)

type timeOffServiceImpl struct {
	timeOffRepo       timeoff.TimeOffRepository
	userRepo          user.UserRepository
	defaultAnnualDays int
}

func NewTimeOffService(
	timeOffRepo timeoff.TimeOffRepository,
	userRepo user.UserRepository,
	defaultAnnualDays int,
) timeoff.TimeOffService {
	return &timeOffServiceImpl{
		timeOffRepo:       timeOffRepo,
		userRepo:          userRepo,
		defaultAnnualDays: defaultAnnualDays,
	}
}

// Create submits a leave request. VACATION requests are checked against the
// available balance up front so a user cannot queue more pending days than
// the allotment covers. SICK_LEAVE never touches the balance.
func (s *timeOffServiceImpl) Create(ctx context.Context, req timeoff.CreateTimeOffRequest, actingUserID string) (timeoff.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if timeoff.TimeOffType(req.Type) == timeoff.TypeVacation {
		balance, err := s.Balance(ctx, actingUserID, startDate.Year())
		if err != nil {
			return timeoff.TimeOffResponse{}, err
		}
		if req.DaysCount > balance.AvailableDays {
			return timeoff.TimeOffResponse{}, fmt.Errorf("%w: %d days requested, %d available",
				timeoff.ErrInsufficientBalance, req.DaysCount, balance.AvailableDays)
		}
	}

	created, err := s.timeOffRepo.Create(ctx, timeoff.TimeOffRequest{
		UserID:    actingUserID,
		Type:      timeoff.TimeOffType(req.Type),
		StartDate: startDate,
		EndDate:   endDate,
		DaysCount: req.DaysCount,
		Status:    timeoff.StatusPending,
	})
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	return timeoff.NewTimeOffResponse(created), nil
}

func (s *timeOffServiceImpl) Review(ctx context.Context, requestID string, req timeoff.ReviewTimeOffRequest, actingUserID string) (timeoff.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	existing, err := s.timeOffRepo.GetByID(ctx, requestID)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if existing.Status != timeoff.StatusPending {
		return timeoff.TimeOffResponse{}, timeoff.ErrAlreadyProcessed
	}

	switch req.Action {
	case "approve":
		deduct := existing.Type == timeoff.TypeVacation
		err = s.timeOffRepo.Review(ctx, requestID, timeoff.StatusApproved, actingUserID, nil, deduct)
	case "reject":
		err = s.timeOffRepo.Review(ctx, requestID, timeoff.StatusRejected, actingUserID, req.Reason, false)
	}
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	reviewed, err := s.timeOffRepo.GetByID(ctx, requestID)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	return timeoff.NewTimeOffResponse(reviewed), nil
}

func (s *timeOffServiceImpl) List(ctx context.Context, filter timeoff.TimeOffFilter) ([]timeoff.TimeOffResponse, error) {
	requests, err := s.timeOffRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timeoff.TimeOffResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, timeoff.NewTimeOffResponse(r))
	}

	return responses, nil
}

// Balance derives the vacation accounting for one user and year from both
// leave ledgers. The per-user allotment wins over the configured default.
func (s *timeOffServiceImpl) Balance(ctx context.Context, userID string, year int) (timeoff.VacationBalance, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return timeoff.VacationBalance{}, err
	}

	annualDays := u.AnnualVacationDays
	if annualDays <= 0 {
		annualDays = s.defaultAnnualDays
	}

	sums, err := s.timeOffRepo.SumVacationDays(ctx, userID, year)
	if err != nil {
		return timeoff.VacationBalance{}, err
	}

	return timeoff.NewVacationBalance(userID, year, annualDays, sums.UsedDays, sums.PendingDays), nil
}
