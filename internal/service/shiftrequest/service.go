package shiftrequest

import (
	"context"
	"fmt"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/shiftrequest"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/clock"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
	"github.com/Aggron2k/nexus-hub-sub000/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type requestServiceImpl struct {
	db          *database.DB
	requestRepo shiftrequest.ShiftRequestRepository
	weekRepo    schedule.WeekScheduleRepository
	shiftRepo   schedule.ShiftRepository
	clk         clock.Clock
}

func NewRequestService(
	db *database.DB,
	requestRepo shiftrequest.ShiftRequestRepository,
	weekRepo schedule.WeekScheduleRepository,
	shiftRepo schedule.ShiftRepository,
	clk clock.Clock,
) shiftrequest.RequestService {
	return &requestServiceImpl{
		db:          db,
		requestRepo: requestRepo,
		weekRepo:    weekRepo,
		shiftRepo:   shiftRepo,
		clk:         clk,
	}
}

func (s *requestServiceImpl) Submit(ctx context.Context, req shiftrequest.SubmitRequestRequest, actingUserID string) (shiftrequest.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	week, err := s.weekRepo.GetByID(ctx, req.WeekScheduleID)
	if err != nil {
		return shiftrequest.RequestResponse{}, err
	}
	if week.DeadlinePassed(s.clk.Now()) {
		return shiftrequest.RequestResponse{}, shiftrequest.ErrDeadlinePassed
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	entity := shiftrequest.ShiftRequest{
		WeekScheduleID: req.WeekScheduleID,
		UserID:         actingUserID,
		PositionID:     req.PositionID,
		Type:           shiftrequest.RequestType(req.Type),
		Date:           date,
		Status:         shiftrequest.StatusPending,
		Notes:          req.Notes,
		VacationDays:   req.VacationDays,
	}
	if entity.Type == shiftrequest.TypeSpecificTime {
		start, _ := time.Parse(time.RFC3339, *req.PreferredStartTime)
		end, _ := time.Parse(time.RFC3339, *req.PreferredEndTime)
		entity.PreferredStartTime = &start
		entity.PreferredEndTime = &end
	}

	created, err := s.requestRepo.Create(ctx, entity)
	if err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	return shiftrequest.NewRequestResponse(created), nil
}

// Edit applies a partial update to the caller's own PENDING request, then
// re-checks the merged entity against the per-type field rules.
func (s *requestServiceImpl) Edit(ctx context.Context, requestID string, req shiftrequest.UpdateRequestRequest, actingUserID string) (shiftrequest.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	existing, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return shiftrequest.RequestResponse{}, err
	}
	if err := s.guardOwnerMutation(ctx, existing, actingUserID); err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	merged := applyPatch(existing, req)
	if err := validateMerged(merged); err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	if err := s.requestRepo.Update(ctx, merged); err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	return s.Get(ctx, requestID)
}

func (s *requestServiceImpl) Withdraw(ctx context.Context, requestID string, actingUserID string) error {
	existing, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if err := s.guardOwnerMutation(ctx, existing, actingUserID); err != nil {
		return err
	}

	return s.requestRepo.Delete(ctx, requestID)
}

// guardOwnerMutation enforces the conditions for employee edits and
// withdrawals: the caller owns the request, the request is still PENDING, and
// the week's request deadline has not passed.
func (s *requestServiceImpl) guardOwnerMutation(ctx context.Context, existing shiftrequest.ShiftRequest, actingUserID string) error {
	if existing.UserID != actingUserID {
		return shiftrequest.ErrNotRequestOwner
	}
	if existing.Status != shiftrequest.StatusPending {
		return shiftrequest.ErrRequestNotPending
	}

	week, err := s.weekRepo.GetByID(ctx, existing.WeekScheduleID)
	if err != nil {
		return err
	}
	if week.DeadlinePassed(s.clk.Now()) {
		return shiftrequest.ErrDeadlinePassed
	}

	return nil
}

func (s *requestServiceImpl) Review(ctx context.Context, requestID string, req shiftrequest.ReviewRequestRequest, actingUserID string) (shiftrequest.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	existing, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return shiftrequest.RequestResponse{}, err
	}
	if existing.Status != shiftrequest.StatusPending {
		return shiftrequest.RequestResponse{}, shiftrequest.ErrAlreadyProcessed
	}

	switch req.Action {
	case shiftrequest.ReviewActionApprove:
		// Approving a TIME_OFF request spends vacation days; the deduction is
		// recorded on the row so the balance ledger can pick it up.
		deduct := existing.Type == shiftrequest.TypeTimeOff
		err = s.requestRepo.Review(ctx, requestID, shiftrequest.StatusApproved, actingUserID, nil, deduct)
	case shiftrequest.ReviewActionReject:
		err = s.requestRepo.Review(ctx, requestID, shiftrequest.StatusRejected, actingUserID, req.Reason, false)
	}
	if err != nil {
		return shiftrequest.RequestResponse{}, err
	}

	return s.Get(ctx, requestID)
}

// Convert turns a convertible request into a timed shift. The overlap check,
// the shift insert and the status transition share one transaction; the row
// lock on the user's timed shifts for the day serializes racing conversions.
func (s *requestServiceImpl) Convert(ctx context.Context, requestID string, req shiftrequest.ConvertRequestRequest, actingUserID string) (shiftrequest.RequestResponse, schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, err
	}

	existing, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, err
	}
	if existing.Type == shiftrequest.TypeTimeOff {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, shiftrequest.ErrTimeOffNotConvertible
	}
	if !existing.Status.Convertible() {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, shiftrequest.ErrNotConvertible
	}

	start, _ := time.Parse(time.RFC3339, req.StartTime)
	end, _ := time.Parse(time.RFC3339, req.EndTime)
	hours := schedule.PlannedHours(start, end)

	positionID := existing.PositionID
	if req.PositionID != nil {
		positionID = req.PositionID
	}
	notes := existing.Notes
	if req.Notes != nil {
		notes = req.Notes
	}

	var created schedule.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		locked, err := s.shiftRepo.LockTimedByUserAndDate(txCtx, existing.UserID, existing.Date)
		if err != nil {
			return err
		}
		if hit := schedule.FindConflict(locked, start, end, ""); hit != nil {
			return fmt.Errorf("%w: %s-%s collides with existing shift %s-%s",
				schedule.ErrShiftOverlap,
				start.Format("15:04"), end.Format("15:04"),
				hit.StartTime.Format("15:04"), hit.EndTime.Format("15:04"),
			)
		}

		created, err = s.shiftRepo.Create(txCtx, schedule.Shift{
			WeekScheduleID: existing.WeekScheduleID,
			UserID:         existing.UserID,
			Date:           existing.Date,
			PositionID:     positionID,
			StartTime:      &start,
			EndTime:        &end,
			HoursWorked:    &hours,
			Notes:          notes,
		})
		if err != nil {
			return err
		}

		return s.requestRepo.SetStatusIfConvertible(txCtx, requestID)
	})
	if err != nil {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, err
	}

	converted, err := s.Get(ctx, requestID)
	if err != nil {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, created.ID)
	if err != nil {
		return shiftrequest.RequestResponse{}, schedule.ShiftResponse{}, err
	}

	return converted, schedule.NewShiftResponse(shift), nil
}

func (s *requestServiceImpl) List(ctx context.Context, filter shiftrequest.RequestFilter) ([]shiftrequest.RequestResponse, error) {
	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]shiftrequest.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, shiftrequest.NewRequestResponse(r))
	}

	return responses, nil
}

func (s *requestServiceImpl) Get(ctx context.Context, requestID string) (shiftrequest.RequestResponse, error) {
	r, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return shiftrequest.RequestResponse{}, err
	}
	return shiftrequest.NewRequestResponse(r), nil
}

func applyPatch(existing shiftrequest.ShiftRequest, req shiftrequest.UpdateRequestRequest) shiftrequest.ShiftRequest {
	merged := existing

	if req.PositionID != nil {
		merged.PositionID = req.PositionID
	}
	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		merged.Date = date
	}
	if req.PreferredStartTime != nil {
		start, _ := time.Parse(time.RFC3339, *req.PreferredStartTime)
		merged.PreferredStartTime = &start
	}
	if req.PreferredEndTime != nil {
		end, _ := time.Parse(time.RFC3339, *req.PreferredEndTime)
		merged.PreferredEndTime = &end
	}
	if req.VacationDays != nil {
		merged.VacationDays = req.VacationDays
	}
	if req.Notes != nil {
		merged.Notes = req.Notes
	}

	return merged
}

// validateMerged re-checks the per-type invariants after a partial update,
// since a patch can move only one endpoint of the preferred interval.
func validateMerged(merged shiftrequest.ShiftRequest) error {
	var errs validator.ValidationErrors

	switch merged.Type {
	case shiftrequest.TypeSpecificTime:
		if merged.PreferredStartTime == nil || merged.PreferredEndTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_start_time",
				Message: "preferred_start_time and preferred_end_time are required for SPECIFIC_TIME requests",
			})
		} else if !merged.PreferredStartTime.Before(*merged.PreferredEndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "preferred_end_time",
				Message: "preferred_end_time must be after preferred_start_time",
			})
		}
	case shiftrequest.TypeTimeOff:
		if merged.VacationDays == nil || *merged.VacationDays <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "vacation_days",
				Message: "vacation_days must be a positive integer for TIME_OFF requests",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
