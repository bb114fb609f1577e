package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/attendance"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/payroll"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/shiftrequest"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/timeoff"
	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{user.ErrUserNotFound, http.StatusNotFound},
		{user.ErrManagerAccessRequired, http.StatusForbidden},
		{schedule.ErrWeekScheduleNotFound, http.StatusNotFound},
		{schedule.ErrWeekAlreadyExists, http.StatusConflict},
		{schedule.ErrShiftNotFound, http.StatusNotFound},
		{schedule.ErrShiftOverlap, http.StatusConflict},
		{shiftrequest.ErrRequestNotFound, http.StatusNotFound},
		{shiftrequest.ErrNotRequestOwner, http.StatusForbidden},
		{shiftrequest.ErrRequestNotPending, http.StatusBadRequest},
		{shiftrequest.ErrAlreadyProcessed, http.StatusConflict},
		{shiftrequest.ErrDeadlinePassed, http.StatusBadRequest},
		{shiftrequest.ErrTimeOffNotConvertible, http.StatusBadRequest},
		{shiftrequest.ErrNotConvertible, http.StatusBadRequest},
		{attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{attendance.ErrShiftNotEnded, http.StatusBadRequest},
		{attendance.ErrPlaceholderShift, http.StatusBadRequest},
		{timeoff.ErrTimeOffNotFound, http.StatusNotFound},
		{timeoff.ErrAlreadyProcessed, http.StatusConflict},
		{timeoff.ErrInsufficientBalance, http.StatusBadRequest},
		{payroll.ErrInvalidPeriod, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("%w: 16:00-20:00 collides with existing shift 09:00-17:00", schedule.ErrShiftOverlap))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "collides")
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "week_start", Message: "week_start must be a Monday"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "week_start")
}

func TestHandleErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused",
		"internal details must not leak to clients")
}
