package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/attendance"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	GetByShift(w http.ResponseWriter, r *http.Request)
	ListByWeek(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Record implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.Record(r.Context(), shiftID, req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", record)
}

// GetByShift implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetByShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	record, err := h.attendanceService.GetByShift(r.Context(), shiftID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListByWeek implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByWeek(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "id")
	if weekID == "" {
		response.BadRequest(w, "Week schedule ID is required", nil)
		return
	}

	records, err := h.attendanceService.ListByWeek(r.Context(), weekID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
