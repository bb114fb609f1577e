package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/schedule"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	CreateWeek(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	ListWeeks(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// CreateWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateWeek(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req schedule.CreateWeekScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	week, err := h.scheduleService.CreateWeek(r.Context(), req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Week schedule created successfully", week)
}

// GetWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	_, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	weekID := chi.URLParam(r, "id")
	if weekID == "" {
		response.BadRequest(w, "Week schedule ID is required", nil)
		return
	}

	week, err := h.scheduleService.GetWeek(r.Context(), weekID, role.IsManagerTier())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// ListWeeks implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListWeeks(w http.ResponseWriter, r *http.Request) {
	_, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	weeks, err := h.scheduleService.ListWeeks(r.Context(), from, to, role.IsManagerTier())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, weeks)
}

// Publish implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "id")
	if weekID == "" {
		response.BadRequest(w, "Week schedule ID is required", nil)
		return
	}

	var req schedule.PublishWeekScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Publish decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	week, err := h.scheduleService.SetPublished(r.Context(), weekID, req.IsPublished)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week schedule updated successfully", week)
}

// CreateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shift, err := h.scheduleService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", shift)
}

// UpdateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req schedule.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shift, err := h.scheduleService.UpdateShift(r.Context(), shiftID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", shift)
}

// DeleteShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.scheduleService.DeleteShift(r.Context(), shiftID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}
