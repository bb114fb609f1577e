package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/shiftrequest"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftRequestHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
}

type ShiftRequestHandlerImpl struct {
	requestService shiftrequest.RequestService
}

func NewShiftRequestHandler(requestService shiftrequest.RequestService) ShiftRequestHandler {
	return &ShiftRequestHandlerImpl{requestService: requestService}
}

// Submit implements ShiftRequestHandler.
func (h *ShiftRequestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req shiftrequest.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.Submit(r.Context(), req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift request submitted successfully", created)
}

// List implements ShiftRequestHandler. Employees see their own requests;
// managers may filter by any user or week.
func (h *ShiftRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := shiftrequest.RequestFilter{}
	query := r.URL.Query()

	if v := query.Get("week_schedule_id"); v != "" {
		filter.WeekScheduleID = &v
	}
	if v := query.Get("status"); v != "" {
		status := shiftrequest.RequestStatus(v)
		filter.Status = &status
	}

	if role.IsManagerTier() {
		if v := query.Get("user_id"); v != "" {
			filter.UserID = &v
		}
	} else {
		filter.UserID = &userID
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Get implements ShiftRequestHandler.
func (h *ShiftRequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Shift request ID is required", nil)
		return
	}

	req, err := h.requestService.Get(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !role.IsManagerTier() && req.UserID != userID {
		response.HandleError(w, shiftrequest.ErrNotRequestOwner)
		return
	}

	response.Success(w, req)
}

// Edit implements ShiftRequestHandler.
func (h *ShiftRequestHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Shift request ID is required", nil)
		return
	}

	var req shiftrequest.UpdateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Edit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.requestService.Edit(r.Context(), requestID, req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift request updated successfully", updated)
}

// Withdraw implements ShiftRequestHandler.
func (h *ShiftRequestHandlerImpl) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Shift request ID is required", nil)
		return
	}

	if err := h.requestService.Withdraw(r.Context(), requestID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift request withdrawn successfully", nil)
}

// Review implements ShiftRequestHandler.
func (h *ShiftRequestHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Shift request ID is required", nil)
		return
	}

	var req shiftrequest.ReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewed, err := h.requestService.Review(r.Context(), requestID, req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift request reviewed successfully", reviewed)
}

type convertResponse struct {
	Request interface{} `json:"request"`
	Shift   interface{} `json:"shift"`
}

// Convert implements ShiftRequestHandler.
func (h *ShiftRequestHandlerImpl) Convert(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Shift request ID is required", nil)
		return
	}

	var req shiftrequest.ConvertRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Convert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	converted, shift, err := h.requestService.Convert(r.Context(), requestID, req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift request converted successfully", convertResponse{
		Request: converted,
		Shift:   shift,
	})
}
