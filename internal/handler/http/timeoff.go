package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/timeoff"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeOffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type TimeOffHandlerImpl struct {
	timeOffService timeoff.TimeOffService
}

func NewTimeOffHandler(timeOffService timeoff.TimeOffService) TimeOffHandler {
	return &TimeOffHandlerImpl{timeOffService: timeOffService}
}

// Create implements TimeOffHandler.
func (h *TimeOffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req timeoff.CreateTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create time-off decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.timeOffService.Create(r.Context(), req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time-off request submitted successfully", created)
}

// List implements TimeOffHandler. Employees see their own requests; managers
// may filter by any user.
func (h *TimeOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := timeoff.TimeOffFilter{}
	query := r.URL.Query()

	if v := query.Get("status"); v != "" {
		status := timeoff.TimeOffStatus(v)
		filter.Status = &status
	}
	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		filter.Year = &year
	}

	if role.IsManagerTier() {
		if v := query.Get("user_id"); v != "" {
			filter.UserID = &v
		}
	} else {
		filter.UserID = &userID
	}

	requests, err := h.timeOffService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Review implements TimeOffHandler.
func (h *TimeOffHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Time-off request ID is required", nil)
		return
	}

	var req timeoff.ReviewTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review time-off decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewed, err := h.timeOffService.Review(r.Context(), requestID, req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request reviewed successfully", reviewed)
}

// Balance implements TimeOffHandler. Employees read their own balance;
// managers may query any user's.
func (h *TimeOffHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	userID, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	targetUserID := userID
	if v := r.URL.Query().Get("user_id"); v != "" {
		if !role.IsManagerTier() && v != userID {
			response.Forbidden(w, "Cannot read another user's balance")
			return
		}
		targetUserID = v
	}

	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
	}

	balance, err := h.timeOffService.Balance(r.Context(), targetUserID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
