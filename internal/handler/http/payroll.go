package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/payroll"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
)

type PayrollHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Yearly(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// targetUser resolves the user the summary is for. Employees only read their
// own payroll; managers may pass any user_id.
func (h *PayrollHandlerImpl) targetUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, role, err := currentUser(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return "", false
	}

	if v := r.URL.Query().Get("user_id"); v != "" {
		if !role.IsManagerTier() && v != userID {
			response.Forbidden(w, "Cannot read another user's payroll")
			return "", false
		}
		return v, true
	}
	return userID, true
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// Monthly implements PayrollHandler.
func (h *PayrollHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	now := time.Now()
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return
	}

	summary, err := h.payrollService.MonthlySummary(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Yearly implements PayrollHandler.
func (h *PayrollHandlerImpl) Yearly(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	year, err := queryInt(r, "year", time.Now().Year())
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}

	summary, err := h.payrollService.YearlySummary(r.Context(), userID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Team implements PayrollHandler.
func (h *PayrollHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return
	}

	summary, err := h.payrollService.TeamSummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
