package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/position"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PositionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PositionHandlerImpl struct {
	positionService position.PositionService
}

func NewPositionHandler(positionService position.PositionService) PositionHandler {
	return &PositionHandlerImpl{positionService: positionService}
}

// Create implements PositionHandler.
func (h *PositionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create position decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.positionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", position.NewPositionResponse(created))
}

// Get implements PositionHandler.
func (h *PositionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "id")
	if positionID == "" {
		response.BadRequest(w, "Position ID is required", nil)
		return
	}

	p, err := h.positionService.Get(r.Context(), positionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, position.NewPositionResponse(p))
}

// List implements PositionHandler.
func (h *PositionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	positions, err := h.positionService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.NewPositionResponse(p))
	}

	response.Success(w, responses)
}

// Update implements PositionHandler.
func (h *PositionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "id")
	if positionID == "" {
		response.BadRequest(w, "Position ID is required", nil)
		return
	}

	var req position.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update position decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = positionID

	updated, err := h.positionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", position.NewPositionResponse(updated))
}
