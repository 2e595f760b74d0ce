package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/handler/http/response"
)

type PositionHandler interface {
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PositionHandlerImpl struct {
	positionService position.PositionService
}

func NewPositionHandler(positionService position.PositionService) PositionHandler {
	return &PositionHandlerImpl{positionService: positionService}
}

// ListByCompany implements PositionHandler.
func (h *PositionHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	positions, err := h.positionService.ListByCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, positions)
}

// Create implements PositionHandler.
func (h *PositionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.positionService.Create(r.Context(), userID(r), req)
	if err != nil {
		slog.Error("Failed to create position", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", created)
}

// GetByID implements PositionHandler.
func (h *PositionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.positionService.GetByID(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Update implements PositionHandler.
func (h *PositionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.positionService.Update(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Failed to update position", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", updated)
}

// Delete implements PositionHandler.
func (h *PositionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.positionService.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete position", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}
