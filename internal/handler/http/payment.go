package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	ListByCompany(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Positions(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// ListByCompany implements PaymentHandler. Optional query filters: acc_period
// (YYYY-MM-DD) and status.
func (h *PaymentHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	var accPeriod *time.Time
	if raw := r.URL.Query().Get("acc_period"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "acc_period must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		accPeriod = &parsed
	}

	var status *payment.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := payment.Status(raw)
		switch s {
		case payment.StatusDraft, payment.StatusSubmitted, payment.StatusAccepted:
			status = &s
		default:
			response.BadRequest(w, "status must be 'DRAFT', 'SUBMITTED' or 'ACCEPTED'", nil)
			return
		}
	}

	payments, err := h.paymentService.ListByCompany(r.Context(), chi.URLParam(r, "id"), accPeriod, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payments)
}

// GetByID implements PaymentHandler.
func (h *PaymentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.paymentService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Positions implements PaymentHandler.
func (h *PaymentHandlerImpl) Positions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.paymentService.Positions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, positions)
}

type setPaymentStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus implements PaymentHandler.
func (h *PaymentHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setPaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := payment.Status(req.Status)
	switch status {
	case payment.StatusDraft, payment.StatusSubmitted, payment.StatusAccepted:
	default:
		response.BadRequest(w, "status must be 'DRAFT', 'SUBMITTED' or 'ACCEPTED'", nil)
		return
	}

	updated, err := h.paymentService.SetStatus(r.Context(), userID(r), chi.URLParam(r, "id"), status)
	if err != nil {
		slog.Error("Failed to set payment status", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payment status updated", updated)
}

// Delete implements PaymentHandler.
func (h *PaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.paymentService.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete payment", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payment deleted successfully", nil)
}
