package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/handler/http/response"
)

type PayPeriodHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type PayPeriodHandlerImpl struct {
	payPeriodService payperiod.PayPeriodService
}

func NewPayPeriodHandler(payPeriodService payperiod.PayPeriodService) PayPeriodHandler {
	return &PayPeriodHandlerImpl{payPeriodService: payPeriodService}
}

// Current implements PayPeriodHandler.
func (h *PayPeriodHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	period, err := h.payPeriodService.Current(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, period)
}

// ListByCompany implements PayPeriodHandler.
func (h *PayPeriodHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	periods, err := h.payPeriodService.ListByCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, periods)
}

// Close implements PayPeriodHandler.
func (h *PayPeriodHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	next, err := h.payPeriodService.Close(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Failed to close pay period", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay period closed", next)
}
