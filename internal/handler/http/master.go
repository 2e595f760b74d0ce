package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/department"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/handler/http/response"
	"github.com/peopledesk/payroll-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListPaymentTypes(w http.ResponseWriter, r *http.Request)
	CreatePaymentType(w http.ResponseWriter, r *http.Request)
	DeletePaymentType(w http.ResponseWriter, r *http.Request)

	ListFundTypes(w http.ResponseWriter, r *http.Request)
	CreateFundType(w http.ResponseWriter, r *http.Request)
	ListPayFunds(w http.ResponseWriter, r *http.Request)

	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	ListPayrolls(w http.ResponseWriter, r *http.Request)
	CreatePayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ListPaymentTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListPaymentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.masterService.ListPaymentTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

// CreatePaymentType implements MasterHandler.
func (h *MasterHandlerImpl) CreatePaymentType(w http.ResponseWriter, r *http.Request) {
	var req paymenttype.CreatePaymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreatePaymentType(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create payment type", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payment type created successfully", created)
}

// DeletePaymentType implements MasterHandler.
func (h *MasterHandlerImpl) DeletePaymentType(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeletePaymentType(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete payment type", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payment type deleted successfully", nil)
}

// ListFundTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListFundTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.masterService.ListFundTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

// CreateFundType implements MasterHandler.
func (h *MasterHandlerImpl) CreateFundType(w http.ResponseWriter, r *http.Request) {
	var req payfund.CreateFundTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateFundType(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create fund type", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Fund type created successfully", created)
}

// ListPayFunds implements MasterHandler. Same pay_period defaulting as
// ListPayrolls.
func (h *MasterHandlerImpl) ListPayFunds(w http.ResponseWriter, r *http.Request) {
	payPeriod := time.Now().UTC()
	if raw := r.URL.Query().Get("pay_period"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "pay_period must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		payPeriod = parsed
	}

	funds, err := h.masterService.ListPayFunds(r.Context(), chi.URLParam(r, "id"), payPeriod)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, funds)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create department", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", created)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete department", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ListPayrolls implements MasterHandler. The pay_period query parameter
// defaults to the month of the current date when absent.
func (h *MasterHandlerImpl) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	payPeriod := time.Now().UTC()
	if raw := r.URL.Query().Get("pay_period"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "pay_period must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		payPeriod = parsed
	}

	records, err := h.masterService.ListPayrolls(r.Context(), chi.URLParam(r, "id"), payPeriod)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// CreatePayroll implements MasterHandler.
func (h *MasterHandlerImpl) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreatePayroll(r.Context(), userID(r), req)
	if err != nil {
		slog.Error("Failed to create payroll record", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll record created successfully", created)
}

// DeletePayroll implements MasterHandler.
func (h *MasterHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeletePayroll(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to delete payroll record", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}
