package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/department"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrNameExists):
		Conflict(w, "Company name already exists")

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrCardNumberExists):
		Conflict(w, "Position card number already exists")
	case errors.Is(err, position.ErrInvalidDateRange):
		BadRequest(w, "Position date range is invalid", nil)

	// Pay period domain errors
	case errors.Is(err, payperiod.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payperiod.ErrPayPeriodAlreadyClosed):
		Conflict(w, "Pay period already closed")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrPaymentPositionNotFound):
		NotFound(w, "Payment position not found")
	case errors.Is(err, payment.ErrPaymentNotDraft):
		Conflict(w, "Payment is not in draft status")

	// Catalog domain errors
	case errors.Is(err, paymenttype.ErrPaymentTypeNotFound):
		NotFound(w, "Payment type not found")
	case errors.Is(err, payfund.ErrFundTypeNotFound):
		NotFound(w, "Fund type not found")
	case errors.Is(err, payfund.ErrPayFundNotFound):
		NotFound(w, "Pay fund record not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
