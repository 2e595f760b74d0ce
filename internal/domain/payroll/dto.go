package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/payroll-backend-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	PositionID    string `json:"position_id"`
	PaymentTypeID string `json:"payment_type_id"`
	PayPeriod     string `json:"pay_period"`
	DateFrom      string `json:"date_from"`
	DateTo        string `json:"date_to"`
	Hours         string `json:"hours"`
	BaseSum       string `json:"base_sum"`
	Deductions    string `json:"deductions"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PaymentTypeID) {
		errs = append(errs, validator.ValidationError{Field: "payment_type_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.PayPeriod); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	from, okFrom := validator.IsValidDate(r.DateFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, okTo := validator.IsValidDate(r.DateTo)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "date_to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "date_to", Message: "must not precede date_from"})
	}
	if _, ok := validator.IsValidDecimal(r.Hours); !ok {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be a decimal amount"})
	}
	if base, ok := validator.IsValidDecimal(r.BaseSum); !ok {
		errs = append(errs, validator.ValidationError{Field: "base_sum", Message: "must be a decimal amount"})
	} else if base.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_sum", Message: "must not be negative"})
	}
	if ded, ok := validator.IsValidDecimal(r.Deductions); !ok {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be a decimal amount"})
	} else if ded.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID            string          `json:"id"`
	PositionID    string          `json:"position_id"`
	PaymentTypeID string          `json:"payment_type_id"`
	PayPeriod     time.Time       `json:"pay_period"`
	DateFrom      time.Time       `json:"date_from"`
	DateTo        time.Time       `json:"date_to"`
	Hours         decimal.Decimal `json:"hours"`
	BaseSum       decimal.Decimal `json:"base_sum"`
	Deductions    decimal.Decimal `json:"deductions"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:            p.ID,
		PositionID:    p.PositionID,
		PaymentTypeID: p.PaymentTypeID,
		PayPeriod:     p.PayPeriod,
		DateFrom:      p.DateFrom,
		DateTo:        p.DateTo,
		Hours:         p.Hours,
		BaseSum:       p.BaseSum,
		Deductions:    p.Deductions,
	}
}
