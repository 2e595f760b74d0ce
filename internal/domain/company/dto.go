package company

import (
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name            string  `json:"name"`
	TaxID           *string `json:"tax_id,omitempty"`
	PaymentSchedule string  `json:"payment_schedule"`
	PayPeriod       string  `json:"pay_period"` // "YYYY-MM-DD", dateFrom of the first period
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.PaymentSchedule, []string{string(PaymentScheduleLastDay), string(PaymentScheduleEvery15Day)}) {
		errs = append(errs, validator.ValidationError{Field: "payment_schedule", Message: "must be 'LAST_DAY' or 'EVERY_15_DAY'"})
	}
	if _, ok := validator.IsValidDate(r.PayPeriod); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name            *string `json:"name,omitempty"`
	TaxID           *string `json:"tax_id,omitempty"`
	PaymentSchedule *string `json:"payment_schedule,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.PaymentSchedule != nil &&
		!validator.IsInSlice(*r.PaymentSchedule, []string{string(PaymentScheduleLastDay), string(PaymentScheduleEvery15Day)}) {
		errs = append(errs, validator.ValidationError{Field: "payment_schedule", Message: "must be 'LAST_DAY' or 'EVERY_15_DAY'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TaxID           *string   `json:"tax_id,omitempty"`
	PaymentSchedule string    `json:"payment_schedule"`
	PayPeriod       string    `json:"pay_period"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		TaxID:           c.TaxID,
		PaymentSchedule: string(c.PaymentSchedule),
		PayPeriod:       c.PayPeriod.Format("2006-01-02"),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
