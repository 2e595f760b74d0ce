package paymenttype

import (
	"github.com/peopledesk/payroll-backend-go/internal/pkg/validator"
)

type CreatePaymentTypeRequest struct {
	Name         string `json:"name"`
	PaymentGroup string `json:"payment_group"`
	CalcMethod   string `json:"calc_method"`
}

func (r *CreatePaymentTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.PaymentGroup, []string{string(GroupPayments), string(GroupTaxes), string(GroupFunds)}) {
		errs = append(errs, validator.ValidationError{Field: "payment_group", Message: "must be 'PAYMENTS', 'TAXES' or 'FUNDS'"})
	}
	// CalcMethod is deliberately not restricted to the known strategies: the
	// engine skips types it has no calculator for.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentTypeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PaymentGroup string `json:"payment_group"`
	CalcMethod   string `json:"calc_method"`
}

func ToResponse(pt PaymentType) PaymentTypeResponse {
	return PaymentTypeResponse{
		ID:           pt.ID,
		Name:         pt.Name,
		PaymentGroup: string(pt.PaymentGroup),
		CalcMethod:   string(pt.CalcMethod),
	}
}
