package payfund

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/payroll-backend-go/internal/pkg/validator"
)

type CreateFundTypeRequest struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

func (r *CreateFundTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if rate, ok := validator.IsValidDecimal(r.Rate); !ok {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be a decimal percentage"})
	} else if rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FundTypeResponse struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

func ToFundTypeResponse(ft FundType) FundTypeResponse {
	return FundTypeResponse{
		ID:   ft.ID,
		Name: ft.Name,
		Rate: ft.Rate,
	}
}

type PayFundResponse struct {
	ID         string          `json:"id"`
	PositionID string          `json:"position_id"`
	FundTypeID string          `json:"fund_type_id"`
	PayPeriod  time.Time       `json:"pay_period"`
	BaseSum    decimal.Decimal `json:"base_sum"`
	Sum        decimal.Decimal `json:"sum"`
}

func ToPayFundResponse(pf PayFund) PayFundResponse {
	return PayFundResponse{
		ID:         pf.ID,
		PositionID: pf.PositionID,
		FundTypeID: pf.FundTypeID,
		PayPeriod:  pf.PayPeriod,
		BaseSum:    pf.BaseSum,
		Sum:        pf.Sum,
	}
}
