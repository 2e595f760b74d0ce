package position

import (
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	CompanyID  string  `json:"company_id"`
	CardNumber *string `json:"card_number,omitempty"` // allocated when absent
	PersonID   *string `json:"person_id,omitempty"`
	DateFrom   string  `json:"date_from"`
	DateTo     string  `json:"date_to"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "is required"})
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	PersonID *string `json:"person_id,omitempty"`
	DateFrom *string `json:"date_from,omitempty"`
	DateTo   *string `json:"date_to,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DateFrom != nil {
		if _, ok := validator.IsValidDate(*r.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_from", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.DateTo != nil {
		if _, ok := validator.IsValidDate(*r.DateTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_to", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	CardNumber string    `json:"card_number"`
	PersonID   *string   `json:"person_id,omitempty"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
}

func ToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		CardNumber: p.CardNumber,
		PersonID:   p.PersonID,
		DateFrom:   p.DateFrom,
		DateTo:     p.DateTo,
	}
}
