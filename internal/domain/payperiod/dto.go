package payperiod

import "time"

type PayPeriodResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	State     string    `json:"state"`
}

func ToResponse(p PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		DateFrom:  p.DateFrom,
		DateTo:    p.DateTo,
		State:     string(p.State),
	}
}
