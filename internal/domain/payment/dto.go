package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	PaymentTypeID string          `json:"payment_type_id"`
	PayPeriod     time.Time       `json:"pay_period"`
	AccPeriod     time.Time       `json:"acc_period"`
	DocNumber     int             `json:"doc_number"`
	DocDate       time.Time       `json:"doc_date"`
	DateFrom      time.Time       `json:"date_from"`
	DateTo        time.Time       `json:"date_to"`
	BaseSum       decimal.Decimal `json:"base_sum"`
	Deductions    decimal.Decimal `json:"deductions"`
	PaySum        decimal.Decimal `json:"pay_sum"`
	Funds         decimal.Decimal `json:"funds"`
	Status        string          `json:"status"`
}

func ToResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		PaymentTypeID: p.PaymentTypeID,
		PayPeriod:     p.PayPeriod,
		AccPeriod:     p.AccPeriod,
		DocNumber:     p.DocNumber,
		DocDate:       p.DocDate,
		DateFrom:      p.DateFrom,
		DateTo:        p.DateTo,
		BaseSum:       p.BaseSum,
		Deductions:    p.Deductions,
		PaySum:        p.PaySum,
		Funds:         p.Funds,
		Status:        string(p.Status),
	}
}

type PaymentPositionResponse struct {
	ID         string          `json:"id"`
	PaymentID  string          `json:"payment_id"`
	PositionID string          `json:"position_id"`
	BaseSum    decimal.Decimal `json:"base_sum"`
	Deductions decimal.Decimal `json:"deductions"`
	PaySum     decimal.Decimal `json:"pay_sum"`
	Funds      decimal.Decimal `json:"funds"`
}

func ToPositionResponse(pp PaymentPosition) PaymentPositionResponse {
	return PaymentPositionResponse{
		ID:         pp.ID,
		PaymentID:  pp.PaymentID,
		PositionID: pp.PositionID,
		BaseSum:    pp.BaseSum,
		Deductions: pp.Deductions,
		PaySum:     pp.PaySum,
		Funds:      pp.Funds,
	}
}
