package paymenttype

import "time"

// PaymentGroup classifies a payment type. Only the PAYMENTS group participates
// in the payment calculation engine.
type PaymentGroup string

const (
	GroupPayments PaymentGroup = "PAYMENTS"
	GroupTaxes    PaymentGroup = "TAXES"
	GroupFunds    PaymentGroup = "FUNDS"
)

// CalcMethod selects the strategy that computes amounts for a payment type.
type CalcMethod string

const (
	CalcMethodRegularPayment CalcMethod = "REGULAR_PAYMENT"
	CalcMethodAdvancePayment CalcMethod = "ADVANCE_PAYMENT"
	CalcMethodFastPayment    CalcMethod = "FAST_PAYMENT"
)

type PaymentType struct {
	ID           string
	Name         string
	PaymentGroup PaymentGroup
	CalcMethod   CalcMethod
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
