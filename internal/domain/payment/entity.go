package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusAccepted  Status = "ACCEPTED"
)

// Payment is an aggregate payment document for one company and payment type
// over a date range. At most one DRAFT payment exists per (company, payment
// type) pair; the calculation engine preserves this invariant.
type Payment struct {
	ID            string
	CompanyID     string
	PaymentTypeID string
	PayPeriod     time.Time
	AccPeriod     time.Time
	DocNumber     int
	DocDate       time.Time
	DateFrom      time.Time
	DateTo        time.Time
	BaseSum       decimal.Decimal
	Deductions    decimal.Decimal
	PaySum        decimal.Decimal
	Funds         decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentPosition is one position's line item inside a Payment. Within a
// calculation pass two positions are considered the same record when their
// amount tuple matches; row ids never participate in the merge.
type PaymentPosition struct {
	ID         string
	PaymentID  string
	PositionID string
	BaseSum    decimal.Decimal
	Deductions decimal.Decimal
	PaySum     decimal.Decimal
	Funds      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Payment is the owning document, loaded when the repository is asked for
	// relations. The engine reads its PaymentTypeID and Status.
	Payment *Payment
}

// SameAmounts reports tuple equality on (paymentTypeID, baseSum, deductions,
// funds, paySum), the merge key of the calculation engine.
func (p PaymentPosition) SameAmounts(o PaymentPosition) bool {
	return p.Payment != nil && o.Payment != nil &&
		p.Payment.PaymentTypeID == o.Payment.PaymentTypeID &&
		p.BaseSum.Equal(o.BaseSum) &&
		p.Deductions.Equal(o.Deductions) &&
		p.Funds.Equal(o.Funds) &&
		p.PaySum.Equal(o.PaySum)
}
