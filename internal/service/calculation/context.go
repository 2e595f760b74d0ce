package calculation

import (
	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
)

// Context is the read-only snapshot a calculation strategy works on. The
// engine builds a fresh Context per payment type, with copies of the type and
// of the positions produced earlier in the pass, so a strategy can never
// observe or mutate engine-owned state.
type Context struct {
	Company     company.Company
	Position    position.Position
	PayPeriod   payperiod.PayPeriod
	PaymentType paymenttype.PaymentType
	Payrolls    []payroll.Payroll
	PayFunds    []payfund.PayFund
	// Current holds the positions produced by earlier strategies in this pass.
	Current []payment.PaymentPosition
}

// NewDraftPayment returns a blank DRAFT payment document pre-filled from the
// context. The document number and date are assigned only when the engine
// actually creates the payment.
func NewDraftPayment(c Context) payment.Payment {
	return payment.Payment{
		CompanyID:     c.Company.ID,
		PaymentTypeID: c.PaymentType.ID,
		PayPeriod:     c.PayPeriod.DateFrom,
		AccPeriod:     c.PayPeriod.DateFrom,
		DateFrom:      c.PayPeriod.DateFrom,
		DateTo:        c.PayPeriod.DateTo,
		Status:        payment.StatusDraft,
	}
}

// NewPaymentPosition returns a blank line item for the context's position,
// owned by a blank draft payment.
func NewPaymentPosition(c Context) payment.PaymentPosition {
	p := NewDraftPayment(c)
	return payment.PaymentPosition{
		PositionID: c.Position.ID,
		Payment:    &p,
	}
}
