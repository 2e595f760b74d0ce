package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
)

// PaymentCalc computes the incremental amount owed to the context's position
// under one payment type. Calculate returns false when the strategy does not
// apply, e.g. advance payments on a 15-day schedule.
type PaymentCalc interface {
	Calculate() (payment.PaymentPosition, bool)
}

// newCalcMethod selects the strategy for the context's payment type. An
// unrecognized calc method yields nil: the engine skips the type instead of
// failing the pass.
func newCalcMethod(c Context) PaymentCalc {
	switch c.PaymentType.CalcMethod {
	case paymenttype.CalcMethodRegularPayment:
		return regularCalc{c}
	case paymenttype.CalcMethodAdvancePayment:
		return advanceCalc{c}
	case paymenttype.CalcMethodFastPayment:
		return fastCalc{c}
	}
	return nil
}

func (c Context) accruedBase() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.Payrolls {
		sum = sum.Add(p.BaseSum)
	}
	return sum
}

func (c Context) accruedDeductions() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.Payrolls {
		sum = sum.Add(p.Deductions)
	}
	return sum
}

func (c Context) fundsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, f := range c.PayFunds {
		sum = sum.Add(f.Sum)
	}
	return sum
}

// alreadyProduced is the pay amount the earlier strategies of this pass have
// already claimed for the position.
func (c Context) alreadyProduced() decimal.Decimal {
	sum := decimal.Zero
	for _, pp := range c.Current {
		sum = sum.Add(pp.PaySum)
	}
	return sum
}

// regularCalc pays out the full-period accrual net of deductions, minus
// whatever earlier strategies (advance, fast) already produced in this pass.
type regularCalc struct {
	ctx Context
}

func (r regularCalc) Calculate() (payment.PaymentPosition, bool) {
	pp := NewPaymentPosition(r.ctx)
	pp.BaseSum = r.ctx.accruedBase()
	pp.Deductions = r.ctx.accruedDeductions()
	pp.Funds = r.ctx.fundsTotal()
	pp.PaySum = pp.BaseSum.Sub(pp.Deductions).Sub(r.ctx.alreadyProduced())
	return pp, true
}

// advanceCalcShare is the portion of the accrued base paid out mid-period.
var advanceCalcShare = decimal.NewFromFloat(0.5)

// advanceCalc pays a mid-period pre-payment. Companies on a 15-day schedule
// already pay twice a period, so the advance does not apply there.
type advanceCalc struct {
	ctx Context
}

func (a advanceCalc) Calculate() (payment.PaymentPosition, bool) {
	if a.ctx.Company.PaymentSchedule == company.PaymentScheduleEvery15Day {
		return payment.PaymentPosition{}, false
	}
	pp := NewPaymentPosition(a.ctx)
	pp.BaseSum = a.ctx.accruedBase()
	pp.PaySum = pp.BaseSum.Mul(advanceCalcShare).Round(2)
	return pp, true
}

// fastCalc settles the position off-cycle: everything accrued and not yet
// produced this pass, immediately.
type fastCalc struct {
	ctx Context
}

func (f fastCalc) Calculate() (payment.PaymentPosition, bool) {
	pp := NewPaymentPosition(f.ctx)
	pp.BaseSum = f.ctx.accruedBase()
	pp.Deductions = f.ctx.accruedDeductions()
	pp.PaySum = pp.BaseSum.Sub(pp.Deductions).Sub(f.ctx.alreadyProduced())
	return pp, true
}
