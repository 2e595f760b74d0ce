package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
)

func strategyContext(method paymenttype.CalcMethod, schedule company.PaymentSchedule) Context {
	return Context{
		Company: company.Company{
			ID:              "comp-1",
			PaymentSchedule: schedule,
			PayPeriod:       periodFrom,
		},
		Position: position.Position{ID: "pos-1", CompanyID: "comp-1"},
		PayPeriod: payperiod.PayPeriod{
			ID:        "per-1",
			CompanyID: "comp-1",
			DateFrom:  periodFrom,
			DateTo:    date(2026, 3, 31),
		},
		PaymentType: paymenttype.PaymentType{
			ID:           "pt-1",
			PaymentGroup: paymenttype.GroupPayments,
			CalcMethod:   method,
		},
	}
}

func TestRegularCalcNetsDeductionsAndProduced(t *testing.T) {
	c := strategyContext(paymenttype.CalcMethodRegularPayment, company.PaymentScheduleLastDay)
	c.Payrolls = []payroll.Payroll{
		{BaseSum: dec("800"), Deductions: dec("80")},
		{BaseSum: dec("200"), Deductions: dec("20")},
	}
	c.PayFunds = []payfund.PayFund{
		{Sum: dec("220")},
	}
	c.Current = []payment.PaymentPosition{
		{PaySum: dec("500")},
	}

	pp, ok := newCalcMethod(c).Calculate()

	require.True(t, ok)
	assert.True(t, pp.BaseSum.Equal(dec("1000")))
	assert.True(t, pp.Deductions.Equal(dec("100")))
	assert.True(t, pp.Funds.Equal(dec("220")))
	assert.True(t, pp.PaySum.Equal(dec("400")), "1000 - 100 deductions - 500 already produced")
}

func TestAdvanceCalcHalvesBase(t *testing.T) {
	c := strategyContext(paymenttype.CalcMethodAdvancePayment, company.PaymentScheduleLastDay)
	c.Payrolls = []payroll.Payroll{
		{BaseSum: dec("333.33"), Deductions: dec("33")},
	}

	pp, ok := newCalcMethod(c).Calculate()

	require.True(t, ok)
	assert.True(t, pp.PaySum.Equal(dec("166.67")), "got %s", pp.PaySum)
	assert.True(t, pp.Deductions.IsZero(), "deductions are withheld at the regular payment, not the advance")
	assert.True(t, pp.Funds.IsZero())
}

func TestAdvanceCalcSkippedOnFifteenDaySchedule(t *testing.T) {
	c := strategyContext(paymenttype.CalcMethodAdvancePayment, company.PaymentScheduleEvery15Day)
	c.Payrolls = []payroll.Payroll{
		{BaseSum: dec("1000")},
	}

	_, ok := newCalcMethod(c).Calculate()

	assert.False(t, ok)
}

func TestFastCalcIgnoresFunds(t *testing.T) {
	c := strategyContext(paymenttype.CalcMethodFastPayment, company.PaymentScheduleLastDay)
	c.Payrolls = []payroll.Payroll{
		{BaseSum: dec("1000"), Deductions: dec("130")},
	}
	c.PayFunds = []payfund.PayFund{
		{Sum: dec("220")},
	}

	pp, ok := newCalcMethod(c).Calculate()

	require.True(t, ok)
	assert.True(t, pp.PaySum.Equal(dec("870")))
	assert.True(t, pp.Funds.IsZero())
}

func TestUnknownCalcMethodYieldsNoStrategy(t *testing.T) {
	c := strategyContext(paymenttype.CalcMethod("PROFIT_SHARE"), company.PaymentScheduleLastDay)

	assert.Nil(t, newCalcMethod(c))
}

func TestNewDraftPaymentPrefilledFromContext(t *testing.T) {
	c := strategyContext(paymenttype.CalcMethodRegularPayment, company.PaymentScheduleLastDay)

	doc := NewDraftPayment(c)

	assert.Equal(t, "comp-1", doc.CompanyID)
	assert.Equal(t, "pt-1", doc.PaymentTypeID)
	assert.Equal(t, payment.StatusDraft, doc.Status)
	assert.True(t, doc.PayPeriod.Equal(periodFrom))
	assert.True(t, doc.AccPeriod.Equal(periodFrom))
	assert.True(t, doc.DateTo.Equal(date(2026, 3, 31)))
}
