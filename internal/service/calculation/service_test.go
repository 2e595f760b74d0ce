package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
)

func TestCalculateCompanyCreatesDraftPayment(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pos := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(pos.ID, pt.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	require.Len(t, f.payments.items, 1)
	for _, doc := range f.payments.items {
		assert.Equal(t, payment.StatusDraft, doc.Status)
		assert.Equal(t, pt.ID, doc.PaymentTypeID)
		assert.Equal(t, 1, doc.DocNumber)
		assert.True(t, doc.DocDate.Equal(periodFrom))
		assert.True(t, doc.BaseSum.Equal(dec("1000")))
		assert.True(t, doc.PaySum.Equal(dec("1000")))
	}
	require.Len(t, f.paymentPos.items, 1)
	for _, pp := range f.paymentPos.items {
		assert.Equal(t, pos.ID, pp.PositionID)
		assert.True(t, pp.PaySum.Equal(dec("1000")))
	}
}

func TestCalculateCompanyIsIdempotent(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pos := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(pos.ID, pt.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))
	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	require.Len(t, f.paymentPos.items, 1)
	_, ok := f.paymentPos.items["pp-1"]
	assert.True(t, ok, "the original line item must survive the second pass untouched")
	assert.Len(t, f.payments.items, 1)
}

func TestCalculateCompanyDeletesStaleDraft(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pos := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(pos.ID, pt.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))
	require.Len(t, f.paymentPos.items, 1)

	// The accrual disappears, so the draft produced from it must go too.
	f.payrolls.items = map[string]payroll.Payroll{}

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	assert.Empty(t, f.paymentPos.items)
	assert.Empty(t, f.payments.items, "a draft payment with no positions left is removed")
}

func TestCalculateCompanyInsertsDeltaAfterAcceptance(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pos := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(pos.ID, pt.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	// The 1000 draft gets accepted, then the accrual grows to 1200. Only the
	// outstanding 200 may be inserted, under a fresh draft.
	require.NoError(t, f.payments.SetStatus(context.Background(), "pay-1", payment.StatusAccepted))
	f.seedPayroll(pos.ID, pt.ID, "200", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	require.Len(t, f.payments.items, 2)
	drafts := 0
	for _, doc := range f.payments.items {
		if doc.Status == payment.StatusDraft {
			drafts++
			assert.True(t, doc.PaySum.Equal(dec("200")), "draft holds the delta, got %s", doc.PaySum)
		} else {
			assert.True(t, doc.PaySum.Equal(dec("1000")))
		}
	}
	assert.Equal(t, 1, drafts)
	assert.Len(t, f.paymentPos.items, 2)
}

func TestCalculateCompanyAdvanceSkippedOnFifteenDaySchedule(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleEvery15Day)
	pos := f.seedPosition(c.ID)
	adv := f.seedPaymentType("pt-advance", paymenttype.CalcMethodAdvancePayment)
	reg := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(pos.ID, reg.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	require.Len(t, f.paymentPos.items, 1)
	require.Len(t, f.payments.items, 1)
	for _, doc := range f.payments.items {
		assert.Equal(t, reg.ID, doc.PaymentTypeID)
		assert.NotEqual(t, adv.ID, doc.PaymentTypeID)
		assert.True(t, doc.PaySum.Equal(dec("1000")), "no advance was withheld")
	}
}

func TestCalculateCompanyAdvanceThenRegularSplit(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pos := f.seedPosition(c.ID)
	adv := f.seedPaymentType("pt-advance", paymenttype.CalcMethodAdvancePayment)
	reg := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(pos.ID, reg.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	require.Len(t, f.payments.items, 2)
	byType := map[string]payment.Payment{}
	for _, doc := range f.payments.items {
		byType[doc.PaymentTypeID] = doc
	}
	require.Contains(t, byType, adv.ID)
	require.Contains(t, byType, reg.ID)
	assert.True(t, byType[adv.ID].PaySum.Equal(dec("500")))
	assert.True(t, byType[reg.ID].PaySum.Equal(dec("500")), "regular nets out what the advance already produced")
}

func TestCalculateCompanyUnknownCalcMethodSkipped(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pos := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-custom", paymenttype.CalcMethod("PROFIT_SHARE"))
	f.seedPayroll(pos.ID, pt.ID, "1000", "0")

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	assert.Empty(t, f.payments.items)
	assert.Empty(t, f.paymentPos.items)
}

func TestCalculateCompanyClosedPeriodRejected(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	require.NoError(t, f.periods.Close(context.Background(), "per-1"))

	err := f.svc.CalculateCompany(context.Background(), "user-1", c.ID)
	assert.ErrorIs(t, err, payperiod.ErrPayPeriodAlreadyClosed)
}

func TestCalculateCompanyKeepsSucceededPositions(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	good := f.seedPosition(c.ID)
	bad := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(good.ID, pt.ID, "1000", "0")
	f.seedPayroll(bad.ID, pt.ID, "2000", "0")
	f.payrolls.failFor = bad.ID

	err := f.svc.CalculateCompany(context.Background(), "user-1", c.ID)

	require.Error(t, err)
	assert.ErrorContains(t, err, bad.ID)
	require.Len(t, f.paymentPos.items, 1)
	for _, pp := range f.paymentPos.items {
		assert.Equal(t, good.ID, pp.PositionID)
	}
}

func TestCalculatePositionOnlyTouchesThatPosition(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	first := f.seedPosition(c.ID)
	second := f.seedPosition(c.ID)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	f.seedPayroll(first.ID, pt.ID, "1000", "0")
	f.seedPayroll(second.ID, pt.ID, "800", "0")

	require.NoError(t, f.svc.CalculatePosition(context.Background(), "user-1", first.ID))

	require.Len(t, f.paymentPos.items, 1)
	for _, pp := range f.paymentPos.items {
		assert.Equal(t, first.ID, pp.PositionID)
	}
}

func TestCalculatePositionUnknownPosition(t *testing.T) {
	f := newFixture()
	f.seedCompany(company.PaymentScheduleLastDay)

	err := f.svc.CalculatePosition(context.Background(), "user-1", "pos-404")
	require.Error(t, err)
}

func TestCalculateCompanyDraftUniquenessAcrossPositions(t *testing.T) {
	f := newFixture()
	c := f.seedCompany(company.PaymentScheduleLastDay)
	pt := f.seedPaymentType("pt-regular", paymenttype.CalcMethodRegularPayment)
	for i := 0; i < 3; i++ {
		pos := f.seedPosition(c.ID)
		f.seedPayroll(pos.ID, pt.ID, "1000", "0")
	}

	require.NoError(t, f.svc.CalculateCompany(context.Background(), "user-1", c.ID))

	drafts := 0
	for _, doc := range f.payments.items {
		if doc.Status == payment.StatusDraft && doc.PaymentTypeID == pt.ID {
			drafts++
			assert.True(t, doc.PaySum.Equal(dec("3000")))
		}
	}
	assert.Equal(t, 1, drafts, "all positions share the one draft per payment type")
	assert.Len(t, f.paymentPos.items, 3)
}
