package calculation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCompanyRepo struct {
	items map[string]company.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	f.items[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := f.items[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) List(context.Context) ([]company.Company, error) {
	out := make([]company.Company, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, id string, req company.UpdateCompanyRequest) error {
	c, ok := f.items[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.TaxID != nil {
		c.TaxID = req.TaxID
	}
	if req.PaymentSchedule != nil {
		c.PaymentSchedule = company.PaymentSchedule(*req.PaymentSchedule)
	}
	f.items[id] = c
	return nil
}

func (f *fakeCompanyRepo) SetPayPeriod(_ context.Context, id string, dateFrom time.Time) error {
	c, ok := f.items[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	c.PayPeriod = dateFrom
	f.items[id] = c
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakePositionRepo struct {
	items map[string]position.Position
	seq   int
}

func (f *fakePositionRepo) Create(_ context.Context, p position.Position) (position.Position, error) {
	f.seq++
	p.ID = fmt.Sprintf("pos-%d", f.seq)
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePositionRepo) GetByID(_ context.Context, id string) (position.Position, error) {
	p, ok := f.items[id]
	if !ok {
		return position.Position{}, position.ErrPositionNotFound
	}
	return p, nil
}

func (f *fakePositionRepo) ListByCompany(_ context.Context, companyID string) ([]position.Position, error) {
	var out []position.Position
	for _, p := range f.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePositionRepo) ListEmployed(_ context.Context, companyID string, onDate time.Time) ([]position.Position, error) {
	var out []position.Position
	for _, p := range f.items {
		if p.CompanyID == companyID && p.Employed(onDate) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePositionRepo) CountEmployees(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, p := range f.items {
		if p.CompanyID == companyID && p.PersonID != nil {
			n++
		}
	}
	return n, nil
}

func (f *fakePositionRepo) NextCardNumber(_ context.Context, companyID string) (string, error) {
	n := 0
	for _, p := range f.items {
		if p.CompanyID == companyID {
			n++
		}
	}
	return fmt.Sprintf("%d", n+1), nil
}

func (f *fakePositionRepo) Update(_ context.Context, id string, req position.UpdatePositionRequest) error {
	p, ok := f.items[id]
	if !ok {
		return position.ErrPositionNotFound
	}
	if req.PersonID != nil {
		p.PersonID = req.PersonID
	}
	f.items[id] = p
	return nil
}

func (f *fakePositionRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakePayPeriodRepo struct {
	items map[string]payperiod.PayPeriod
	seq   int
}

func (f *fakePayPeriodRepo) Create(_ context.Context, p payperiod.PayPeriod) (payperiod.PayPeriod, error) {
	f.seq++
	p.ID = fmt.Sprintf("per-%d", f.seq)
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePayPeriodRepo) GetByCompanyDate(_ context.Context, companyID string, dateFrom time.Time) (payperiod.PayPeriod, error) {
	for _, p := range f.items {
		if p.CompanyID == companyID && p.DateFrom.Equal(dateFrom) {
			return p, nil
		}
	}
	return payperiod.PayPeriod{}, payperiod.ErrPayPeriodNotFound
}

func (f *fakePayPeriodRepo) ListByCompany(_ context.Context, companyID string) ([]payperiod.PayPeriod, error) {
	var out []payperiod.PayPeriod
	for _, p := range f.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayPeriodRepo) CountClosed(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, p := range f.items {
		if p.CompanyID == companyID && p.State == payperiod.StateClosed {
			n++
		}
	}
	return n, nil
}

func (f *fakePayPeriodRepo) Close(_ context.Context, id string) error {
	p, ok := f.items[id]
	if !ok {
		return payperiod.ErrPayPeriodNotFound
	}
	p.State = payperiod.StateClosed
	f.items[id] = p
	return nil
}

type fakePaymentTypeRepo struct {
	items []paymenttype.PaymentType
	seq   int
}

func (f *fakePaymentTypeRepo) Create(_ context.Context, pt paymenttype.PaymentType) (paymenttype.PaymentType, error) {
	f.seq++
	pt.ID = fmt.Sprintf("pt-%d", f.seq)
	f.items = append(f.items, pt)
	return pt, nil
}

func (f *fakePaymentTypeRepo) GetByID(_ context.Context, id string) (paymenttype.PaymentType, error) {
	for _, pt := range f.items {
		if pt.ID == id {
			return pt, nil
		}
	}
	return paymenttype.PaymentType{}, paymenttype.ErrPaymentTypeNotFound
}

func (f *fakePaymentTypeRepo) List(context.Context) ([]paymenttype.PaymentType, error) {
	return append([]paymenttype.PaymentType(nil), f.items...), nil
}

func (f *fakePaymentTypeRepo) ListByGroup(_ context.Context, group paymenttype.PaymentGroup) ([]paymenttype.PaymentType, error) {
	var out []paymenttype.PaymentType
	for _, pt := range f.items {
		if pt.PaymentGroup == group {
			out = append(out, pt)
		}
	}
	return out, nil
}

func (f *fakePaymentTypeRepo) Delete(_ context.Context, id string) error {
	for i, pt := range f.items {
		if pt.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return paymenttype.ErrPaymentTypeNotFound
}

type fakePayrollRepo struct {
	items map[string]payroll.Payroll
	seq   int

	// failFor simulates a storage failure for one position.
	failFor string
}

func (f *fakePayrollRepo) Create(_ context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	f.seq++
	p.ID = fmt.Sprintf("pr-%d", f.seq)
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Payroll, error) {
	p, ok := f.items[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) ListByPosition(_ context.Context, positionID string, payPeriod time.Time) ([]payroll.Payroll, error) {
	if f.failFor != "" && f.failFor == positionID {
		return nil, fmt.Errorf("storage unavailable")
	}
	var out []payroll.Payroll
	for _, p := range f.items {
		if p.PositionID == positionID && p.PayPeriod.Equal(payPeriod) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.items, id)
	}
	return nil
}

type fakePayFundRepo struct {
	items map[string]payfund.PayFund
	seq   int
}

func (f *fakePayFundRepo) Create(_ context.Context, p payfund.PayFund) (payfund.PayFund, error) {
	f.seq++
	p.ID = fmt.Sprintf("pf-%d", f.seq)
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePayFundRepo) ListByPosition(_ context.Context, positionID string, payPeriod time.Time) ([]payfund.PayFund, error) {
	var out []payfund.PayFund
	for _, p := range f.items {
		if p.PositionID == positionID && p.PayPeriod.Equal(payPeriod) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayFundRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.items, id)
	}
	return nil
}

type fakePaymentRepo struct {
	items     map[string]payment.Payment
	seq       int
	positions *fakePaymentPosRepo
}

func (f *fakePaymentRepo) Create(_ context.Context, p payment.Payment) (payment.Payment, error) {
	f.seq++
	p.ID = fmt.Sprintf("pay-%d", f.seq)
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id string) (payment.Payment, error) {
	p, ok := f.items[id]
	if !ok {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) FindDraft(_ context.Context, companyID, paymentTypeID string) (payment.Payment, error) {
	for _, p := range f.items {
		if p.CompanyID == companyID && p.PaymentTypeID == paymentTypeID && p.Status == payment.StatusDraft {
			return p, nil
		}
	}
	return payment.Payment{}, payment.ErrPaymentNotFound
}

func (f *fakePaymentRepo) ListByCompany(_ context.Context, companyID string, accPeriod *time.Time, status *payment.Status) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range f.items {
		if p.CompanyID != companyID {
			continue
		}
		if accPeriod != nil && !p.AccPeriod.Equal(*accPeriod) {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentRepo) NextDocNumber(_ context.Context, companyID string, payPeriod time.Time) (int, error) {
	max := 0
	for _, p := range f.items {
		if p.CompanyID == companyID && p.PayPeriod.Equal(payPeriod) && p.DocNumber > max {
			max = p.DocNumber
		}
	}
	return max + 1, nil
}

func (f *fakePaymentRepo) UpdateTotals(_ context.Context, id string) error {
	p, ok := f.items[id]
	if !ok {
		return payment.ErrPaymentNotFound
	}
	base, ded, pay, funds := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, pp := range f.positions.items {
		if pp.PaymentID == id {
			base = base.Add(pp.BaseSum)
			ded = ded.Add(pp.Deductions)
			pay = pay.Add(pp.PaySum)
			funds = funds.Add(pp.Funds)
		}
	}
	p.BaseSum, p.Deductions, p.PaySum, p.Funds = base, ded, pay, funds
	f.items[id] = p
	return nil
}

func (f *fakePaymentRepo) SetStatus(_ context.Context, id string, status payment.Status) error {
	p, ok := f.items[id]
	if !ok {
		return payment.ErrPaymentNotFound
	}
	p.Status = status
	f.items[id] = p
	return nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakePaymentPosRepo struct {
	items    map[string]payment.PaymentPosition
	seq      int
	payments *fakePaymentRepo
}

func (f *fakePaymentPosRepo) Create(_ context.Context, pp payment.PaymentPosition) (payment.PaymentPosition, error) {
	f.seq++
	pp.ID = fmt.Sprintf("pp-%d", f.seq)
	pp.Payment = nil
	f.items[pp.ID] = pp
	return pp, nil
}

func (f *fakePaymentPosRepo) ListByPosition(_ context.Context, positionID string, payPeriod time.Time) ([]payment.PaymentPosition, error) {
	var out []payment.PaymentPosition
	for _, pp := range f.items {
		if pp.PositionID != positionID {
			continue
		}
		doc, ok := f.payments.items[pp.PaymentID]
		if !ok || !doc.AccPeriod.Equal(payPeriod) {
			continue
		}
		pp.Payment = &doc
		out = append(out, pp)
	}
	return out, nil
}

func (f *fakePaymentPosRepo) ListByPayment(_ context.Context, paymentID string) ([]payment.PaymentPosition, error) {
	var out []payment.PaymentPosition
	for _, pp := range f.items {
		if pp.PaymentID != paymentID {
			continue
		}
		if doc, ok := f.payments.items[pp.PaymentID]; ok {
			pp.Payment = &doc
		}
		out = append(out, pp)
	}
	return out, nil
}

func (f *fakePaymentPosRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.items, id)
	}
	return nil
}

type fixture struct {
	companies    *fakeCompanyRepo
	positions    *fakePositionRepo
	periods      *fakePayPeriodRepo
	paymentTypes *fakePaymentTypeRepo
	payments     *fakePaymentRepo
	paymentPos   *fakePaymentPosRepo
	payrolls     *fakePayrollRepo
	payFunds     *fakePayFundRepo
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		companies:    &fakeCompanyRepo{items: map[string]company.Company{}},
		positions:    &fakePositionRepo{items: map[string]position.Position{}},
		periods:      &fakePayPeriodRepo{items: map[string]payperiod.PayPeriod{}},
		paymentTypes: &fakePaymentTypeRepo{},
		payments:     &fakePaymentRepo{items: map[string]payment.Payment{}},
		paymentPos:   &fakePaymentPosRepo{items: map[string]payment.PaymentPosition{}},
		payrolls:     &fakePayrollRepo{items: map[string]payroll.Payroll{}},
		payFunds:     &fakePayFundRepo{items: map[string]payfund.PayFund{}},
	}
	f.payments.positions = f.paymentPos
	f.paymentPos.payments = f.payments
	f.svc = NewService(
		discardLogger(),
		f.companies, f.positions, f.periods, f.paymentTypes,
		f.payments, f.paymentPos, f.payrolls, f.payFunds,
	)
	return f
}

var periodFrom = date(2026, time.March, 1)

func (f *fixture) seedCompany(schedule company.PaymentSchedule) company.Company {
	c := company.Company{
		ID:              "comp-1",
		Name:            "Horizon Logistics",
		PaymentSchedule: schedule,
		PayPeriod:       periodFrom,
	}
	f.companies.items[c.ID] = c
	f.periods.items["per-1"] = payperiod.PayPeriod{
		ID:        "per-1",
		CompanyID: c.ID,
		DateFrom:  periodFrom,
		DateTo:    date(2026, time.March, 31),
		State:     payperiod.StateOpened,
	}
	return c
}

func (f *fixture) seedPosition(companyID string) position.Position {
	f.positions.seq++
	personID := fmt.Sprintf("person-%d", f.positions.seq)
	p := position.Position{
		ID:         fmt.Sprintf("pos-%d", f.positions.seq),
		CompanyID:  companyID,
		CardNumber: fmt.Sprintf("%d", f.positions.seq),
		PersonID:   &personID,
		DateFrom:   date(2020, time.January, 1),
		DateTo:     date(2030, time.December, 31),
	}
	f.positions.items[p.ID] = p
	return p
}

func (f *fixture) seedPaymentType(id string, method paymenttype.CalcMethod) paymenttype.PaymentType {
	pt := paymenttype.PaymentType{
		ID:           id,
		Name:         id,
		PaymentGroup: paymenttype.GroupPayments,
		CalcMethod:   method,
	}
	f.paymentTypes.items = append(f.paymentTypes.items, pt)
	return pt
}

func (f *fixture) seedPayroll(positionID, paymentTypeID, base, deductions string) {
	f.payrolls.seq++
	p := payroll.Payroll{
		ID:            fmt.Sprintf("pr-%d", f.payrolls.seq),
		PositionID:    positionID,
		PaymentTypeID: paymentTypeID,
		PayPeriod:     periodFrom,
		DateFrom:      periodFrom,
		DateTo:        date(2026, time.March, 31),
		BaseSum:       dec(base),
		Deductions:    dec(deductions),
	}
	f.payrolls.items[p.ID] = p
}
