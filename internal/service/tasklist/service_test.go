package tasklist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/department"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeCompanyRepo struct {
	company.CompanyRepository
	item company.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	if f.item.ID != id {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return f.item, nil
}

type fakePayPeriodRepo struct {
	payperiod.PayPeriodRepository
	item   payperiod.PayPeriod
	closed int
}

func (f *fakePayPeriodRepo) GetByCompanyDate(_ context.Context, companyID string, dateFrom time.Time) (payperiod.PayPeriod, error) {
	if f.item.CompanyID != companyID || !f.item.DateFrom.Equal(dateFrom) {
		return payperiod.PayPeriod{}, payperiod.ErrPayPeriodNotFound
	}
	return f.item, nil
}

func (f *fakePayPeriodRepo) CountClosed(context.Context, string) (int, error) {
	return f.closed, nil
}

type fakePositionRepo struct {
	position.PositionRepository
	employees int
}

func (f *fakePositionRepo) CountEmployees(context.Context, string) (int, error) {
	return f.employees, nil
}

type fakeDepartmentRepo struct {
	department.DepartmentRepository
	departments int
}

func (f *fakeDepartmentRepo) CountByCompany(context.Context, string) (int, error) {
	return f.departments, nil
}

type fakePaymentRepo struct {
	payment.PaymentRepository
	items []payment.Payment
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

type fakePaymentTypeRepo struct {
	paymenttype.PaymentTypeRepository
	items []paymenttype.PaymentType
}

func (f *fakePaymentTypeRepo) List(context.Context) ([]paymenttype.PaymentType, error) {
	return append([]paymenttype.PaymentType(nil), f.items...), nil
}

type fakeTaskRepo struct {
	items map[string]task.Task
	seq   int
}

func (f *fakeTaskRepo) Create(_ context.Context, t task.Task) (task.Task, error) {
	f.seq++
	t.ID = fmt.Sprintf("task-%d", f.seq)
	f.items[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (task.Task, error) {
	t, ok := f.items[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) ListByCompanyPeriod(_ context.Context, companyID string, _ time.Time) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.items {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) SetStatus(_ context.Context, id string, status task.Status) error {
	t, ok := f.items[id]
	if !ok {
		return task.ErrTaskNotFound
	}
	t.Status = status
	f.items[id] = t
	return nil
}

func (f *fakeTaskRepo) Remove(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fixture struct {
	companies *fakeCompanyRepo
	periods   *fakePayPeriodRepo
	positions *fakePositionRepo
	depts     *fakeDepartmentRepo
	payments  *fakePaymentRepo
	types     *fakePaymentTypeRepo
	tasks     *fakeTaskRepo
	svc       *Service
}

func newFixture(schedule company.PaymentSchedule, periodFrom, periodTo time.Time) *fixture {
	f := &fixture{
		companies: &fakeCompanyRepo{item: company.Company{
			ID:              "comp-1",
			Name:            "Horizon Logistics",
			PaymentSchedule: schedule,
			PayPeriod:       periodFrom,
		}},
		periods: &fakePayPeriodRepo{item: payperiod.PayPeriod{
			ID:        "per-1",
			CompanyID: "comp-1",
			DateFrom:  periodFrom,
			DateTo:    periodTo,
			State:     payperiod.StateOpened,
		}},
		positions: &fakePositionRepo{},
		depts:     &fakeDepartmentRepo{},
		payments:  &fakePaymentRepo{},
		types:     &fakePaymentTypeRepo{},
		tasks:     &fakeTaskRepo{items: map[string]task.Task{}},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewService(log, f.companies, f.periods, f.positions, f.depts, f.payments, f.types, f.tasks)
	return f
}

func newMarchFixture(schedule company.PaymentSchedule) *fixture {
	return newFixture(schedule, date(2026, time.March, 1), date(2026, time.March, 31))
}

func (f *fixture) seedDraftPayment(method paymenttype.CalcMethod) {
	id := fmt.Sprintf("pt-%d", len(f.types.items)+1)
	f.types.items = append(f.types.items, paymenttype.PaymentType{
		ID:           id,
		PaymentGroup: paymenttype.GroupPayments,
		CalcMethod:   method,
	})
	f.payments.items = append(f.payments.items, payment.Payment{
		ID:            fmt.Sprintf("pay-%d", len(f.payments.items)+1),
		CompanyID:     "comp-1",
		PaymentTypeID: id,
		AccPeriod:     f.periods.item.DateFrom,
		Status:        payment.StatusDraft,
	})
}

func (f *fixture) taskTypes() map[task.Type]task.Task {
	out := map[task.Type]task.Task{}
	for _, t := range f.tasks.items {
		out[t.Type] = t
	}
	return out
}

func TestGenerateInitialChecklist(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	byType := f.taskTypes()
	require.Len(t, byType, 7)
	assert.Equal(t, task.StatusTodo, byType[task.TypeFillDepartmentList].Status)
	assert.Equal(t, task.StatusTodo, byType[task.TypeFillPositionList].Status)
	assert.Contains(t, byType, task.TypePostWorkSheet)
	assert.Contains(t, byType, task.TypePostAccrualDocument)
	assert.Contains(t, byType, task.TypeSendApplicationFSS)
	assert.Contains(t, byType, task.TypePostPaymentFSS)
	assert.Contains(t, byType, task.TypeClosePayPeriod)
	assert.NotContains(t, byType, task.TypeSendIncomeTaxReport, "no closed periods to report on yet")
	assert.NotContains(t, byType, task.TypePostAdvancePayment, "no advance draft exists yet")
	assert.NotContains(t, byType, task.TypePostRegularPayment)
}

func TestGenerateIsIdempotent(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))
	first := len(f.tasks.items)
	_, ok := f.tasks.items["task-1"]
	require.True(t, ok)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	assert.Len(t, f.tasks.items, first)
	_, ok = f.tasks.items["task-1"]
	assert.True(t, ok, "unchanged tasks keep their rows across regeneration")
}

func TestGenerateSequenceStrictlyIncreasing(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	seen := map[int]bool{}
	for _, tk := range f.tasks.items {
		assert.Greater(t, tk.SequenceNumber, 0)
		assert.False(t, seen[tk.SequenceNumber], "sequence number %d assigned twice", tk.SequenceNumber)
		seen[tk.SequenceNumber] = true
	}
}

func TestGenerateProtectsManuallyCompletedTasks(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)
	f.tasks.items["task-done"] = task.Task{
		ID:             "task-done",
		CompanyID:      "comp-1",
		Type:           task.TypePostWorkSheet,
		DateFrom:       date(2025, time.December, 1),
		DateTo:         date(2025, time.December, 31),
		SequenceNumber: 5,
		Status:         task.StatusDoneByUser,
	}

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	kept, ok := f.tasks.items["task-done"]
	require.True(t, ok, "a DONE_BY_USER task is never deleted")
	assert.Equal(t, task.StatusDoneByUser, kept.Status)

	workSheets := 0
	for _, tk := range f.tasks.items {
		if tk.Type == task.TypePostWorkSheet {
			workSheets++
		}
		if tk.ID != "task-done" {
			assert.Greater(t, tk.SequenceNumber, 5, "regenerated numbering stays above the manual baseline")
		}
	}
	assert.Equal(t, 1, workSheets, "no replacement task of the completed type is inserted")
}

func TestGenerateAdvanceTaskSkippedOnFifteenDaySchedule(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleEvery15Day)
	f.seedDraftPayment(paymenttype.CalcMethodAdvancePayment)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	assert.NotContains(t, f.taskTypes(), task.TypePostAdvancePayment)
}

func TestGenerateAdvanceTaskDueOnWorkingDay(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)
	f.seedDraftPayment(paymenttype.CalcMethodAdvancePayment)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	byType := f.taskTypes()
	require.Contains(t, byType, task.TypePostAdvancePayment)
	// March 15th 2026 is a Sunday, so the due date is pulled back to Friday.
	assert.True(t, byType[task.TypePostAdvancePayment].DateTo.Equal(date(2026, time.March, 13)))
}

func TestGenerateRegularPaymentTaskWhileDraftExists(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)
	f.seedDraftPayment(paymenttype.CalcMethodRegularPayment)

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))
	require.Contains(t, f.taskTypes(), task.TypePostRegularPayment)

	// The draft got posted, so the next regeneration drops the task.
	f.payments.items[0].Status = payment.StatusAccepted
	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	assert.NotContains(t, f.taskTypes(), task.TypePostRegularPayment)
}

func TestGenerateIncomeTaxReportQuarterRules(t *testing.T) {
	t.Run("third month of quarter with closed periods", func(t *testing.T) {
		f := newMarchFixture(company.PaymentScheduleLastDay)
		f.periods.closed = 2

		require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

		byType := f.taskTypes()
		require.Contains(t, byType, task.TypeSendIncomeTaxReport)
		report := byType[task.TypeSendIncomeTaxReport]
		assert.True(t, report.DateFrom.Equal(date(2026, time.March, 1)))
		assert.True(t, report.DateTo.Equal(date(2026, time.April, 9)), "40 days from month begin, a Thursday")
	})

	t.Run("mid-quarter month", func(t *testing.T) {
		f := newFixture(company.PaymentScheduleLastDay, date(2026, time.February, 1), date(2026, time.February, 28))
		f.periods.closed = 2

		require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

		assert.NotContains(t, f.taskTypes(), task.TypeSendIncomeTaxReport)
	})
}

func TestGeneratePositionListBecomesMoot(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)
	f.positions.employees = 3
	f.depts.departments = 1

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))
	byType := f.taskTypes()
	assert.Equal(t, task.StatusDone, byType[task.TypeFillPositionList].Status)
	assert.Equal(t, task.StatusDone, byType[task.TypeFillDepartmentList].Status)

	f.periods.closed = 1
	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	byType = f.taskTypes()
	assert.NotContains(t, byType, task.TypeFillPositionList, "moot once the company has closed periods")
	assert.NotContains(t, byType, task.TypeFillDepartmentList)
}

func TestGenerateDeletesStaleTasks(t *testing.T) {
	f := newMarchFixture(company.PaymentScheduleLastDay)
	f.tasks.items["task-stale"] = task.Task{
		ID:        "task-stale",
		CompanyID: "comp-1",
		Type:      task.TypePostRegularPayment,
		DateFrom:  date(2026, time.March, 1),
		DateTo:    date(2026, time.March, 31),
		Status:    task.StatusTodo,
	}

	require.NoError(t, f.svc.Generate(context.Background(), "user-1", "comp-1"))

	_, ok := f.tasks.items["task-stale"]
	assert.False(t, ok, "a TODO task whose trigger is gone does not survive regeneration")
}
