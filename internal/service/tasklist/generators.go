package tasklist

import (
	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/workcal"
)

// Context is the read-only snapshot a task generator works on. The engine
// gathers every count and flag up front; generators stay pure functions over
// this state.
type Context struct {
	Company   company.Company
	PayPeriod payperiod.PayPeriod

	Departments   int
	Employees     int
	ClosedPeriods int

	// Draft payment documents present for the period, split by calc method.
	DraftAdvanceExists bool
	DraftRegularExists bool

	Seq *sequence
}

// TaskGenerator produces the checklist items of one task type for the pay
// period. An empty result means the type does not apply right now.
type TaskGenerator interface {
	GetTaskList(c Context) []task.Task
}

// newTask returns a blank TODO task spanning the pay period, pre-filled from
// the context.
func newTask(c Context, typ task.Type) task.Task {
	return task.Task{
		CompanyID:      c.Company.ID,
		Type:           typ,
		DateFrom:       c.PayPeriod.DateFrom,
		DateTo:         c.PayPeriod.DateTo,
		SequenceNumber: c.Seq.Next(),
		Status:         task.StatusTodo,
	}
}

// generatorOrder is fixed and meaningful: later generators' eligibility reads
// state implied by earlier ones (a position list must exist before any
// payroll-posting task is relevant).
var generatorOrder = []TaskGenerator{
	fillDepartmentList{},
	fillPositionList{},
	sendIncomeTaxReport{},
	postWorkSheet{},
	postAccrualDocument{},
	sendApplicationFSS{},
	postPaymentFSS{},
	postAdvancePayment{},
	postRegularPayment{},
	closePayPeriod{},
}

// fillDepartmentList asks for the department catalog to be filled. DONE once a
// department exists; moot (absent) once the company has closed periods behind
// it.
type fillDepartmentList struct{}

func (fillDepartmentList) GetTaskList(c Context) []task.Task {
	t := newTask(c, task.TypeFillDepartmentList)
	if c.Departments > 0 {
		if c.ClosedPeriods > 0 {
			return nil
		}
		t.Status = task.StatusDone
	}
	return []task.Task{t}
}

// fillPositionList mirrors fillDepartmentList for registered employees.
type fillPositionList struct{}

func (fillPositionList) GetTaskList(c Context) []task.Task {
	t := newTask(c, task.TypeFillPositionList)
	if c.Employees > 0 {
		if c.ClosedPeriods > 0 {
			return nil
		}
		t.Status = task.StatusDone
	}
	return []task.Task{t}
}

// sendIncomeTaxReport is due only in the third month of a quarter, once the
// company has closed periods to report on. The due date is 40 calendar days
// from month begin, pulled back to a working day.
type sendIncomeTaxReport struct{}

func (sendIncomeTaxReport) GetTaskList(c Context) []task.Task {
	if int(c.PayPeriod.DateFrom.Month())%3 != 0 {
		return nil
	}
	if c.ClosedPeriods == 0 {
		return nil
	}
	t := newTask(c, task.TypeSendIncomeTaxReport)
	t.DateFrom = workcal.MonthBegin(c.PayPeriod.DateFrom)
	t.DateTo = workcal.WorkDayBeforeOrEqual(t.DateFrom.AddDate(0, 0, 39))
	return []task.Task{t}
}

// postWorkSheet asks for the period's work sheet, due by the last working day.
type postWorkSheet struct{}

func (postWorkSheet) GetTaskList(c Context) []task.Task {
	t := newTask(c, task.TypePostWorkSheet)
	t.DateTo = workcal.WorkDayBeforeOrEqual(c.PayPeriod.DateTo)
	return []task.Task{t}
}

// postAccrualDocument asks for the accrual document, due by the last working
// day.
type postAccrualDocument struct{}

func (postAccrualDocument) GetTaskList(c Context) []task.Task {
	t := newTask(c, task.TypePostAccrualDocument)
	t.DateTo = workcal.WorkDayBeforeOrEqual(c.PayPeriod.DateTo)
	return []task.Task{t}
}

// sendApplicationFSS asks for the social-security funding application.
type sendApplicationFSS struct{}

func (sendApplicationFSS) GetTaskList(c Context) []task.Task {
	t := newTask(c, task.TypeSendApplicationFSS)
	t.DateTo = workcal.WorkDayBeforeOrEqual(c.PayPeriod.DateTo)
	return []task.Task{t}
}

// postPaymentFSS is always on the list for an open period.
type postPaymentFSS struct{}

func (postPaymentFSS) GetTaskList(c Context) []task.Task {
	return []task.Task{newTask(c, task.TypePostPaymentFSS)}
}

// postAdvancePayment asks to post the mid-period advance. Not applicable on a
// 15-day schedule, and only raised while an advance draft actually exists.
type postAdvancePayment struct{}

func (postAdvancePayment) GetTaskList(c Context) []task.Task {
	if c.Company.PaymentSchedule == company.PaymentScheduleEvery15Day {
		return nil
	}
	if !c.DraftAdvanceExists {
		return nil
	}
	t := newTask(c, task.TypePostAdvancePayment)
	t.DateTo = workcal.AdvancePaymentDate(c.PayPeriod.DateFrom)
	return []task.Task{t}
}

// postRegularPayment asks to post the period's wage payment while its draft
// exists.
type postRegularPayment struct{}

func (postRegularPayment) GetTaskList(c Context) []task.Task {
	if !c.DraftRegularExists {
		return nil
	}
	t := newTask(c, task.TypePostRegularPayment)
	t.DateTo = workcal.WorkDayBeforeOrEqual(c.PayPeriod.DateTo)
	return []task.Task{t}
}

// closePayPeriod is the terminal task of every open period.
type closePayPeriod struct{}

func (closePayPeriod) GetTaskList(c Context) []task.Task {
	return []task.Task{newTask(c, task.TypeClosePayPeriod)}
}
