package task

import "time"

type Type string

// Generation order of the task list is fixed and meaningful: later generators
// read state implied by earlier ones (see internal/service/tasklist).
const (
	TypeFillDepartmentList  Type = "FILL_DEPARTMENT_LIST"
	TypeFillPositionList    Type = "FILL_POSITION_LIST"
	TypeSendIncomeTaxReport Type = "SEND_INCOME_TAX_REPORT"
	TypePostWorkSheet       Type = "POST_WORK_SHEET"
	TypePostAccrualDocument Type = "POST_ACCRUAL_DOCUMENT"
	TypeSendApplicationFSS  Type = "SEND_APPLICATION_FSS"
	TypePostPaymentFSS      Type = "POST_PAYMENT_FSS"
	TypePostAdvancePayment  Type = "POST_ADVANCE_PAYMENT"
	TypePostRegularPayment  Type = "POST_REGULAR_PAYMENT"
	TypeClosePayPeriod      Type = "CLOSE_PAY_PERIOD"
)

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusDone       Status = "DONE"
	StatusDoneByUser Status = "DONE_BY_USER"
)

// Task is one generated checklist item for a company and pay period.
type Task struct {
	ID             string
	CompanyID      string
	Type           Type
	DateFrom       time.Time
	DateTo         time.Time
	SequenceNumber int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SameKey reports equality on (type, status, dateFrom, dateTo), the merge key
// of the task generation engine.
func (t Task) SameKey(o Task) bool {
	return t.Type == o.Type &&
		t.Status == o.Status &&
		t.DateFrom.Equal(o.DateFrom) &&
		t.DateTo.Equal(o.DateTo)
}
