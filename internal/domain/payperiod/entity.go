package payperiod

import "time"

type State string

const (
	StateOpened State = "OPENED"
	StateClosed State = "CLOSED"
)

// PayPeriod is one accounting cycle instance of a company, identified by its
// date range. Closed periods are immutable.
type PayPeriod struct {
	ID        string
	CompanyID string
	DateFrom  time.Time
	DateTo    time.Time
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
}
