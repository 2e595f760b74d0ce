package company

import "time"

// PaymentSchedule selects how often a company pays its employees within one
// pay period.
type PaymentSchedule string

const (
	PaymentScheduleLastDay    PaymentSchedule = "LAST_DAY"
	PaymentScheduleEvery15Day PaymentSchedule = "EVERY_15_DAY"
)

type Company struct {
	ID              string
	Name            string
	TaxID           *string
	PaymentSchedule PaymentSchedule
	// PayPeriod is the dateFrom of the company's current pay period. Exactly
	// one period is current at a time.
	PayPeriod time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
