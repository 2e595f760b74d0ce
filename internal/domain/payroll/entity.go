package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one accrual record for a position in a pay period: hours worked
// against the work norm, the accrued base amount and the deductions withheld.
// The calculation strategies read these records; they never write them.
type Payroll struct {
	ID            string
	PositionID    string
	PaymentTypeID string
	PayPeriod     time.Time
	DateFrom      time.Time
	DateTo        time.Time
	Hours         decimal.Decimal
	BaseSum       decimal.Decimal
	Deductions    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
