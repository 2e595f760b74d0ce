package payfund

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundType is a catalog entry for an employer-paid fund contribution, with the
// accrual rate applied to the position's base.
type FundType struct {
	ID        string
	Name      string
	Rate      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayFund is one computed fund contribution for a position in a pay period.
// The fund engine reconciles these by the (fundTypeID, baseSum, sum) tuple,
// never by row id.
type PayFund struct {
	ID         string
	PositionID string
	FundTypeID string
	PayPeriod  time.Time
	BaseSum    decimal.Decimal
	Sum        decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SameAmounts reports tuple equality on (fundTypeID, baseSum, sum).
func (f PayFund) SameAmounts(o PayFund) bool {
	return f.FundTypeID == o.FundTypeID &&
		f.BaseSum.Equal(o.BaseSum) &&
		f.Sum.Equal(o.Sum)
}
