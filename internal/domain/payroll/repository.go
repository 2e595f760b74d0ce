package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	ListByPosition(ctx context.Context, positionID string, payPeriod time.Time) ([]Payroll, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}
