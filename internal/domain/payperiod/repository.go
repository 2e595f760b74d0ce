package payperiod

import (
	"context"
	"time"
)

type PayPeriodRepository interface {
	Create(ctx context.Context, period PayPeriod) (PayPeriod, error)
	// GetByCompanyDate looks a period up by its dateFrom, the key the company's
	// current-period pointer uses.
	GetByCompanyDate(ctx context.Context, companyID string, dateFrom time.Time) (PayPeriod, error)
	ListByCompany(ctx context.Context, companyID string) ([]PayPeriod, error)
	CountClosed(ctx context.Context, companyID string) (int, error)
	Close(ctx context.Context, id string) error
}
