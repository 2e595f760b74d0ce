package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	// ListByCompanyPeriod returns the tasks generated for the pay period
	// identified by its dateFrom.
	ListByCompanyPeriod(ctx context.Context, companyID string, onPayPeriodDate time.Time) ([]Task, error)
	SetStatus(ctx context.Context, id string, status Status) error
	Remove(ctx context.Context, id string) error
}
