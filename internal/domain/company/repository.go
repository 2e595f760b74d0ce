package company

import (
	"context"
	"time"
)

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	// SetPayPeriod moves the company's current pay period pointer.
	SetPayPeriod(ctx context.Context, id string, dateFrom time.Time) error
	Delete(ctx context.Context, id string) error
}
