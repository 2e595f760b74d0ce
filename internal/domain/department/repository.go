package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	ListByCompany(ctx context.Context, companyID string) ([]Department, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, id string) error
}
