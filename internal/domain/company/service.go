package company

import "context"

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, userID string, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, userID, id string) (CompanyResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, userID, id string) error
	// Calculate publishes a company.calculate event, re-running the payment,
	// fund and totals chain for the company's current pay period.
	Calculate(ctx context.Context, userID, id string) error
}
