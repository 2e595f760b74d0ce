package position

import (
	"context"
	"time"
)

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	ListByCompany(ctx context.Context, companyID string) ([]Position, error)
	// ListEmployed returns filled positions valid on the given pay period date.
	ListEmployed(ctx context.Context, companyID string, onDate time.Time) ([]Position, error)
	CountEmployees(ctx context.Context, companyID string) (int, error)
	// NextCardNumber allocates the next personnel card number for the company.
	NextCardNumber(ctx context.Context, companyID string) (string, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) error
	Delete(ctx context.Context, id string) error
}
