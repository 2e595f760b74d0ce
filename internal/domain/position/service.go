package position

import "context"

type PositionService interface {
	ListByCompany(ctx context.Context, companyID string) ([]PositionResponse, error)
	Create(ctx context.Context, userID string, req CreatePositionRequest) (PositionResponse, error)
	GetByID(ctx context.Context, userID, id string) (PositionResponse, error)
	Update(ctx context.Context, userID, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, userID, id string) error
}
