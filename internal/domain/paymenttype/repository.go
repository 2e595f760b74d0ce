package paymenttype

import "context"

type PaymentTypeRepository interface {
	Create(ctx context.Context, pt PaymentType) (PaymentType, error)
	GetByID(ctx context.Context, id string) (PaymentType, error)
	List(ctx context.Context) ([]PaymentType, error)
	ListByGroup(ctx context.Context, group PaymentGroup) ([]PaymentType, error)
	Delete(ctx context.Context, id string) error
}
