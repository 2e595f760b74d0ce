package payment

import (
	"context"
	"time"
)

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	// FindDraft returns the single DRAFT payment for (companyID,
	// paymentTypeID), or ErrPaymentNotFound.
	FindDraft(ctx context.Context, companyID, paymentTypeID string) (Payment, error)
	ListByCompany(ctx context.Context, companyID string, accPeriod *time.Time, status *Status) ([]Payment, error)
	// NextDocNumber allocates the next document number within (companyID,
	// payPeriod).
	NextDocNumber(ctx context.Context, companyID string, payPeriod time.Time) (int, error)
	// UpdateTotals recomputes the payment's aggregate sums from its positions.
	UpdateTotals(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type PaymentPositionRepository interface {
	Create(ctx context.Context, pp PaymentPosition) (PaymentPosition, error)
	// ListByPosition returns the position's line items for payments whose
	// accounting period matches payPeriod, with the owning Payment loaded.
	ListByPosition(ctx context.Context, positionID string, payPeriod time.Time) ([]PaymentPosition, error)
	ListByPayment(ctx context.Context, paymentID string) ([]PaymentPosition, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}
