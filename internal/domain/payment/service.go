package payment

import (
	"context"
	"time"
)

type PaymentService interface {
	ListByCompany(ctx context.Context, companyID string, accPeriod *time.Time, status *Status) ([]PaymentResponse, error)
	GetByID(ctx context.Context, id string) (PaymentResponse, error)
	Positions(ctx context.Context, paymentID string) ([]PaymentPositionResponse, error)
	// SetStatus moves a document between DRAFT, SUBMITTED and ACCEPTED.
	SetStatus(ctx context.Context, userID, id string, status Status) (PaymentResponse, error)
	// Delete removes a document; only drafts may be deleted.
	Delete(ctx context.Context, userID, id string) error
}
