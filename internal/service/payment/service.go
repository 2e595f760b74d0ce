package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
)

type PaymentServiceImpl struct {
	log            *slog.Logger
	paymentRepo    payment.PaymentRepository
	paymentPosRepo payment.PaymentPositionRepository
}

func NewPaymentService(
	log *slog.Logger,
	paymentRepo payment.PaymentRepository,
	paymentPosRepo payment.PaymentPositionRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		log:            log,
		paymentRepo:    paymentRepo,
		paymentPosRepo: paymentPosRepo,
	}
}

// ListByCompany implements payment.PaymentService.
func (s *PaymentServiceImpl) ListByCompany(ctx context.Context, companyID string, accPeriod *time.Time, status *payment.Status) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByCompany(ctx, companyID, accPeriod, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	out := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, payment.ToResponse(p))
	}
	return out, nil
}

// GetByID implements payment.PaymentService.
func (s *PaymentServiceImpl) GetByID(ctx context.Context, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return payment.ToResponse(p), nil
}

// Positions implements payment.PaymentService.
func (s *PaymentServiceImpl) Positions(ctx context.Context, paymentID string) ([]payment.PaymentPositionResponse, error) {
	if _, err := s.paymentRepo.GetByID(ctx, paymentID); err != nil {
		return nil, err
	}
	positions, err := s.paymentPosRepo.ListByPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment positions: %w", err)
	}
	out := make([]payment.PaymentPositionResponse, 0, len(positions))
	for _, pp := range positions {
		out = append(out, payment.ToPositionResponse(pp))
	}
	return out, nil
}

// SetStatus implements payment.PaymentService.
func (s *PaymentServiceImpl) SetStatus(ctx context.Context, userID, id string, status payment.Status) (payment.PaymentResponse, error) {
	if _, err := s.paymentRepo.GetByID(ctx, id); err != nil {
		return payment.PaymentResponse{}, err
	}
	if err := s.paymentRepo.SetStatus(ctx, id, status); err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to set payment status: %w", err)
	}
	updated, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	s.log.InfoContext(ctx, "payment status changed",
		slog.String("user_id", userID),
		slog.String("payment_id", id),
		slog.String("status", string(status)))

	return payment.ToResponse(updated), nil
}

// Delete implements payment.PaymentService.
func (s *PaymentServiceImpl) Delete(ctx context.Context, userID, id string) error {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != payment.StatusDraft {
		return payment.ErrPaymentNotDraft
	}

	positions, err := s.paymentPosRepo.ListByPayment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list payment positions: %w", err)
	}
	if len(positions) > 0 {
		ids := make([]string, len(positions))
		for i, pp := range positions {
			ids[i] = pp.ID
		}
		if err := s.paymentPosRepo.DeleteByIDs(ctx, ids); err != nil {
			return fmt.Errorf("failed to delete payment positions: %w", err)
		}
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	s.log.InfoContext(ctx, "payment deleted",
		slog.String("user_id", userID),
		slog.String("payment_id", id))

	return nil
}
