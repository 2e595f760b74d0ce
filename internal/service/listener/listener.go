package listener

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/eventbus"
	"github.com/peopledesk/payroll-backend-go/internal/service/calculation"
	"github.com/peopledesk/payroll-backend-go/internal/service/payfund"
)

// Service re-enters the calculation engines on domain events. Every company
// lifecycle event runs the full chain synchronously and in order: payment
// calculation, fund calculation, then a totals pass over the period's draft
// documents. Position events run the position-scoped variants only.
type Service struct {
	log         *slog.Logger
	calc        *calculation.Service
	funds       *payfund.Service
	companyRepo company.CompanyRepository
	paymentRepo payment.PaymentRepository
}

func NewService(
	log *slog.Logger,
	calc *calculation.Service,
	funds *payfund.Service,
	companyRepo company.CompanyRepository,
	paymentRepo payment.PaymentRepository,
) *Service {
	return &Service{
		log:         log,
		calc:        calc,
		funds:       funds,
		companyRepo: companyRepo,
		paymentRepo: paymentRepo,
	}
}

// Register subscribes the recalculation chain on the bus.
func (s *Service) Register(bus *eventbus.Bus) {
	bus.Subscribe(company.CreatedEvent{}.Name(), s.onCompanyEvent)
	bus.Subscribe(company.UpdatedEvent{}.Name(), s.onCompanyEvent)
	bus.Subscribe(company.CalculateEvent{}.Name(), s.onCompanyEvent)
	bus.Subscribe(position.CreatedEvent{}.Name(), s.onPositionEvent)
	bus.Subscribe(position.UpdatedEvent{}.Name(), s.onPositionEvent)
}

func (s *Service) onCompanyEvent(ctx context.Context, e eventbus.Event) error {
	userID, companyID, ok := companyEventKeys(e)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", e.Name())
	}
	s.log.InfoContext(ctx, "handling company event",
		slog.String("event", e.Name()),
		slog.String("company_id", companyID))

	if err := s.calc.CalculateCompany(ctx, userID, companyID); err != nil {
		return fmt.Errorf("payment calculation: %w", err)
	}
	if err := s.funds.CalculateCompany(ctx, userID, companyID); err != nil {
		return fmt.Errorf("fund calculation: %w", err)
	}
	if err := s.updateDraftTotals(ctx, companyID); err != nil {
		return fmt.Errorf("totals pass: %w", err)
	}
	return nil
}

func (s *Service) onPositionEvent(ctx context.Context, e eventbus.Event) error {
	userID, positionID, ok := positionEventKeys(e)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", e.Name())
	}
	s.log.InfoContext(ctx, "handling position event",
		slog.String("event", e.Name()),
		slog.String("position_id", positionID))

	if err := s.calc.CalculatePosition(ctx, userID, positionID); err != nil {
		return fmt.Errorf("payment calculation: %w", err)
	}
	if err := s.funds.CalculatePosition(ctx, userID, positionID); err != nil {
		return fmt.Errorf("fund calculation: %w", err)
	}
	return nil
}

// updateDraftTotals recomputes aggregates of every draft document in the
// company's current period, covering documents the calculation pass itself did
// not touch.
func (s *Service) updateDraftTotals(ctx context.Context, companyID string) error {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	status := payment.StatusDraft
	accPeriod := comp.PayPeriod
	drafts, err := s.paymentRepo.ListByCompany(ctx, companyID, &accPeriod, &status)
	if err != nil {
		return fmt.Errorf("list draft payments: %w", err)
	}
	for _, d := range drafts {
		if err := s.paymentRepo.UpdateTotals(ctx, d.ID); err != nil {
			return fmt.Errorf("update totals of payment %s: %w", d.ID, err)
		}
	}
	return nil
}

func companyEventKeys(e eventbus.Event) (userID, companyID string, ok bool) {
	switch ev := e.(type) {
	case company.CreatedEvent:
		return ev.UserID, ev.CompanyID, true
	case company.UpdatedEvent:
		return ev.UserID, ev.CompanyID, true
	case company.CalculateEvent:
		return ev.UserID, ev.CompanyID, true
	}
	return "", "", false
}

func positionEventKeys(e eventbus.Event) (userID, positionID string, ok bool) {
	switch ev := e.(type) {
	case position.CreatedEvent:
		return ev.UserID, ev.PositionID, true
	case position.UpdatedEvent:
		return ev.UserID, ev.PositionID, true
	}
	return "", "", false
}
