package payperiod

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/eventbus"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/workcal"
)

type PayPeriodServiceImpl struct {
	log           *slog.Logger
	bus           *eventbus.Bus
	companyRepo   company.CompanyRepository
	payPeriodRepo payperiod.PayPeriodRepository
}

func NewPayPeriodService(
	log *slog.Logger,
	bus *eventbus.Bus,
	companyRepo company.CompanyRepository,
	payPeriodRepo payperiod.PayPeriodRepository,
) payperiod.PayPeriodService {
	return &PayPeriodServiceImpl{
		log:           log,
		bus:           bus,
		companyRepo:   companyRepo,
		payPeriodRepo: payPeriodRepo,
	}
}

// Current implements payperiod.PayPeriodService.
func (s *PayPeriodServiceImpl) Current(ctx context.Context, companyID string) (payperiod.PayPeriodResponse, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}
	period, err := s.payPeriodRepo.GetByCompanyDate(ctx, companyID, comp.PayPeriod)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}
	return payperiod.ToResponse(period), nil
}

// ListByCompany implements payperiod.PayPeriodService.
func (s *PayPeriodServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]payperiod.PayPeriodResponse, error) {
	periods, err := s.payPeriodRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	out := make([]payperiod.PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, payperiod.ToResponse(p))
	}
	return out, nil
}

// Close implements payperiod.PayPeriodService. Closing the current period
// opens the next calendar month, moves the company pointer there and publishes
// a calculate event so drafts of the new period get built right away.
func (s *PayPeriodServiceImpl) Close(ctx context.Context, userID, companyID string) (payperiod.PayPeriodResponse, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}
	period, err := s.payPeriodRepo.GetByCompanyDate(ctx, companyID, comp.PayPeriod)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}
	if period.State == payperiod.StateClosed {
		return payperiod.PayPeriodResponse{}, payperiod.ErrPayPeriodAlreadyClosed
	}

	if err := s.payPeriodRepo.Close(ctx, period.ID); err != nil {
		return payperiod.PayPeriodResponse{}, fmt.Errorf("failed to close pay period: %w", err)
	}

	nextFrom := workcal.MonthBegin(period.DateFrom.AddDate(0, 1, 0))
	next, err := s.payPeriodRepo.GetByCompanyDate(ctx, companyID, nextFrom)
	if err != nil {
		next, err = s.payPeriodRepo.Create(ctx, payperiod.PayPeriod{
			CompanyID: companyID,
			DateFrom:  nextFrom,
			DateTo:    workcal.MonthEnd(nextFrom),
			State:     payperiod.StateOpened,
		})
		if err != nil {
			return payperiod.PayPeriodResponse{}, fmt.Errorf("failed to open next pay period: %w", err)
		}
	}
	if err := s.companyRepo.SetPayPeriod(ctx, companyID, nextFrom); err != nil {
		return payperiod.PayPeriodResponse{}, fmt.Errorf("failed to advance company pay period: %w", err)
	}

	s.log.InfoContext(ctx, "pay period closed",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("closed_from", period.DateFrom.Format("2006-01-02")),
		slog.String("next_from", nextFrom.Format("2006-01-02")))
	s.bus.Publish(ctx, company.CalculateEvent{UserID: userID, CompanyID: companyID})

	return payperiod.ToResponse(next), nil
}
