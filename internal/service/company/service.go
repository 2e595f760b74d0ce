package company

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/eventbus"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/workcal"
)

type CompanyServiceImpl struct {
	log           *slog.Logger
	bus           *eventbus.Bus
	companyRepo   company.CompanyRepository
	payPeriodRepo payperiod.PayPeriodRepository
}

func NewCompanyService(
	log *slog.Logger,
	bus *eventbus.Bus,
	companyRepo company.CompanyRepository,
	payPeriodRepo payperiod.PayPeriodRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		log:           log,
		bus:           bus,
		companyRepo:   companyRepo,
		payPeriodRepo: payPeriodRepo,
	}
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	out := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, company.ToResponse(c))
	}
	return out, nil
}

// Create implements company.CompanyService. The company starts with one opened
// pay period covering the calendar month of the requested date, and the
// creation event kicks off the first calculation chain.
func (s *CompanyServiceImpl) Create(ctx context.Context, userID string, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}
	dateFrom, err := time.Parse("2006-01-02", req.PayPeriod)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to parse pay period date: %w", err)
	}
	dateFrom = workcal.MonthBegin(dateFrom)

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:            req.Name,
		TaxID:           req.TaxID,
		PaymentSchedule: company.PaymentSchedule(req.PaymentSchedule),
		PayPeriod:       dateFrom,
	})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	if _, err := s.payPeriodRepo.Create(ctx, payperiod.PayPeriod{
		CompanyID: created.ID,
		DateFrom:  dateFrom,
		DateTo:    workcal.MonthEnd(dateFrom),
		State:     payperiod.StateOpened,
	}); err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create first pay period: %w", err)
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("user_id", userID),
		slog.String("company_id", created.ID))
	s.bus.Publish(ctx, company.CreatedEvent{UserID: userID, CompanyID: created.ID})

	return company.ToResponse(created), nil
}

// GetByID implements company.CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, userID, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(c), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, userID, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := s.companyRepo.Update(ctx, id, req); err != nil {
		return company.CompanyResponse{}, err
	}
	updated, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	s.bus.Publish(ctx, company.UpdatedEvent{UserID: userID, CompanyID: id})

	return company.ToResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.log.InfoContext(ctx, "company deleted",
		slog.String("user_id", userID),
		slog.String("company_id", id))
	s.bus.Publish(ctx, company.DeletedEvent{UserID: userID, CompanyID: id})

	return nil
}

// Calculate implements company.CompanyService.
func (s *CompanyServiceImpl) Calculate(ctx context.Context, userID, id string) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(ctx, company.CalculateEvent{UserID: userID, CompanyID: id})
	return nil
}
