package payfund

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
)

var percent = decimal.NewFromInt(100)

// Service is the fund calculation engine: the sibling of the payment engine
// that accrues employer fund contributions per position. One FundType produces
// one PayFund row per position with Sum = base * rate / 100, reconciled against
// the persisted rows by the (fundTypeID, baseSum, sum) tuple.
type Service struct {
	log           *slog.Logger
	companyRepo   company.CompanyRepository
	positionRepo  position.PositionRepository
	payPeriodRepo payperiod.PayPeriodRepository
	fundTypeRepo  payfund.FundTypeRepository
	payFundRepo   payfund.PayFundRepository
	payrollRepo   payroll.PayrollRepository
}

func NewService(
	log *slog.Logger,
	companyRepo company.CompanyRepository,
	positionRepo position.PositionRepository,
	payPeriodRepo payperiod.PayPeriodRepository,
	fundTypeRepo payfund.FundTypeRepository,
	payFundRepo payfund.PayFundRepository,
	payrollRepo payroll.PayrollRepository,
) *Service {
	return &Service{
		log:           log,
		companyRepo:   companyRepo,
		positionRepo:  positionRepo,
		payPeriodRepo: payPeriodRepo,
		fundTypeRepo:  fundTypeRepo,
		payFundRepo:   payFundRepo,
		payrollRepo:   payrollRepo,
	}
}

// CalculateCompany recomputes fund contributions for every employed position
// of the company in its current pay period.
func (s *Service) CalculateCompany(ctx context.Context, userID, companyID string) error {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	period, err := s.payPeriodRepo.GetByCompanyDate(ctx, companyID, comp.PayPeriod)
	if err != nil {
		return fmt.Errorf("get current pay period: %w", err)
	}
	types, err := s.fundTypeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list fund types: %w", err)
	}
	positions, err := s.positionRepo.ListEmployed(ctx, companyID, period.DateFrom)
	if err != nil {
		return fmt.Errorf("list employed positions: %w", err)
	}

	var failed []error
	for _, pos := range positions {
		if err := s.calculatePosition(ctx, period, types, pos); err != nil {
			s.log.ErrorContext(ctx, "fund calculation failed",
				slog.String("user_id", userID),
				slog.String("company_id", companyID),
				slog.String("position_id", pos.ID),
				slog.Any("error", err))
			failed = append(failed, fmt.Errorf("position %s: %w", pos.ID, err))
		}
	}

	s.log.InfoContext(ctx, "company fund pass finished",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.Int("positions", len(positions)),
		slog.Int("failures", len(failed)))

	return errors.Join(failed...)
}

// CalculatePosition recomputes fund contributions for a single position.
func (s *Service) CalculatePosition(ctx context.Context, userID, positionID string) error {
	pos, err := s.positionRepo.GetByID(ctx, positionID)
	if err != nil {
		return fmt.Errorf("get position: %w", err)
	}
	comp, err := s.companyRepo.GetByID(ctx, pos.CompanyID)
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	period, err := s.payPeriodRepo.GetByCompanyDate(ctx, pos.CompanyID, comp.PayPeriod)
	if err != nil {
		return fmt.Errorf("get current pay period: %w", err)
	}
	types, err := s.fundTypeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list fund types: %w", err)
	}

	if err := s.calculatePosition(ctx, period, types, pos); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "position fund pass finished",
		slog.String("user_id", userID),
		slog.String("position_id", positionID))

	return nil
}

func (s *Service) calculatePosition(
	ctx context.Context,
	period payperiod.PayPeriod,
	types []payfund.FundType,
	pos position.Position,
) error {
	payrolls, err := s.payrollRepo.ListByPosition(ctx, pos.ID, period.DateFrom)
	if err != nil {
		return fmt.Errorf("list payrolls: %w", err)
	}
	persisted, err := s.payFundRepo.ListByPosition(ctx, pos.ID, period.DateFrom)
	if err != nil {
		return fmt.Errorf("list pay funds: %w", err)
	}

	base := decimal.Zero
	for _, p := range payrolls {
		base = base.Add(p.BaseSum)
	}

	var current []payfund.PayFund
	if base.IsPositive() {
		for _, ft := range types {
			current = append(current, payfund.PayFund{
				PositionID: pos.ID,
				FundTypeID: ft.ID,
				PayPeriod:  period.DateFrom,
				BaseSum:    base,
				Sum:        base.Mul(ft.Rate).Div(percent).Round(2),
			})
		}
	}

	toInsert, toDelete := diff(persisted, current)

	if len(toDelete) > 0 {
		ids := make([]string, len(toDelete))
		for i, pf := range toDelete {
			ids[i] = pf.ID
		}
		if err := s.payFundRepo.DeleteByIDs(ctx, ids); err != nil {
			return fmt.Errorf("delete stale pay funds: %w", err)
		}
	}
	for _, pf := range toInsert {
		if _, err := s.payFundRepo.Create(ctx, pf); err != nil {
			return fmt.Errorf("create pay fund: %w", err)
		}
	}

	return nil
}

// diff keeps tuple-equal rows untouched, removes persisted rows no longer
// produced and inserts produced rows not yet persisted.
func diff(persisted, current []payfund.PayFund) (toInsert, toDelete []payfund.PayFund) {
	for _, p := range persisted {
		if !containsAmounts(current, p) {
			toDelete = append(toDelete, p)
		}
	}
	for _, c := range current {
		if !containsAmounts(persisted, c) {
			toInsert = append(toInsert, c)
		}
	}
	return toInsert, toDelete
}

func containsAmounts(list []payfund.PayFund, f payfund.PayFund) bool {
	for _, o := range list {
		if o.SameAmounts(f) {
			return true
		}
	}
	return false
}
