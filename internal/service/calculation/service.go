package calculation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/workcal"
)

// Service runs payment calculation passes. A pass recomputes every employed
// position of a company for its current pay period and reconciles the result
// against the persisted draft documents, touching only what changed.
type Service struct {
	log             *slog.Logger
	companyRepo     company.CompanyRepository
	positionRepo    position.PositionRepository
	payPeriodRepo   payperiod.PayPeriodRepository
	paymentTypeRepo paymenttype.PaymentTypeRepository
	paymentRepo     payment.PaymentRepository
	paymentPosRepo  payment.PaymentPositionRepository
	payrollRepo     payroll.PayrollRepository
	payFundRepo     payfund.PayFundRepository
	locks           *keyedMutex
}

func NewService(
	log *slog.Logger,
	companyRepo company.CompanyRepository,
	positionRepo position.PositionRepository,
	payPeriodRepo payperiod.PayPeriodRepository,
	paymentTypeRepo paymenttype.PaymentTypeRepository,
	paymentRepo payment.PaymentRepository,
	paymentPosRepo payment.PaymentPositionRepository,
	payrollRepo payroll.PayrollRepository,
	payFundRepo payfund.PayFundRepository,
) *Service {
	return &Service{
		log:             log,
		companyRepo:     companyRepo,
		positionRepo:    positionRepo,
		payPeriodRepo:   payPeriodRepo,
		paymentTypeRepo: paymentTypeRepo,
		paymentRepo:     paymentRepo,
		paymentPosRepo:  paymentPosRepo,
		payrollRepo:     payrollRepo,
		payFundRepo:     payFundRepo,
		locks:           newKeyedMutex(),
	}
}

// CalculateCompany recalculates every employed position of the company for its
// current pay period. Positions that fail are logged and skipped so one broken
// position cannot hold the rest of the company's payroll hostage; their errors
// come back joined.
func (s *Service) CalculateCompany(ctx context.Context, userID, companyID string) error {
	s.locks.Lock(companyID)
	defer s.locks.Unlock(companyID)

	comp, period, types, err := s.loadPass(ctx, companyID)
	if err != nil {
		return err
	}

	positions, err := s.positionRepo.ListEmployed(ctx, companyID, period.DateFrom)
	if err != nil {
		return fmt.Errorf("list employed positions: %w", err)
	}

	touched := map[string]struct{}{}
	var failed []error
	for _, pos := range positions {
		ids, err := s.calculatePosition(ctx, comp, period, types, pos)
		if err != nil {
			s.log.ErrorContext(ctx, "position calculation failed",
				slog.String("user_id", userID),
				slog.String("company_id", companyID),
				slog.String("position_id", pos.ID),
				slog.Any("error", err))
			failed = append(failed, fmt.Errorf("position %s: %w", pos.ID, err))
			continue
		}
		for _, id := range ids {
			touched[id] = struct{}{}
		}
	}

	if err := s.refreshTotals(ctx, touched); err != nil {
		failed = append(failed, err)
	}

	s.log.InfoContext(ctx, "company calculation pass finished",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.Int("positions", len(positions)),
		slog.Int("payments_touched", len(touched)),
		slog.Int("failures", len(failed)))

	return errors.Join(failed...)
}

// CalculatePosition recalculates a single position without touching the rest
// of the company.
func (s *Service) CalculatePosition(ctx context.Context, userID, positionID string) error {
	pos, err := s.positionRepo.GetByID(ctx, positionID)
	if err != nil {
		return fmt.Errorf("get position: %w", err)
	}

	s.locks.Lock(pos.CompanyID)
	defer s.locks.Unlock(pos.CompanyID)

	comp, period, types, err := s.loadPass(ctx, pos.CompanyID)
	if err != nil {
		return err
	}

	ids, err := s.calculatePosition(ctx, comp, period, types, pos)
	if err != nil {
		return err
	}

	touched := map[string]struct{}{}
	for _, id := range ids {
		touched[id] = struct{}{}
	}
	if err := s.refreshTotals(ctx, touched); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "position calculation pass finished",
		slog.String("user_id", userID),
		slog.String("position_id", positionID),
		slog.Int("payments_touched", len(touched)))

	return nil
}

// loadPass fetches the shared inputs of a pass: the company, its current open
// pay period and the payment-group types in list order.
func (s *Service) loadPass(ctx context.Context, companyID string) (company.Company, payperiod.PayPeriod, []paymenttype.PaymentType, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.Company{}, payperiod.PayPeriod{}, nil, fmt.Errorf("get company: %w", err)
	}

	period, err := s.payPeriodRepo.GetByCompanyDate(ctx, companyID, comp.PayPeriod)
	if err != nil {
		return company.Company{}, payperiod.PayPeriod{}, nil, fmt.Errorf("get current pay period: %w", err)
	}
	if period.State == payperiod.StateClosed {
		return company.Company{}, payperiod.PayPeriod{}, nil, payperiod.ErrPayPeriodAlreadyClosed
	}

	types, err := s.paymentTypeRepo.ListByGroup(ctx, paymenttype.GroupPayments)
	if err != nil {
		return company.Company{}, payperiod.PayPeriod{}, nil, fmt.Errorf("list payment types: %w", err)
	}

	return comp, period, types, nil
}

// calculatePosition runs the strategies for one position, merges the result
// against the persisted line items and applies the delta. It returns the ids
// of the payments whose positions changed.
func (s *Service) calculatePosition(
	ctx context.Context,
	comp company.Company,
	period payperiod.PayPeriod,
	types []paymenttype.PaymentType,
	pos position.Position,
) ([]string, error) {
	payrolls, err := s.payrollRepo.ListByPosition(ctx, pos.ID, period.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	funds, err := s.payFundRepo.ListByPosition(ctx, pos.ID, period.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("list pay funds: %w", err)
	}
	persisted, err := s.paymentPosRepo.ListByPosition(ctx, pos.ID, period.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("list payment positions: %w", err)
	}

	var current []payment.PaymentPosition
	for _, pt := range types {
		c := Context{
			Company:     comp,
			Position:    pos,
			PayPeriod:   period,
			PaymentType: pt,
			Payrolls:    payrolls,
			PayFunds:    funds,
			Current:     current,
		}
		calc := newCalcMethod(c)
		if calc == nil {
			continue
		}
		pp, ok := calc.Calculate()
		if !ok {
			continue
		}
		current = append(current, pp)
	}

	toInsert, toDelete := merge(persisted, current)

	var touched []string
	if len(toDelete) > 0 {
		ids := make([]string, len(toDelete))
		for i, pp := range toDelete {
			ids[i] = pp.ID
			touched = append(touched, pp.PaymentID)
		}
		if err := s.paymentPosRepo.DeleteByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("delete stale payment positions: %w", err)
		}
	}

	for _, pp := range toInsert {
		doc, err := s.findOrCreateDraft(ctx, *pp.Payment)
		if err != nil {
			return nil, err
		}
		pp.PaymentID = doc.ID
		pp.Payment = &doc
		if _, err := s.paymentPosRepo.Create(ctx, pp); err != nil {
			return nil, fmt.Errorf("create payment position: %w", err)
		}
		touched = append(touched, doc.ID)
	}

	return touched, nil
}

// findOrCreateDraft resolves the single DRAFT payment for the blank document's
// (company, payment type) pair, creating it with a fresh document number when
// none exists yet.
func (s *Service) findOrCreateDraft(ctx context.Context, blank payment.Payment) (payment.Payment, error) {
	doc, err := s.paymentRepo.FindDraft(ctx, blank.CompanyID, blank.PaymentTypeID)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, payment.ErrPaymentNotFound) {
		return payment.Payment{}, fmt.Errorf("find draft payment: %w", err)
	}

	num, err := s.paymentRepo.NextDocNumber(ctx, blank.CompanyID, blank.PayPeriod)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("allocate document number: %w", err)
	}
	blank.DocNumber = num
	blank.DocDate = workcal.DateUTC(blank.DateFrom)

	doc, err = s.paymentRepo.Create(ctx, blank)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("create draft payment: %w", err)
	}
	return doc, nil
}

// refreshTotals recomputes the aggregate sums of every touched payment and
// removes draft documents left with no positions at all.
func (s *Service) refreshTotals(ctx context.Context, touched map[string]struct{}) error {
	var failed []error
	for id := range touched {
		positions, err := s.paymentPosRepo.ListByPayment(ctx, id)
		if err != nil {
			failed = append(failed, fmt.Errorf("list positions of payment %s: %w", id, err))
			continue
		}
		if len(positions) == 0 {
			if err := s.paymentRepo.Delete(ctx, id); err != nil {
				failed = append(failed, fmt.Errorf("delete empty payment %s: %w", id, err))
			}
			continue
		}
		if err := s.paymentRepo.UpdateTotals(ctx, id); err != nil {
			failed = append(failed, fmt.Errorf("update totals of payment %s: %w", id, err))
		}
	}
	return errors.Join(failed...)
}
