package master

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/payroll-backend-go/internal/domain/department"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/eventbus"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/workcal"
)

// MasterService groups the catalog operations: payment types, fund types,
// departments and payroll accrual records. Payroll writes publish a position
// update event so the calculation chain reconciles the affected drafts.
type MasterService interface {
	// Payment type operations
	CreatePaymentType(ctx context.Context, req paymenttype.CreatePaymentTypeRequest) (paymenttype.PaymentTypeResponse, error)
	ListPaymentTypes(ctx context.Context) ([]paymenttype.PaymentTypeResponse, error)
	DeletePaymentType(ctx context.Context, id string) error

	// Fund type operations
	CreateFundType(ctx context.Context, req payfund.CreateFundTypeRequest) (payfund.FundTypeResponse, error)
	ListFundTypes(ctx context.Context) ([]payfund.FundTypeResponse, error)
	ListPayFunds(ctx context.Context, positionID string, payPeriod time.Time) ([]payfund.PayFundResponse, error)

	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context, companyID string) ([]department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// Payroll operations
	CreatePayroll(ctx context.Context, userID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	ListPayrolls(ctx context.Context, positionID string, payPeriod time.Time) ([]payroll.PayrollResponse, error)
	DeletePayroll(ctx context.Context, userID, id string) error
}

type masterServiceImpl struct {
	log             *slog.Logger
	bus             *eventbus.Bus
	paymentTypeRepo paymenttype.PaymentTypeRepository
	fundTypeRepo    payfund.FundTypeRepository
	payFundRepo     payfund.PayFundRepository
	departmentRepo  department.DepartmentRepository
	payrollRepo     payroll.PayrollRepository
	positionRepo    position.PositionRepository
}

func NewMasterService(
	log *slog.Logger,
	bus *eventbus.Bus,
	paymentTypeRepo paymenttype.PaymentTypeRepository,
	fundTypeRepo payfund.FundTypeRepository,
	payFundRepo payfund.PayFundRepository,
	departmentRepo department.DepartmentRepository,
	payrollRepo payroll.PayrollRepository,
	positionRepo position.PositionRepository,
) MasterService {
	return &masterServiceImpl{
		log:             log,
		bus:             bus,
		paymentTypeRepo: paymentTypeRepo,
		fundTypeRepo:    fundTypeRepo,
		payFundRepo:     payFundRepo,
		departmentRepo:  departmentRepo,
		payrollRepo:     payrollRepo,
		positionRepo:    positionRepo,
	}
}

// ==================== PAYMENT TYPE OPERATIONS ====================

func (s *masterServiceImpl) CreatePaymentType(ctx context.Context, req paymenttype.CreatePaymentTypeRequest) (paymenttype.PaymentTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return paymenttype.PaymentTypeResponse{}, err
	}

	created, err := s.paymentTypeRepo.Create(ctx, paymenttype.PaymentType{
		Name:         req.Name,
		PaymentGroup: paymenttype.PaymentGroup(req.PaymentGroup),
		CalcMethod:   paymenttype.CalcMethod(req.CalcMethod),
	})
	if err != nil {
		return paymenttype.PaymentTypeResponse{}, fmt.Errorf("failed to create payment type: %w", err)
	}
	return paymenttype.ToResponse(created), nil
}

func (s *masterServiceImpl) ListPaymentTypes(ctx context.Context) ([]paymenttype.PaymentTypeResponse, error) {
	types, err := s.paymentTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment types: %w", err)
	}
	out := make([]paymenttype.PaymentTypeResponse, 0, len(types))
	for _, pt := range types {
		out = append(out, paymenttype.ToResponse(pt))
	}
	return out, nil
}

func (s *masterServiceImpl) DeletePaymentType(ctx context.Context, id string) error {
	if _, err := s.paymentTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.paymentTypeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment type: %w", err)
	}
	return nil
}

// ==================== FUND TYPE OPERATIONS ====================

func (s *masterServiceImpl) CreateFundType(ctx context.Context, req payfund.CreateFundTypeRequest) (payfund.FundTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return payfund.FundTypeResponse{}, err
	}

	rate, _ := decimal.NewFromString(req.Rate)
	created, err := s.fundTypeRepo.Create(ctx, payfund.FundType{
		Name: req.Name,
		Rate: rate,
	})
	if err != nil {
		return payfund.FundTypeResponse{}, fmt.Errorf("failed to create fund type: %w", err)
	}
	return payfund.ToFundTypeResponse(created), nil
}

func (s *masterServiceImpl) ListFundTypes(ctx context.Context) ([]payfund.FundTypeResponse, error) {
	types, err := s.fundTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fund types: %w", err)
	}
	out := make([]payfund.FundTypeResponse, 0, len(types))
	for _, ft := range types {
		out = append(out, payfund.ToFundTypeResponse(ft))
	}
	return out, nil
}

func (s *masterServiceImpl) ListPayFunds(ctx context.Context, positionID string, payPeriod time.Time) ([]payfund.PayFundResponse, error) {
	funds, err := s.payFundRepo.ListByPosition(ctx, positionID, workcal.MonthBegin(payPeriod))
	if err != nil {
		return nil, fmt.Errorf("failed to list pay funds: %w", err)
	}
	out := make([]payfund.PayFundResponse, 0, len(funds))
	for _, pf := range funds {
		out = append(out, payfund.ToPayFundResponse(pf))
	}
	return out, nil
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		CompanyID: req.CompanyID,
		Name:      req.Name,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return department.ToResponse(created), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context, companyID string) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	out := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, department.ToResponse(d))
	}
	return out, nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// ==================== PAYROLL OPERATIONS ====================

func (s *masterServiceImpl) CreatePayroll(ctx context.Context, userID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	pos, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if _, err := s.paymentTypeRepo.GetByID(ctx, req.PaymentTypeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	payPeriod, _ := time.Parse("2006-01-02", req.PayPeriod)
	dateFrom, _ := time.Parse("2006-01-02", req.DateFrom)
	dateTo, _ := time.Parse("2006-01-02", req.DateTo)
	hours, _ := decimal.NewFromString(req.Hours)
	baseSum, _ := decimal.NewFromString(req.BaseSum)
	deductions, _ := decimal.NewFromString(req.Deductions)

	created, err := s.payrollRepo.Create(ctx, payroll.Payroll{
		PositionID:    req.PositionID,
		PaymentTypeID: req.PaymentTypeID,
		PayPeriod:     workcal.MonthBegin(payPeriod),
		DateFrom:      workcal.DateUTC(dateFrom),
		DateTo:        workcal.DateUTC(dateTo),
		Hours:         hours,
		BaseSum:       baseSum,
		Deductions:    deductions,
	})
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	s.log.InfoContext(ctx, "payroll record created",
		slog.String("user_id", userID),
		slog.String("payroll_id", created.ID),
		slog.String("position_id", created.PositionID))
	s.bus.Publish(ctx, position.UpdatedEvent{
		UserID:     userID,
		PositionID: pos.ID,
		CompanyID:  pos.CompanyID,
	})

	return payroll.ToResponse(created), nil
}

func (s *masterServiceImpl) ListPayrolls(ctx context.Context, positionID string, payPeriod time.Time) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.ListByPosition(ctx, positionID, workcal.MonthBegin(payPeriod))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	out := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		out = append(out, payroll.ToResponse(p))
	}
	return out, nil
}

func (s *masterServiceImpl) DeletePayroll(ctx context.Context, userID, id string) error {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	pos, err := s.positionRepo.GetByID(ctx, record.PositionID)
	if err != nil {
		return err
	}
	if err := s.payrollRepo.DeleteByIDs(ctx, []string{id}); err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	s.log.InfoContext(ctx, "payroll record deleted",
		slog.String("user_id", userID),
		slog.String("payroll_id", id),
		slog.String("position_id", pos.ID))
	s.bus.Publish(ctx, position.UpdatedEvent{
		UserID:     userID,
		PositionID: pos.ID,
		CompanyID:  pos.CompanyID,
	})

	return nil
}
