package tasklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/department"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
)

// Service is the task generation engine: it rebuilds the administrative
// checklist of a company's current pay period and reconciles it against the
// persisted list, never touching tasks the user completed manually.
type Service struct {
	log             *slog.Logger
	companyRepo     company.CompanyRepository
	payPeriodRepo   payperiod.PayPeriodRepository
	positionRepo    position.PositionRepository
	departmentRepo  department.DepartmentRepository
	paymentRepo     payment.PaymentRepository
	paymentTypeRepo paymenttype.PaymentTypeRepository
	taskRepo        task.TaskRepository
}

func NewService(
	log *slog.Logger,
	companyRepo company.CompanyRepository,
	payPeriodRepo payperiod.PayPeriodRepository,
	positionRepo position.PositionRepository,
	departmentRepo department.DepartmentRepository,
	paymentRepo payment.PaymentRepository,
	paymentTypeRepo paymenttype.PaymentTypeRepository,
	taskRepo task.TaskRepository,
) *Service {
	return &Service{
		log:             log,
		companyRepo:     companyRepo,
		payPeriodRepo:   payPeriodRepo,
		positionRepo:    positionRepo,
		departmentRepo:  departmentRepo,
		paymentRepo:     paymentRepo,
		paymentTypeRepo: paymentTypeRepo,
		taskRepo:        taskRepo,
	}
}

// Generate rebuilds the task list for the company's current pay period.
func (s *Service) Generate(ctx context.Context, userID, companyID string) error {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	period, err := s.payPeriodRepo.GetByCompanyDate(ctx, companyID, comp.PayPeriod)
	if err != nil {
		return fmt.Errorf("get current pay period: %w", err)
	}
	prior, err := s.taskRepo.ListByCompanyPeriod(ctx, companyID, period.DateFrom)
	if err != nil {
		return fmt.Errorf("list prior tasks: %w", err)
	}

	genCtx, err := s.buildContext(ctx, comp, period, prior)
	if err != nil {
		return err
	}

	var current []task.Task
	for _, g := range generatorOrder {
		current = append(current, g.GetTaskList(genCtx)...)
	}

	toInsert, toDelete := merge(prior, current)

	var failed []error
	for _, t := range toDelete {
		if err := s.taskRepo.Remove(ctx, t.ID); err != nil {
			failed = append(failed, fmt.Errorf("remove task %s: %w", t.ID, err))
		}
	}
	for _, t := range toInsert {
		if _, err := s.taskRepo.Create(ctx, t); err != nil {
			failed = append(failed, fmt.Errorf("create %s task: %w", t.Type, err))
		}
	}

	s.log.InfoContext(ctx, "task list regenerated",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.Int("inserted", len(toInsert)),
		slog.Int("deleted", len(toDelete)),
		slog.Int("failures", len(failed)))

	return errors.Join(failed...)
}

// buildContext gathers every fact the generators consult, plus the sequence
// baseline anchored on manually completed tasks.
func (s *Service) buildContext(
	ctx context.Context,
	comp company.Company,
	period payperiod.PayPeriod,
	prior []task.Task,
) (Context, error) {
	departments, err := s.departmentRepo.CountByCompany(ctx, comp.ID)
	if err != nil {
		return Context{}, fmt.Errorf("count departments: %w", err)
	}
	employees, err := s.positionRepo.CountEmployees(ctx, comp.ID)
	if err != nil {
		return Context{}, fmt.Errorf("count employees: %w", err)
	}
	closed, err := s.payPeriodRepo.CountClosed(ctx, comp.ID)
	if err != nil {
		return Context{}, fmt.Errorf("count closed periods: %w", err)
	}
	advanceDraft, regularDraft, err := s.draftFlags(ctx, comp.ID, period)
	if err != nil {
		return Context{}, err
	}

	baseline := 0
	for _, t := range prior {
		if t.Status == task.StatusDoneByUser && t.SequenceNumber > baseline {
			baseline = t.SequenceNumber
		}
	}

	return Context{
		Company:            comp,
		PayPeriod:          period,
		Departments:        departments,
		Employees:          employees,
		ClosedPeriods:      closed,
		DraftAdvanceExists: advanceDraft,
		DraftRegularExists: regularDraft,
		Seq:                newSequence(baseline),
	}, nil
}

// draftFlags reports whether draft payment documents of the advance and
// regular calc methods exist for the period.
func (s *Service) draftFlags(ctx context.Context, companyID string, period payperiod.PayPeriod) (advance, regular bool, err error) {
	status := payment.StatusDraft
	accPeriod := period.DateFrom
	drafts, err := s.paymentRepo.ListByCompany(ctx, companyID, &accPeriod, &status)
	if err != nil {
		return false, false, fmt.Errorf("list draft payments: %w", err)
	}
	if len(drafts) == 0 {
		return false, false, nil
	}

	types, err := s.paymentTypeRepo.List(ctx)
	if err != nil {
		return false, false, fmt.Errorf("list payment types: %w", err)
	}
	methods := make(map[string]paymenttype.CalcMethod, len(types))
	for _, pt := range types {
		methods[pt.ID] = pt.CalcMethod
	}

	for _, d := range drafts {
		switch methods[d.PaymentTypeID] {
		case paymenttype.CalcMethodAdvancePayment:
			advance = true
		case paymenttype.CalcMethodRegularPayment:
			regular = true
		}
	}
	return advance, regular, nil
}

// merge reconciles the regenerated list against the persisted one, keyed on
// (type, status, dateFrom, dateTo):
//
//   - toDelete: prior tasks, except DONE_BY_USER ones, with no key-equal task
//     in the regenerated list.
//   - toInsert: regenerated tasks with no key-equal prior task, unless a
//     DONE_BY_USER prior task of the same type exists. The dual exclusion never
//     resurrects a manually completed task and never duplicates an unchanged
//     one.
func merge(prior, current []task.Task) (toInsert, toDelete []task.Task) {
	for _, p := range prior {
		if p.Status == task.StatusDoneByUser {
			continue
		}
		if !containsKey(current, p) {
			toDelete = append(toDelete, p)
		}
	}
	for _, c := range current {
		if doneByUser(prior, c.Type) {
			continue
		}
		if containsKey(prior, c) {
			continue
		}
		toInsert = append(toInsert, c)
	}
	return toInsert, toDelete
}

func containsKey(list []task.Task, t task.Task) bool {
	for _, o := range list {
		if o.SameKey(t) {
			return true
		}
	}
	return false
}

func doneByUser(list []task.Task, typ task.Type) bool {
	for _, o := range list {
		if o.Type == typ && o.Status == task.StatusDoneByUser {
			return true
		}
	}
	return false
}
