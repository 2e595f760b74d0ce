package tasklist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
)

// TaskServiceImpl is the checklist API surface: listing, regeneration and the
// manual complete/reopen transitions.
type TaskServiceImpl struct {
	log         *slog.Logger
	engine      *Service
	companyRepo company.CompanyRepository
	taskRepo    task.TaskRepository
}

func NewTaskService(
	log *slog.Logger,
	engine *Service,
	companyRepo company.CompanyRepository,
	taskRepo task.TaskRepository,
) task.TaskService {
	return &TaskServiceImpl{
		log:         log,
		engine:      engine,
		companyRepo: companyRepo,
		taskRepo:    taskRepo,
	}
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, companyID string) ([]task.TaskResponse, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByCompanyPeriod(ctx, companyID, comp.PayPeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	out := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, task.ToResponse(t))
	}
	return out, nil
}

// Generate implements task.TaskService.
func (s *TaskServiceImpl) Generate(ctx context.Context, userID, companyID string) error {
	return s.engine.Generate(ctx, userID, companyID)
}

// Complete implements task.TaskService.
func (s *TaskServiceImpl) Complete(ctx context.Context, userID, id string) (task.TaskResponse, error) {
	return s.setStatus(ctx, userID, id, task.StatusDoneByUser)
}

// Reopen implements task.TaskService.
func (s *TaskServiceImpl) Reopen(ctx context.Context, userID, id string) (task.TaskResponse, error) {
	return s.setStatus(ctx, userID, id, task.StatusTodo)
}

func (s *TaskServiceImpl) setStatus(ctx context.Context, userID, id string, status task.Status) (task.TaskResponse, error) {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return task.TaskResponse{}, err
	}
	if err := s.taskRepo.SetStatus(ctx, id, status); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to set task status: %w", err)
	}
	updated, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	s.log.InfoContext(ctx, "task status changed",
		slog.String("user_id", userID),
		slog.String("task_id", id),
		slog.String("status", string(status)))

	return task.ToResponse(updated), nil
}
