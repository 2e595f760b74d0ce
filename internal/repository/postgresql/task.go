package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, company_id, type, date_from, date_to, sequence_number, status, created_at, updated_at`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(&t.ID, &t.CompanyID, &t.Type, &t.DateFrom, &t.DateTo,
		&t.SequenceNumber, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (company_id, type, date_from, date_to, sequence_number, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	created, err := scanTask(q.QueryRow(ctx, query,
		t.CompanyID, t.Type, t.DateFrom, t.DateTo, t.SequenceNumber, t.Status))
	if err != nil {
		return task.Task{}, err
	}
	return created, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanTask(q.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}
	return found, nil
}

// ListByCompanyPeriod implements task.TaskRepository. Tasks belong to the pay
// period whose range contains their dateFrom.
func (r *taskRepositoryImpl) ListByCompanyPeriod(ctx context.Context, companyID string, onPayPeriodDate time.Time) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE company_id = $1 AND date_from >= $2 AND date_from < $2 + INTERVAL '1 month'
		ORDER BY sequence_number
	`

	rows, err := q.Query(ctx, query, companyID, onPayPeriodDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Type, &t.DateFrom, &t.DateTo,
			&t.SequenceNumber, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// SetStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) SetStatus(ctx context.Context, id string, status task.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to set status for task with id %s: %w", id, err)
	}
	return nil
}

// Remove implements task.TaskRepository.
func (r *taskRepositoryImpl) Remove(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove task with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
