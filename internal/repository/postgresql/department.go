package postgresql

import (
	"context"
	"fmt"

	"github.com/peopledesk/payroll-backend-go/internal/domain/department"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (company_id, name)
		VALUES ($1, $2)
		RETURNING id, company_id, name, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, d.CompanyID, d.Name).
		Scan(&created.ID, &created.CompanyID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return department.Department{}, err
	}
	return created, nil
}

// ListByCompany implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, company_id, name, created_at, updated_at FROM departments WHERE company_id = $1 ORDER BY name`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// CountByCompany implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) CountByCompany(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM departments WHERE company_id = $1`, companyID).Scan(&count)
	return count, err
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
