package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payroll"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `id, position_id, payment_type_id, pay_period, date_from, date_to,
	hours, base_sum, deductions, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(&p.ID, &p.PositionID, &p.PaymentTypeID, &p.PayPeriod, &p.DateFrom,
		&p.DateTo, &p.Hours, &p.BaseSum, &p.Deductions, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (position_id, payment_type_id, pay_period, date_from, date_to,
			hours, base_sum, deductions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		p.PositionID, p.PaymentTypeID, p.PayPeriod, p.DateFrom, p.DateTo,
		p.Hours, p.BaseSum, p.Deductions))
	if err != nil {
		return payroll.Payroll{}, err
	}
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPayroll(q.QueryRow(ctx,
		`SELECT `+payrollColumns+` FROM payrolls WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return found, nil
}

// ListByPosition implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByPosition(ctx context.Context, positionID string, payPeriod time.Time) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE position_id = $1 AND pay_period = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, positionID, payPeriod)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(&p.ID, &p.PositionID, &p.PaymentTypeID, &p.PayPeriod,
			&p.DateFrom, &p.DateTo, &p.Hours, &p.BaseSum, &p.Deductions,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// DeleteByIDs implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("failed to delete payroll records: %w", err)
	}
	return nil
}
