package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payperiod"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type payPeriodRepositoryImpl struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payperiod.PayPeriodRepository {
	return &payPeriodRepositoryImpl{db: db}
}

const payPeriodColumns = `id, company_id, date_from, date_to, state, created_at, updated_at`

// Create implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) Create(ctx context.Context, period payperiod.PayPeriod) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_periods (company_id, date_from, date_to, state)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + payPeriodColumns

	var created payperiod.PayPeriod
	err := q.QueryRow(ctx, query, period.CompanyID, period.DateFrom, period.DateTo, period.State).
		Scan(&created.ID, &created.CompanyID, &created.DateFrom, &created.DateTo,
			&created.State, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return payperiod.PayPeriod{}, err
	}
	return created, nil
}

// GetByCompanyDate implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) GetByCompanyDate(ctx context.Context, companyID string, dateFrom time.Time) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payPeriodColumns + `
		FROM pay_periods
		WHERE company_id = $1 AND date_from = $2
	`

	var found payperiod.PayPeriod
	err := q.QueryRow(ctx, query, companyID, dateFrom).
		Scan(&found.ID, &found.CompanyID, &found.DateFrom, &found.DateTo,
			&found.State, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payperiod.PayPeriod{}, payperiod.ErrPayPeriodNotFound
		}
		return payperiod.PayPeriod{}, err
	}
	return found, nil
}

// ListByCompany implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+payPeriodColumns+` FROM pay_periods WHERE company_id = $1 ORDER BY date_from`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []payperiod.PayPeriod
	for rows.Next() {
		var p payperiod.PayPeriod
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.DateFrom, &p.DateTo,
			&p.State, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// CountClosed implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) CountClosed(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM pay_periods WHERE company_id = $1 AND state = $2`,
		companyID, payperiod.StateClosed).Scan(&count)
	return count, err
}

// Close implements payperiod.PayPeriodRepository.
func (r *payPeriodRepositoryImpl) Close(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET state = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, payperiod.StateClosed, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payperiod.ErrPayPeriodNotFound
		}
		return fmt.Errorf("failed to close pay period with id %s: %w", id, err)
	}
	return nil
}
