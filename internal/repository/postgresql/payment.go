package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `id, company_id, payment_type_id, pay_period, acc_period,
	doc_number, doc_date, date_from, date_to, base_sum, deductions, pay_sum, funds,
	status, created_at, updated_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(&p.ID, &p.CompanyID, &p.PaymentTypeID, &p.PayPeriod, &p.AccPeriod,
		&p.DocNumber, &p.DocDate, &p.DateFrom, &p.DateTo, &p.BaseSum, &p.Deductions,
		&p.PaySum, &p.Funds, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (company_id, payment_type_id, pay_period, acc_period,
			doc_number, doc_date, date_from, date_to, base_sum, deductions, pay_sum,
			funds, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + paymentColumns

	created, err := scanPayment(q.QueryRow(ctx, query,
		p.CompanyID, p.PaymentTypeID, p.PayPeriod, p.AccPeriod, p.DocNumber, p.DocDate,
		p.DateFrom, p.DateTo, p.BaseSum, p.Deductions, p.PaySum, p.Funds, p.Status))
	if err != nil {
		return payment.Payment{}, err
	}
	return created, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPayment(q.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, err
	}
	return found, nil
}

// FindDraft implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) FindDraft(ctx context.Context, companyID, paymentTypeID string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE company_id = $1 AND payment_type_id = $2 AND status = $3
	`

	found, err := scanPayment(q.QueryRow(ctx, query, companyID, paymentTypeID, payment.StatusDraft))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, err
	}
	return found, nil
}

// ListByCompany implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByCompany(ctx context.Context, companyID string, accPeriod *time.Time, status *payment.Status) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE company_id = $1`
	args := []interface{}{companyID}

	if accPeriod != nil {
		args = append(args, *accPeriod)
		query += fmt.Sprintf(" AND acc_period = $%d", len(args))
	}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY doc_number"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.PaymentTypeID, &p.PayPeriod,
			&p.AccPeriod, &p.DocNumber, &p.DocDate, &p.DateFrom, &p.DateTo, &p.BaseSum,
			&p.Deductions, &p.PaySum, &p.Funds, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// NextDocNumber implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) NextDocNumber(ctx context.Context, companyID string, payPeriod time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(doc_number), 0) + 1
		FROM payments
		WHERE company_id = $1 AND pay_period = $2
	`

	var next int
	if err := q.QueryRow(ctx, query, companyID, payPeriod).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// UpdateTotals implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) UpdateTotals(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments p
		SET base_sum   = t.base_sum,
		    deductions = t.deductions,
		    pay_sum    = t.pay_sum,
		    funds      = t.funds,
		    updated_at = NOW()
		FROM (
			SELECT COALESCE(SUM(base_sum), 0)   AS base_sum,
			       COALESCE(SUM(deductions), 0) AS deductions,
			       COALESCE(SUM(pay_sum), 0)    AS pay_sum,
			       COALESCE(SUM(funds), 0)      AS funds
			FROM payment_positions
			WHERE payment_id = $1
		) t
		WHERE p.id = $1
		RETURNING p.id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update totals for payment with id %s: %w", id, err)
	}
	return nil
}

// SetStatus implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) SetStatus(ctx context.Context, id string, status payment.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to set status for payment with id %s: %w", id, err)
	}
	return nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
