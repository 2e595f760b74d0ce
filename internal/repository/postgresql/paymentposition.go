package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type paymentPositionRepositoryImpl struct {
	db *database.DB
}

func NewPaymentPositionRepository(db *database.DB) payment.PaymentPositionRepository {
	return &paymentPositionRepositoryImpl{db: db}
}

// Create implements payment.PaymentPositionRepository.
func (r *paymentPositionRepositoryImpl) Create(ctx context.Context, pp payment.PaymentPosition) (payment.PaymentPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_positions (payment_id, position_id, base_sum, deductions, pay_sum, funds)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, payment_id, position_id, base_sum, deductions, pay_sum, funds, created_at, updated_at
	`

	var created payment.PaymentPosition
	err := q.QueryRow(ctx, query,
		pp.PaymentID, pp.PositionID, pp.BaseSum, pp.Deductions, pp.PaySum, pp.Funds).
		Scan(&created.ID, &created.PaymentID, &created.PositionID, &created.BaseSum,
			&created.Deductions, &created.PaySum, &created.Funds, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return payment.PaymentPosition{}, err
	}
	return created, nil
}

// ListByPosition implements payment.PaymentPositionRepository. The owning
// payment document is loaded on each line item; the calculation merge reads
// its payment type and status.
func (r *paymentPositionRepositoryImpl) ListByPosition(ctx context.Context, positionID string, payPeriod time.Time) ([]payment.PaymentPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pp.id, pp.payment_id, pp.position_id, pp.base_sum, pp.deductions,
		       pp.pay_sum, pp.funds, pp.created_at, pp.updated_at,
		       p.id, p.company_id, p.payment_type_id, p.pay_period, p.acc_period,
		       p.doc_number, p.doc_date, p.date_from, p.date_to, p.base_sum,
		       p.deductions, p.pay_sum, p.funds, p.status, p.created_at, p.updated_at
		FROM payment_positions pp
		JOIN payments p ON p.id = pp.payment_id
		WHERE pp.position_id = $1 AND p.acc_period = $2
		ORDER BY pp.created_at
	`

	rows, err := q.Query(ctx, query, positionID, payPeriod)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []payment.PaymentPosition
	for rows.Next() {
		var pp payment.PaymentPosition
		var doc payment.Payment
		if err := rows.Scan(&pp.ID, &pp.PaymentID, &pp.PositionID, &pp.BaseSum,
			&pp.Deductions, &pp.PaySum, &pp.Funds, &pp.CreatedAt, &pp.UpdatedAt,
			&doc.ID, &doc.CompanyID, &doc.PaymentTypeID, &doc.PayPeriod, &doc.AccPeriod,
			&doc.DocNumber, &doc.DocDate, &doc.DateFrom, &doc.DateTo, &doc.BaseSum,
			&doc.Deductions, &doc.PaySum, &doc.Funds, &doc.Status, &doc.CreatedAt,
			&doc.UpdatedAt); err != nil {
			return nil, err
		}
		pp.Payment = &doc
		positions = append(positions, pp)
	}
	return positions, rows.Err()
}

// ListByPayment implements payment.PaymentPositionRepository.
func (r *paymentPositionRepositoryImpl) ListByPayment(ctx context.Context, paymentID string) ([]payment.PaymentPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payment_id, position_id, base_sum, deductions, pay_sum, funds, created_at, updated_at
		FROM payment_positions
		WHERE payment_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []payment.PaymentPosition
	for rows.Next() {
		var pp payment.PaymentPosition
		if err := rows.Scan(&pp.ID, &pp.PaymentID, &pp.PositionID, &pp.BaseSum,
			&pp.Deductions, &pp.PaySum, &pp.Funds, &pp.CreatedAt, &pp.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, pp)
	}
	return positions, rows.Err()
}

// DeleteByIDs implements payment.PaymentPositionRepository.
func (r *paymentPositionRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payment_positions WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("failed to delete payment positions: %w", err)
	}
	return nil
}
