package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/paymenttype"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type paymentTypeRepositoryImpl struct {
	db *database.DB
}

func NewPaymentTypeRepository(db *database.DB) paymenttype.PaymentTypeRepository {
	return &paymentTypeRepositoryImpl{db: db}
}

const paymentTypeColumns = `id, name, payment_group, calc_method, created_at, updated_at`

// Create implements paymenttype.PaymentTypeRepository.
func (r *paymentTypeRepositoryImpl) Create(ctx context.Context, pt paymenttype.PaymentType) (paymenttype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_types (name, payment_group, calc_method)
		VALUES ($1, $2, $3)
		RETURNING ` + paymentTypeColumns

	var created paymenttype.PaymentType
	err := q.QueryRow(ctx, query, pt.Name, pt.PaymentGroup, pt.CalcMethod).
		Scan(&created.ID, &created.Name, &created.PaymentGroup, &created.CalcMethod,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return paymenttype.PaymentType{}, err
	}
	return created, nil
}

// GetByID implements paymenttype.PaymentTypeRepository.
func (r *paymentTypeRepositoryImpl) GetByID(ctx context.Context, id string) (paymenttype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	var found paymenttype.PaymentType
	err := q.QueryRow(ctx,
		`SELECT `+paymentTypeColumns+` FROM payment_types WHERE id = $1`, id).
		Scan(&found.ID, &found.Name, &found.PaymentGroup, &found.CalcMethod,
			&found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return paymenttype.PaymentType{}, paymenttype.ErrPaymentTypeNotFound
		}
		return paymenttype.PaymentType{}, err
	}
	return found, nil
}

// List implements paymenttype.PaymentTypeRepository.
func (r *paymentTypeRepositoryImpl) List(ctx context.Context) ([]paymenttype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+paymentTypeColumns+` FROM payment_types ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPaymentTypes(rows)
}

// ListByGroup implements paymenttype.PaymentTypeRepository. Catalog order is
// creation order; the calculation engine depends on it being stable.
func (r *paymentTypeRepositoryImpl) ListByGroup(ctx context.Context, group paymenttype.PaymentGroup) ([]paymenttype.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+paymentTypeColumns+` FROM payment_types WHERE payment_group = $1 ORDER BY created_at`,
		group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPaymentTypes(rows)
}

// Delete implements paymenttype.PaymentTypeRepository.
func (r *paymentTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payment_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment type with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return paymenttype.ErrPaymentTypeNotFound
	}
	return nil
}

func collectPaymentTypes(rows pgx.Rows) ([]paymenttype.PaymentType, error) {
	var types []paymenttype.PaymentType
	for rows.Next() {
		var pt paymenttype.PaymentType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.PaymentGroup, &pt.CalcMethod,
			&pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}
