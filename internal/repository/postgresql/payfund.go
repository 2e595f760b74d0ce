package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payfund"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type fundTypeRepositoryImpl struct {
	db *database.DB
}

func NewFundTypeRepository(db *database.DB) payfund.FundTypeRepository {
	return &fundTypeRepositoryImpl{db: db}
}

// Create implements payfund.FundTypeRepository.
func (r *fundTypeRepositoryImpl) Create(ctx context.Context, ft payfund.FundType) (payfund.FundType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fund_types (name, rate)
		VALUES ($1, $2)
		RETURNING id, name, rate, created_at, updated_at
	`

	var created payfund.FundType
	err := q.QueryRow(ctx, query, ft.Name, ft.Rate).
		Scan(&created.ID, &created.Name, &created.Rate, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return payfund.FundType{}, err
	}
	return created, nil
}

// List implements payfund.FundTypeRepository.
func (r *fundTypeRepositoryImpl) List(ctx context.Context) ([]payfund.FundType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, name, rate, created_at, updated_at FROM fund_types ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []payfund.FundType
	for rows.Next() {
		var ft payfund.FundType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Rate, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, ft)
	}
	return types, rows.Err()
}

type payFundRepositoryImpl struct {
	db *database.DB
}

func NewPayFundRepository(db *database.DB) payfund.PayFundRepository {
	return &payFundRepositoryImpl{db: db}
}

const payFundColumns = `id, position_id, fund_type_id, pay_period, base_sum, sum, created_at, updated_at`

// Create implements payfund.PayFundRepository.
func (r *payFundRepositoryImpl) Create(ctx context.Context, pf payfund.PayFund) (payfund.PayFund, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_funds (position_id, fund_type_id, pay_period, base_sum, sum)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + payFundColumns

	var created payfund.PayFund
	err := q.QueryRow(ctx, query,
		pf.PositionID, pf.FundTypeID, pf.PayPeriod, pf.BaseSum, pf.Sum).
		Scan(&created.ID, &created.PositionID, &created.FundTypeID, &created.PayPeriod,
			&created.BaseSum, &created.Sum, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return payfund.PayFund{}, err
	}
	return created, nil
}

// ListByPosition implements payfund.PayFundRepository.
func (r *payFundRepositoryImpl) ListByPosition(ctx context.Context, positionID string, payPeriod time.Time) ([]payfund.PayFund, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payFundColumns + `
		FROM pay_funds
		WHERE position_id = $1 AND pay_period = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, positionID, payPeriod)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var funds []payfund.PayFund
	for rows.Next() {
		var pf payfund.PayFund
		if err := rows.Scan(&pf.ID, &pf.PositionID, &pf.FundTypeID, &pf.PayPeriod,
			&pf.BaseSum, &pf.Sum, &pf.CreatedAt, &pf.UpdatedAt); err != nil {
			return nil, err
		}
		funds = append(funds, pf)
	}
	return funds, rows.Err()
}

// DeleteByIDs implements payfund.PayFundRepository.
func (r *payFundRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM pay_funds WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("failed to delete pay funds: %w", err)
	}
	return nil
}
