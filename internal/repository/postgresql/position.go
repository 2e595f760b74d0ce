package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

const positionColumns = `id, company_id, card_number, person_id, date_from, date_to, created_at, updated_at`

func scanPosition(row pgx.Row) (position.Position, error) {
	var p position.Position
	err := row.Scan(&p.ID, &p.CompanyID, &p.CardNumber, &p.PersonID,
		&p.DateFrom, &p.DateTo, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (company_id, card_number, person_id, date_from, date_to)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + positionColumns

	created, err := scanPosition(q.QueryRow(ctx, query,
		p.CompanyID, p.CardNumber, p.PersonID, p.DateFrom, p.DateTo))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return position.Position{}, position.ErrCardNumberExists
		}
		return position.Position{}, err
	}
	return created, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPosition(q.QueryRow(ctx,
		`SELECT `+positionColumns+` FROM positions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, err
	}
	return found, nil
}

// ListByCompany implements position.PositionRepository.
func (r *positionRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+positionColumns+` FROM positions WHERE company_id = $1 ORDER BY card_number`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPositions(rows)
}

// ListEmployed implements position.PositionRepository.
func (r *positionRepositoryImpl) ListEmployed(ctx context.Context, companyID string, onDate time.Time) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + positionColumns + `
		FROM positions
		WHERE company_id = $1
		  AND person_id IS NOT NULL
		  AND date_from <= $2 AND date_to >= $2
		ORDER BY card_number
	`

	rows, err := q.Query(ctx, query, companyID, onDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPositions(rows)
}

// CountEmployees implements position.PositionRepository.
func (r *positionRepositoryImpl) CountEmployees(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM positions WHERE company_id = $1 AND person_id IS NOT NULL`,
		companyID).Scan(&count)
	return count, err
}

// NextCardNumber implements position.PositionRepository. Card numbers are
// per-company integers stored as text.
func (r *positionRepositoryImpl) NextCardNumber(ctx context.Context, companyID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(card_number::int), 0) + 1
		FROM positions
		WHERE company_id = $1 AND card_number ~ '^[0-9]+$'
	`

	var next int
	if err := q.QueryRow(ctx, query, companyID).Scan(&next); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", next), nil
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, id string, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.PersonID != nil {
		updates["person_id"] = *req.PersonID
	}
	if req.DateFrom != nil {
		d, _ := time.Parse("2006-01-02", *req.DateFrom)
		updates["date_from"] = d
	}
	if req.DateTo != nil {
		d, _ := time.Parse("2006-01-02", *req.DateTo)
		updates["date_to"] = d
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for position update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE positions SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return position.ErrPositionNotFound
		}
		return fmt.Errorf("failed to update position with id %s: %w", id, err)
	}
	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}

func collectPositions(rows pgx.Rows) ([]position.Position, error) {
	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.CardNumber, &p.PersonID,
			&p.DateFrom, &p.DateTo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
