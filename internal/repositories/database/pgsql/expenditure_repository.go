package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxExpenditureRepository struct {
	BaseRepository
}

func newPgxExpenditureRepository(db *pgxpool.Pool) portsrepo.ExpenditureRepository {
	return &pgxExpenditureRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenditureRepository = (*pgxExpenditureRepository)(nil)

const expenditureColumns = `expenditure_id, user_id, category, amount, paid_on, description, recorded_at`

func scanExpenditure(row pgx.Row) (*domain.Expenditure, error) {
	var e domain.Expenditure
	err := row.Scan(
		&e.ExpenditureID,
		&e.UserID,
		&e.Category,
		&e.Amount,
		&e.PaidOn,
		&e.Description,
		&e.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expenditure row: %w", err)
	}
	return &e, nil
}

func (r *pgxExpenditureRepository) SaveExpenditure(ctx context.Context, expenditure domain.Expenditure) error {
	query := `
        INSERT INTO expenditures (expenditure_id, user_id, category, amount, paid_on, description, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		expenditure.ExpenditureID,
		expenditure.UserID,
		expenditure.Category,
		expenditure.Amount,
		expenditure.PaidOn,
		expenditure.Description,
		expenditure.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expenditure: %w", err)
	}
	return nil
}

func (r *pgxExpenditureRepository) FindExpenditureByID(ctx context.Context, expenditureID string) (*domain.Expenditure, error) {
	query := `SELECT ` + expenditureColumns + ` FROM expenditures WHERE expenditure_id = $1;`
	return scanExpenditure(r.Pool.QueryRow(ctx, query, expenditureID))
}

func (r *pgxExpenditureRepository) FindExpendituresByUser(ctx context.Context, userID string) ([]domain.Expenditure, error) {
	query := `SELECT ` + expenditureColumns + ` FROM expenditures WHERE user_id = $1 ORDER BY recorded_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenditures: %w", err)
	}
	defer rows.Close()

	expenditures := []domain.Expenditure{}
	for rows.Next() {
		e, err := scanExpenditure(rows)
		if err != nil {
			return nil, err
		}
		expenditures = append(expenditures, *e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expenditure rows: %w", rows.Err())
	}
	return expenditures, nil
}

func (r *pgxExpenditureRepository) UpdateExpenditure(ctx context.Context, expenditure domain.Expenditure) error {
	query := `
        UPDATE expenditures
        SET category = $1, amount = $2, paid_on = $3, description = $4, recorded_at = $5
        WHERE expenditure_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		expenditure.Category,
		expenditure.Amount,
		expenditure.PaidOn,
		expenditure.Description,
		expenditure.RecordedAt,
		expenditure.ExpenditureID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expenditure: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expenditure not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *pgxExpenditureRepository) DeleteExpenditure(ctx context.Context, expenditureID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenditures WHERE expenditure_id = $1;`, expenditureID)
	if err != nil {
		return fmt.Errorf("failed to delete expenditure: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expenditure not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
