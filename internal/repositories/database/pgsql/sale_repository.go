package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepository {
	return &pgxSaleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepository = (*pgxSaleRepository)(nil)

const saleColumns = `sale_id, user_id, item, bought_amount, sell_amount, payment_mode, transaction_code, balance, profit, description, sold_on, created_at`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.UserID,
		&s.Item,
		&s.BoughtAmount,
		&s.SellAmount,
		&s.PaymentMode,
		&s.TransactionCode,
		&s.Balance,
		&s.Profit,
		&s.Description,
		&s.SoldOn,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan sale row: %w", err)
	}
	return &s, nil
}

func (r *pgxSaleRepository) collectSales(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}
	return sales, nil
}

func (r *pgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
        INSERT INTO sales (sale_id, user_id, item, bought_amount, sell_amount, payment_mode, transaction_code, balance, profit, description, sold_on, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID,
		sale.UserID,
		sale.Item,
		sale.BoughtAmount,
		sale.SellAmount,
		sale.PaymentMode,
		sale.TransactionCode,
		sale.Balance,
		sale.Profit,
		sale.Description,
		sale.SoldOn,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}
	return nil
}

func (r *pgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	return scanSale(r.Pool.QueryRow(ctx, query, saleID))
}

func (r *pgxSaleRepository) FindSalesByUser(ctx context.Context, userID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 ORDER BY created_at DESC;`
	return r.collectSales(ctx, query, userID)
}

func (r *pgxSaleRepository) FindSalesByUserAndDate(ctx context.Context, userID string, soldOn string) ([]domain.Sale, error) {
	// sold_on is stored as text; the cast tolerates unpadded day/month parts.
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 AND sold_on::date = $2::date ORDER BY created_at DESC;`
	return r.collectSales(ctx, query, userID, soldOn)
}

func (r *pgxSaleRepository) FindSalesByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 AND sold_on::date BETWEEN $2 AND $3 ORDER BY created_at DESC;`
	return r.collectSales(ctx, query, userID, from, to)
}

func (r *pgxSaleRepository) FindSalesByUserWithBalance(ctx context.Context, userID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 AND balance > 0 ORDER BY created_at DESC;`
	return r.collectSales(ctx, query, userID)
}

func (r *pgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sale not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
