package repositories

import (
	"context"
	"time"

	"github.com/casherapp/casher_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a specific sale by its ID.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSalesByUser retrieves all sales owned by a user, newest first.
	FindSalesByUser(ctx context.Context, userID string) ([]domain.Sale, error)

	// FindSalesByUserAndDate retrieves a user's sales for one calendar date.
	FindSalesByUserAndDate(ctx context.Context, userID string, soldOn string) ([]domain.Sale, error)

	// FindSalesByUserInRange retrieves a user's sales with sold_on between
	// from and to inclusive.
	FindSalesByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Sale, error)

	// FindSalesByUserWithBalance retrieves a user's sales with an
	// outstanding balance greater than zero.
	FindSalesByUserWithBalance(ctx context.Context, userID string) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a new sale.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale removes a sale. Sales have no edit operation.
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepository combines all sale-related repository interfaces.
type SaleRepository interface {
	SaleReader
	SaleWriter
}
