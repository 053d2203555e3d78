package services

import (
	"context"

	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/casherapp/casher_backend/internal/dto"
)

// SaleSvcFacade defines the sale operations exposed to handlers.
type SaleSvcFacade interface {
	// CreateSale validates and persists a new sale for a user, deriving
	// profit from the submitted amounts.
	CreateSale(ctx context.Context, userID string, req dto.CreateSaleRequest) (*domain.Sale, error)

	// ListSales returns a user's sales, newest first.
	ListSales(ctx context.Context, userID string) ([]domain.Sale, error)

	// ListSalesOnDate returns a user's sales for one calendar date. The raw
	// date goes through the normalizer first.
	ListSalesOnDate(ctx context.Context, userID string, dateRaw string) ([]domain.Sale, error)

	// DailyTransactions aggregates a user's sales for one calendar date.
	// Fails with apperrors.ErrNotFound when no sale exists on that date.
	DailyTransactions(ctx context.Context, userID string, dateRaw string) (domain.SaleSummary, error)

	// TransactionHistory returns the today / this-week / this-month /
	// all-time rollup. Empty windows yield zero summaries, never an error.
	TransactionHistory(ctx context.Context, userID string) (domain.SalesHistory, error)

	// ListSalesWithBalance returns the user's sales still carrying an
	// outstanding balance.
	ListSalesWithBalance(ctx context.Context, userID string) ([]domain.Sale, error)

	// DeleteSale removes a sale owned by the caller.
	DeleteSale(ctx context.Context, userID string, saleID string) error
}
