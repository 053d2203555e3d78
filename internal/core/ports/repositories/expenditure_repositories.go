package repositories

import (
	"context"

	"github.com/casherapp/casher_backend/internal/core/domain"
)

// ExpenditureReader defines read operations for expenditure data
type ExpenditureReader interface {
	// FindExpenditureByID retrieves a specific expenditure by its ID.
	FindExpenditureByID(ctx context.Context, expenditureID string) (*domain.Expenditure, error)

	// FindExpendituresByUser retrieves all expenditures owned by a user,
	// newest first.
	FindExpendituresByUser(ctx context.Context, userID string) ([]domain.Expenditure, error)
}

// ExpenditureWriter defines write operations for expenditure data
type ExpenditureWriter interface {
	// SaveExpenditure persists a new expenditure.
	SaveExpenditure(ctx context.Context, expenditure domain.Expenditure) error

	// UpdateExpenditure replaces the mutable fields of an expenditure.
	UpdateExpenditure(ctx context.Context, expenditure domain.Expenditure) error

	// DeleteExpenditure removes an expenditure.
	DeleteExpenditure(ctx context.Context, expenditureID string) error
}

// ExpenditureRepository combines all expenditure-related repository interfaces.
type ExpenditureRepository interface {
	ExpenditureReader
	ExpenditureWriter
}
