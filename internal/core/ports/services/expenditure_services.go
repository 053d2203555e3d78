package services

import (
	"context"

	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/casherapp/casher_backend/internal/dto"
)

// ExpenditureSvcFacade defines the expenditure operations exposed to handlers.
// Ownership checks happen here, not in middleware.
type ExpenditureSvcFacade interface {
	// CreateExpenditure validates and persists a new expenditure for a user.
	CreateExpenditure(ctx context.Context, userID string, req dto.CreateExpenditureRequest) (*domain.Expenditure, error)

	// ListExpenditures returns a user's expenditures, newest first.
	ListExpenditures(ctx context.Context, userID string) ([]domain.Expenditure, error)

	// UpdateExpenditure fully replaces the mutable fields of an expenditure
	// owned by the caller.
	UpdateExpenditure(ctx context.Context, userID string, expenditureID string, req dto.CreateExpenditureRequest) (*domain.Expenditure, error)

	// DeleteExpenditure removes an expenditure owned by the caller.
	DeleteExpenditure(ctx context.Context, userID string, expenditureID string) error

	// SummarizeExpenditures aggregates a user's full expenditure history.
	SummarizeExpenditures(ctx context.Context, userID string) (domain.ExpenditureSummary, error)
}
