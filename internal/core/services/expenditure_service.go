package services

import (
	"context"
	"fmt"
	"time"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	portsrepo "github.com/casherapp/casher_backend/internal/core/ports/repositories"
	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/dto"
	"github.com/casherapp/casher_backend/internal/utils/accounting"
	"github.com/casherapp/casher_backend/internal/utils/records"
	"github.com/google/uuid"
)

type expenditureService struct {
	expenditureRepo portsrepo.ExpenditureRepository
}

// NewExpenditureService creates the expenditure service.
func NewExpenditureService(expenditureRepo portsrepo.ExpenditureRepository) portssvc.ExpenditureSvcFacade {
	return &expenditureService{expenditureRepo: expenditureRepo}
}

var _ portssvc.ExpenditureSvcFacade = (*expenditureService)(nil)

func (s *expenditureService) CreateExpenditure(ctx context.Context, userID string, req dto.CreateExpenditureRequest) (*domain.Expenditure, error) {
	category, paidOn, err := records.ValidateExpenditure(req.Category, req.Amount, req.PaidOn)
	if err != nil {
		return nil, err
	}

	expenditure := domain.Expenditure{
		ExpenditureID: uuid.NewString(),
		UserID:        userID,
		Category:      category,
		Amount:        req.Amount,
		PaidOn:        paidOn,
		Description:   req.Description,
		RecordedAt:    time.Now(),
	}

	if err := s.expenditureRepo.SaveExpenditure(ctx, expenditure); err != nil {
		return nil, fmt.Errorf("%w: could not save expenditure", apperrors.ErrConflict)
	}
	return &expenditure, nil
}

func (s *expenditureService) ListExpenditures(ctx context.Context, userID string) ([]domain.Expenditure, error) {
	expenditures, err := s.expenditureRepo.FindExpendituresByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenditures: %w", err)
	}
	return expenditures, nil
}

func (s *expenditureService) UpdateExpenditure(ctx context.Context, userID string, expenditureID string, req dto.CreateExpenditureRequest) (*domain.Expenditure, error) {
	existing, err := s.expenditureRepo.FindExpenditureByID(ctx, expenditureID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("%w: you can only edit your own expenditures", apperrors.ErrForbidden)
	}

	category, paidOn, err := records.ValidateExpenditure(req.Category, req.Amount, req.PaidOn)
	if err != nil {
		return nil, err
	}

	// Full replace of the mutable fields; the record timestamp moves too.
	existing.Category = category
	existing.Amount = req.Amount
	existing.PaidOn = paidOn
	existing.Description = req.Description
	existing.RecordedAt = time.Now()

	if err := s.expenditureRepo.UpdateExpenditure(ctx, *existing); err != nil {
		return nil, fmt.Errorf("%w: could not update expenditure", apperrors.ErrConflict)
	}
	return existing, nil
}

func (s *expenditureService) DeleteExpenditure(ctx context.Context, userID string, expenditureID string) error {
	existing, err := s.expenditureRepo.FindExpenditureByID(ctx, expenditureID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("%w: you can only delete your own expenditures", apperrors.ErrForbidden)
	}

	if err := s.expenditureRepo.DeleteExpenditure(ctx, expenditureID); err != nil {
		return fmt.Errorf("failed to delete expenditure: %w", err)
	}
	return nil
}

func (s *expenditureService) SummarizeExpenditures(ctx context.Context, userID string) (domain.ExpenditureSummary, error) {
	expenditures, err := s.expenditureRepo.FindExpendituresByUser(ctx, userID)
	if err != nil {
		return domain.ExpenditureSummary{}, fmt.Errorf("failed to load expenditures: %w", err)
	}
	return accounting.SummarizeExpenditures(expenditures), nil
}
