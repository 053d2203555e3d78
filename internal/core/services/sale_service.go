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
	"github.com/casherapp/casher_backend/internal/utils/dates"
	"github.com/casherapp/casher_backend/internal/utils/records"
	"github.com/google/uuid"
)

type saleService struct {
	saleRepo portsrepo.SaleRepository
	now      func() time.Time
}

// SaleServiceOption configures the sale service.
type SaleServiceOption func(*saleService)

// WithClock overrides the time source used for window aggregation.
func WithClock(now func() time.Time) SaleServiceOption {
	return func(s *saleService) {
		s.now = now
	}
}

// NewSaleService creates the sale service.
func NewSaleService(saleRepo portsrepo.SaleRepository, opts ...SaleServiceOption) portssvc.SaleSvcFacade {
	s := &saleService{
		saleRepo: saleRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, userID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	mode, soldOn, err := records.ValidateSale(req.Item, req.BoughtAmount, req.SellAmount, req.Balance, req.PaymentMode, req.SoldOn)
	if err != nil {
		return nil, err
	}

	sale := domain.Sale{
		SaleID:          uuid.NewString(),
		UserID:          userID,
		Item:            req.Item,
		BoughtAmount:    req.BoughtAmount,
		SellAmount:      req.SellAmount,
		PaymentMode:     mode,
		TransactionCode: req.TransactionCode,
		Balance:         req.Balance,
		Profit:          req.SellAmount.Sub(req.BoughtAmount.Add(req.Balance)),
		Description:     req.Description,
		SoldOn:          soldOn,
		CreatedAt:       time.Now(),
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("%w: could not save sale", apperrors.ErrConflict)
	}
	return &sale, nil
}

func (s *saleService) ListSales(ctx context.Context, userID string) ([]domain.Sale, error) {
	sales, err := s.saleRepo.FindSalesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (s *saleService) ListSalesOnDate(ctx context.Context, userID string, dateRaw string) ([]domain.Sale, error) {
	soldOn, err := dates.Normalize(dateRaw, records.YearMin, records.YearMax)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindSalesByUserAndDate(ctx, userID, soldOn)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales on date: %w", err)
	}
	return sales, nil
}

// DailyTransactions aggregates one calendar date. A date with no sales fails
// with ErrNotFound; window aggregates in TransactionHistory return zeros
// instead.
func (s *saleService) DailyTransactions(ctx context.Context, userID string, dateRaw string) (domain.SaleSummary, error) {
	soldOn, err := dates.Normalize(dateRaw, records.YearMin, records.YearMax)
	if err != nil {
		return domain.SaleSummary{}, err
	}

	sales, err := s.saleRepo.FindSalesByUserAndDate(ctx, userID, soldOn)
	if err != nil {
		return domain.SaleSummary{}, fmt.Errorf("failed to load sales: %w", err)
	}
	if len(sales) == 0 {
		return domain.SaleSummary{}, fmt.Errorf("%w: you have no sales recorded on this date", apperrors.ErrNotFound)
	}
	return accounting.SummarizeSales(sales), nil
}

func (s *saleService) TransactionHistory(ctx context.Context, userID string) (domain.SalesHistory, error) {
	now := s.now()
	today := now.Format(dates.CanonicalLayout)

	todaySales, err := s.saleRepo.FindSalesByUserAndDate(ctx, userID, today)
	if err != nil {
		return domain.SalesHistory{}, fmt.Errorf("failed to load today's sales: %w", err)
	}

	weekSales, err := s.saleRepo.FindSalesByUserInRange(ctx, userID, dates.StartOfWeek(now), now)
	if err != nil {
		return domain.SalesHistory{}, fmt.Errorf("failed to load weekly sales: %w", err)
	}

	monthFirst, monthLast := dates.MonthBounds(now)
	monthSales, err := s.saleRepo.FindSalesByUserInRange(ctx, userID, monthFirst, monthLast)
	if err != nil {
		return domain.SalesHistory{}, fmt.Errorf("failed to load monthly sales: %w", err)
	}

	allSales, err := s.saleRepo.FindSalesByUser(ctx, userID)
	if err != nil {
		return domain.SalesHistory{}, fmt.Errorf("failed to load sales: %w", err)
	}

	return domain.SalesHistory{
		Today:   accounting.SummarizeSales(todaySales),
		Week:    accounting.SummarizeSales(weekSales),
		Month:   accounting.SummarizeSales(monthSales),
		AllTime: accounting.SummarizeSales(allSales),
	}, nil
}

func (s *saleService) ListSalesWithBalance(ctx context.Context, userID string) ([]domain.Sale, error) {
	sales, err := s.saleRepo.FindSalesByUserWithBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales with balance: %w", err)
	}
	return sales, nil
}

func (s *saleService) DeleteSale(ctx context.Context, userID string, saleID string) error {
	existing, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("%w: you can only delete your own sales", apperrors.ErrForbidden)
	}

	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}
