// Package records holds the pure validation rules applied to expenditure and
// sale submissions before they reach storage. Nothing here has side effects;
// every failure is reported, never silently corrected.
package records

import (
	"fmt"
	"strings"

	"github.com/casherapp/casher_backend/internal/apperrors"
	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/casherapp/casher_backend/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// Accepted year range for record dates.
const (
	YearMin = 2022
	YearMax = 2023
)

// ValidateExpenditure checks a proposed expenditure and returns the
// normalized (lower-cased) category together with the canonical date.
func ValidateExpenditure(category string, amount decimal.Decimal, dateRaw string) (domain.ExpenditureCategory, string, error) {
	normalized := domain.ExpenditureCategory(strings.ToLower(category))
	if normalized != domain.CategoryCredit && normalized != domain.CategoryExpense {
		return "", "", fmt.Errorf("%w: category must be either credit or expense", apperrors.ErrValidation)
	}

	if amount.IsNegative() {
		return "", "", fmt.Errorf("%w: was %s a loan? record it as a credit with a description of loan",
			apperrors.ErrValidation, amount.String())
	}

	paidOn, err := dates.Normalize(dateRaw, YearMin, YearMax)
	if err != nil {
		return "", "", err
	}

	return normalized, paidOn, nil
}

// ValidateSale checks a proposed sale and returns the normalized payment
// mode together with the canonical date. The caller derives profit as
// sell - (bought + balance).
func ValidateSale(item string, bought, sell, balance decimal.Decimal, paymentMode, dateRaw string) (domain.PaymentMode, string, error) {
	if strings.TrimSpace(item) == "" {
		return "", "", fmt.Errorf("%w: item must not be empty", apperrors.ErrValidation)
	}

	if bought.IsNegative() || sell.IsNegative() || balance.IsNegative() {
		return "", "", fmt.Errorf("%w: bought, sell and balance amounts must not be negative", apperrors.ErrValidation)
	}

	mode := domain.PaymentMode(strings.ToLower(paymentMode))
	switch mode {
	case domain.ModeCash, domain.ModeMobileMoney, domain.ModeGift:
	default:
		return "", "", fmt.Errorf("%w: payment mode must be cash, mobile_money or gift", apperrors.ErrValidation)
	}

	// A zero-price sale must be explicitly tagged a gift.
	if sell.IsZero() && mode != domain.ModeGift {
		return "", "", fmt.Errorf("%w: a sale with no sell amount must use the gift payment mode", apperrors.ErrValidation)
	}

	soldOn, err := dates.Normalize(dateRaw, YearMin, YearMax)
	if err != nil {
		return "", "", err
	}

	return mode, soldOn, nil
}
