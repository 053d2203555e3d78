package dto

import (
	"time"

	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenditureRequest carries a proposed expenditure. Category and date
// are validated and normalized by the core before storage.
type CreateExpenditureRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaidOn      string          `json:"paidOn" binding:"required"`
	Description string          `json:"description"`
}

// ExpenditureResponse is the stored view of an expenditure.
type ExpenditureResponse struct {
	ExpenditureID string          `json:"expenditureID"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaidOn        string          `json:"paidOn"`
	Description   string          `json:"description"`
	RecordedAt    time.Time       `json:"recordedAt"`
}

// ToExpenditureResponse converts a domain.Expenditure to its API view.
func ToExpenditureResponse(e *domain.Expenditure) ExpenditureResponse {
	return ExpenditureResponse{
		ExpenditureID: e.ExpenditureID,
		Category:      string(e.Category),
		Amount:        e.Amount,
		PaidOn:        e.PaidOn,
		Description:   e.Description,
		RecordedAt:    e.RecordedAt,
	}
}

// ToExpenditureListResponse converts a slice of expenditures.
func ToExpenditureListResponse(expenditures []domain.Expenditure) []ExpenditureResponse {
	out := make([]ExpenditureResponse, len(expenditures))
	for i := range expenditures {
		out[i] = ToExpenditureResponse(&expenditures[i])
	}
	return out
}

// ExpenditureSummaryResponse renders the aggregate totals to two decimal
// places for display.
type ExpenditureSummaryResponse struct {
	TotalCredits      string `json:"totalCredits"`
	TotalExpenses     string `json:"totalExpenses"`
	TotalTransactions string `json:"totalTransactions"`
	NetCash           string `json:"netCash"`
}

// ToExpenditureSummaryResponse formats a summary for display.
func ToExpenditureSummaryResponse(s domain.ExpenditureSummary) ExpenditureSummaryResponse {
	return ExpenditureSummaryResponse{
		TotalCredits:      s.TotalCredits.StringFixed(2),
		TotalExpenses:     s.TotalExpenses.StringFixed(2),
		TotalTransactions: s.TotalTransactions.StringFixed(2),
		NetCash:           s.NetCash.StringFixed(2),
	}
}
