package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenditureCategory classifies an expenditure as an inflow or an outflow.
type ExpenditureCategory string

const (
	CategoryCredit  ExpenditureCategory = "credit"
	CategoryExpense ExpenditureCategory = "expense"
)

// Expenditure is a single credit or expense record owned by one user.
type Expenditure struct {
	ExpenditureID string              `json:"expenditureID"`
	UserID        string              `json:"userID"`
	Category      ExpenditureCategory `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	PaidOn        string              `json:"paidOn"` // canonical YYYY-MM-DD
	Description   string              `json:"description"`
	RecordedAt    time.Time           `json:"recordedAt"`
}

// ExpenditureSummary holds the aggregate totals over a user's expenditures.
type ExpenditureSummary struct {
	TotalCredits      decimal.Decimal `json:"totalCredits"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	TotalTransactions decimal.Decimal `json:"totalTransactions"`
	NetCash           decimal.Decimal `json:"netCash"`
}
