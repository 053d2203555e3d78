package accounting

import (
	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizeExpenditures folds a user's expenditure history into its totals.
// Empty input yields an all-zero summary.
func SummarizeExpenditures(expenditures []domain.Expenditure) domain.ExpenditureSummary {
	credits := decimal.Zero
	expenses := decimal.Zero

	for _, e := range expenditures {
		if e.Category == domain.CategoryCredit {
			credits = credits.Add(e.Amount)
		} else {
			expenses = expenses.Add(e.Amount)
		}
	}

	return domain.ExpenditureSummary{
		TotalCredits:      credits,
		TotalExpenses:     expenses,
		TotalTransactions: credits.Add(expenses),
		NetCash:           credits.Sub(expenses),
	}
}

// SummarizeSales folds a set of sales into its totals. ProfitPercent is the
// total profit as a percentage of the total bought amount, zero when the
// bought total is zero.
func SummarizeSales(sales []domain.Sale) domain.SaleSummary {
	totalSales := decimal.Zero
	totalProfit := decimal.Zero
	totalBalance := decimal.Zero
	totalBought := decimal.Zero

	for _, s := range sales {
		totalSales = totalSales.Add(s.SellAmount)
		totalProfit = totalProfit.Add(s.Profit)
		totalBalance = totalBalance.Add(s.Balance)
		totalBought = totalBought.Add(s.BoughtAmount)
	}

	profitPercent := decimal.Zero
	if !totalBought.IsZero() {
		profitPercent = totalProfit.Div(totalBought).Mul(decimal.NewFromInt(100))
	}

	return domain.SaleSummary{
		TotalSales:    totalSales,
		TotalProfit:   totalProfit,
		TotalBalance:  totalBalance,
		ProfitPercent: profitPercent,
	}
}
