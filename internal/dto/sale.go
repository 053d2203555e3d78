package dto

import (
	"time"

	"github.com/casherapp/casher_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest carries a proposed sale. Payment mode and date are
// validated and normalized by the core; profit is derived, never submitted.
type CreateSaleRequest struct {
	Item            string          `json:"item" binding:"required"`
	BoughtAmount    decimal.Decimal `json:"boughtAmount"`
	SellAmount      decimal.Decimal `json:"sellAmount"`
	PaymentMode     string          `json:"paymentMode" binding:"required"`
	TransactionCode string          `json:"transactionCode"`
	Balance         decimal.Decimal `json:"balance"`
	Description     string          `json:"description"`
	SoldOn          string          `json:"soldOn" binding:"required"`
}

// SaleResponse is the stored view of a sale.
type SaleResponse struct {
	SaleID          string          `json:"saleID"`
	Item            string          `json:"item"`
	BoughtAmount    decimal.Decimal `json:"boughtAmount"`
	SellAmount      decimal.Decimal `json:"sellAmount"`
	PaymentMode     string          `json:"paymentMode"`
	TransactionCode string          `json:"transactionCode"`
	Balance         decimal.Decimal `json:"balance"`
	Profit          decimal.Decimal `json:"profit"`
	Description     string          `json:"description"`
	SoldOn          string          `json:"soldOn"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to its API view.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:          s.SaleID,
		Item:            s.Item,
		BoughtAmount:    s.BoughtAmount,
		SellAmount:      s.SellAmount,
		PaymentMode:     string(s.PaymentMode),
		TransactionCode: s.TransactionCode,
		Balance:         s.Balance,
		Profit:          s.Profit,
		Description:     s.Description,
		SoldOn:          s.SoldOn,
		CreatedAt:       s.CreatedAt,
	}
}

// ToSaleListResponse converts a slice of sales.
func ToSaleListResponse(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i := range sales {
		out[i] = ToSaleResponse(&sales[i])
	}
	return out
}

// SaleSummaryResponse renders aggregate sale totals to two decimal places.
type SaleSummaryResponse struct {
	TotalSales    string `json:"totalSales"`
	TotalProfit   string `json:"totalProfit"`
	TotalBalance  string `json:"totalBalance"`
	ProfitPercent string `json:"profitPercent"`
}

// ToSaleSummaryResponse formats a summary for display.
func ToSaleSummaryResponse(s domain.SaleSummary) SaleSummaryResponse {
	return SaleSummaryResponse{
		TotalSales:    s.TotalSales.StringFixed(2),
		TotalProfit:   s.TotalProfit.StringFixed(2),
		TotalBalance:  s.TotalBalance.StringFixed(2),
		ProfitPercent: s.ProfitPercent.StringFixed(2),
	}
}

// SalesHistoryResponse carries the four parallel window summaries.
type SalesHistoryResponse struct {
	Today   SaleSummaryResponse `json:"today"`
	Week    SaleSummaryResponse `json:"week"`
	Month   SaleSummaryResponse `json:"month"`
	AllTime SaleSummaryResponse `json:"allTime"`
}

// ToSalesHistoryResponse formats a history rollup for display.
func ToSalesHistoryResponse(h domain.SalesHistory) SalesHistoryResponse {
	return SalesHistoryResponse{
		Today:   ToSaleSummaryResponse(h.Today),
		Week:    ToSaleSummaryResponse(h.Week),
		Month:   ToSaleSummaryResponse(h.Month),
		AllTime: ToSaleSummaryResponse(h.AllTime),
	}
}
