package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how a sale was settled.
type PaymentMode string

const (
	ModeCash        PaymentMode = "cash"
	ModeMobileMoney PaymentMode = "mobile_money"
	ModeGift        PaymentMode = "gift"
)

// Sale is an item transaction record owned by one user.
// Profit is derived at creation time: sell - (bought + balance).
type Sale struct {
	SaleID          string          `json:"saleID"`
	UserID          string          `json:"userID"`
	Item            string          `json:"item"`
	BoughtAmount    decimal.Decimal `json:"boughtAmount"`
	SellAmount      decimal.Decimal `json:"sellAmount"`
	PaymentMode     PaymentMode     `json:"paymentMode"`
	TransactionCode string          `json:"transactionCode"`
	Balance         decimal.Decimal `json:"balance"` // amount still owed by the buyer
	Profit          decimal.Decimal `json:"profit"`
	Description     string          `json:"description"`
	SoldOn          string          `json:"soldOn"` // canonical YYYY-MM-DD
	CreatedAt       time.Time       `json:"createdAt"`
}

// SaleSummary holds aggregate totals over a set of sales.
type SaleSummary struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	ProfitPercent decimal.Decimal `json:"profitPercent"`
}

// SalesHistory is the per-window rollup returned by the history endpoint.
type SalesHistory struct {
	Today   SaleSummary `json:"today"`
	Week    SaleSummary `json:"week"`
	Month   SaleSummary `json:"month"`
	AllTime SaleSummary `json:"allTime"`
}
