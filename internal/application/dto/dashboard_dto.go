package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopProductDTO item do widget de mais vendidos.
type TopProductDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StockAlertDTO item dos widgets de estoque baixo e validade próxima.
type StockAlertDTO struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Expiry    time.Time `json:"expiry"`
}

// DashboardSummaryDTO resumo exibido na tela inicial.
type DashboardSummaryDTO struct {
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	TodaySaleCount int64           `json:"today_sale_count"`
	MonthRevenue   decimal.Decimal `json:"month_revenue"`
	TopProducts    []TopProductDTO `json:"top_products"`
	LowStock       []StockAlertDTO `json:"low_stock"`
	Expiring       []StockAlertDTO `json:"expiring"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
