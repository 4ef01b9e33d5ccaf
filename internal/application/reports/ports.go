package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportLine linha do relatório de vendas (venda já resolvida com nomes).
type ReportLine struct {
	SaleID        int64
	OccurredAt    time.Time
	ProductName   string
	ClientName    string // vazio quando a venda não tem cliente
	Quantity      int64
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
}

// SalesReportGenerator renderiza o relatório de vendas de um período.
// Implementado pela infraestrutura de PDF.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, from, to time.Time, lines []ReportLine, grandTotal decimal.Decimal) ([]byte, error)
}
