package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar uma venda.
// Tendered (valor pago) é opcional; quando presente o troco é calculado.
type RecordSaleRequest struct {
	ProductID     int64            `json:"product_id" validate:"required"`
	Quantity      int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	ClientID      *int64           `json:"client_id"`
	PaymentMethod string           `json:"payment_method" validate:"required"`
	Tendered      *decimal.Decimal `json:"tendered"`
}

// SaleResponse saída de uma venda registrada.
type SaleResponse struct {
	ID            int64            `json:"id"`
	ProductID     int64            `json:"product_id"`
	Quantity      int64            `json:"quantity"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	Total         decimal.Decimal  `json:"total"`
	ClientID      *int64           `json:"client_id,omitempty"`
	PaymentMethod string           `json:"payment_method"`
	OccurredAt    time.Time        `json:"occurred_at"`
	Change        *decimal.Decimal `json:"change,omitempty"` // troco, quando houve valor pago
}

// SaleListResponse lista de vendas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
