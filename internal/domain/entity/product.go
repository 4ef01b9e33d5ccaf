package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque da loja.
// Quantity nunca fica negativa; uma venda que a levaria abaixo de zero é rejeitada.
type Product struct {
	ID         int64
	Name       string
	Quantity   int64
	Price      decimal.Decimal // preço de venda unitário
	Expiry     time.Time       // validade
	Category   string
	Barcode    *string // único quando presente
	SupplierID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
