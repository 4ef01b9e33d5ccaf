package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Quantity   int64           `json:"quantity" validate:"min=0"`
	Price      decimal.Decimal `json:"price"`
	Expiry     time.Time       `json:"expiry" validate:"required"`
	Category   string          `json:"category"`
	Barcode    *string         `json:"barcode"`
	SupplierID *int64          `json:"supplier_id"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
// A quantidade só muda por venda ou por ajuste explícito aqui.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity   *int64           `json:"quantity" validate:"omitempty,min=0"`
	Price      *decimal.Decimal `json:"price"`
	Expiry     *time.Time       `json:"expiry"`
	Category   *string          `json:"category"`
	Barcode    *string          `json:"barcode"`
	SupplierID *int64           `json:"supplier_id"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Expiry     time.Time       `json:"expiry"`
	Category   string          `json:"category,omitempty"`
	Barcode    *string         `json:"barcode,omitempty"`
	SupplierID *int64          `json:"supplier_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
