package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// TopProductResult resultado cru da consulta de produtos mais vendidos.
// Produzido pela DB; o use case converte em DTO.
type TopProductResult struct {
	ProductID int64
	Name      string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// AnalyticsRepository define as consultas de leitura para o dashboard.
// As implementações são read-only (não modificam dados).
type AnalyticsRepository interface {
	// GetSalesTotals devolve a receita bruta e o número de vendas no período.
	// Usa COALESCE para devolver zero quando não há vendas.
	GetSalesTotals(ctx context.Context, from, to time.Time) (revenue decimal.Decimal, count int64, err error)

	// GetTopProducts devolve os `limit` produtos com mais unidades vendidas no período.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)

	// GetLowStock devolve produtos com estoque menor ou igual ao limiar.
	GetLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error)

	// GetExpiring devolve produtos cuja validade vence até a data indicada.
	GetExpiring(ctx context.Context, before time.Time) ([]*entity.Product, error)
}
