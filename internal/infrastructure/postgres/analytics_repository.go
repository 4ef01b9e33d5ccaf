package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only do dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador de consultas do dashboard.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesTotals devolve receita bruta e número de vendas no período.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	var revenue decimal.Decimal
	var count int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM vendas
		WHERE occurred_at BETWEEN $1 AND $2`, from, to).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, domain.NewStorageError("sales totals", err)
	}
	return revenue, count, nil
}

// GetTopProducts devolve os produtos com mais unidades vendidas no período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.nome, SUM(v.quantidade) AS unidades, SUM(v.total) AS receita
		FROM vendas v
		JOIN produtos p ON p.id = v.produto_id
		WHERE v.occurred_at BETWEEN $1 AND $2
		GROUP BY p.id, p.nome
		ORDER BY unidades DESC, receita DESC
		LIMIT $3`, from, to, limit)
	if err != nil {
		return nil, domain.NewStorageError("top produtos", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Name, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, domain.NewStorageError("scan top produto", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("top produtos", err)
	}
	return results, nil
}

// GetLowStock devolve produtos com estoque menor ou igual ao limiar.
func (r *AnalyticsRepo) GetLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM produtos WHERE quantidade <= $1 ORDER BY quantidade, nome`,
		threshold)
	if err != nil {
		return nil, domain.NewStorageError("low stock", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// GetExpiring devolve produtos cuja validade vence até a data indicada.
func (r *AnalyticsRepo) GetExpiring(ctx context.Context, before time.Time) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM produtos WHERE validade <= $1 ORDER BY validade, nome`,
		before)
	if err != nil {
		return nil, domain.NewStorageError("expiring produtos", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}
