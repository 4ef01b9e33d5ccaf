package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, produto_id, quantidade, preco_unitario, total,
	cliente_id, forma_pagamento, occurred_at`

// SaleRepo implementação do porto SaleRepository sobre PostgreSQL
// (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de persistência para vendas.
// Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.Total,
		&s.ClientID, &s.PaymentMethod, &s.OccurredAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create insere a venda e preenche sale.ID com o identificador gerado.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO vendas (produto_id, quantidade, preco_unitario, total, cliente_id, forma_pagamento, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.ProductID, sale.Quantity, sale.UnitPrice, sale.Total,
		sale.ClientID, sale.PaymentMethod, sale.OccurredAt,
	).Scan(&sale.ID)
	if err != nil {
		return translateWriteError("insert venda", err)
	}
	return nil
}

// GetByID obtém uma venda por id. Devolve (nil, nil) quando não existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM vendas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get venda", err)
	}
	return s, nil
}

// ListRecent devolve as vendas mais recentes, limitadas por limit.
func (r *SaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+saleColumns+` FROM vendas ORDER BY occurred_at DESC, id DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, domain.NewStorageError("list vendas recentes", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListByPeriod devolve as vendas ocorridas no intervalo [from, to].
func (r *SaleRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+saleColumns+`
		FROM vendas
		WHERE occurred_at BETWEEN $1 AND $2
		ORDER BY occurred_at, id`, from, to)
	if err != nil {
		return nil, domain.NewStorageError("list vendas por período", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan venda", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list vendas", err)
	}
	return sales, nil
}
