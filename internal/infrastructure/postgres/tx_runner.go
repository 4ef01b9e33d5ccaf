package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/sales"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// Garantia em compilação de que TxRunner implementa sales.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit no retorno normal ou Rollback em qualquer erro.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStorageError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(saleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewStorageError("commit transaction", err)
	}
	return nil
}
