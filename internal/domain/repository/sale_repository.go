package repository

import (
	"context"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// SaleRepository define o porto de persistência para Sale. Vendas são
// append-only: não há update nem delete no fluxo principal.
type SaleRepository interface {
	// Create insere a venda e preenche sale.ID com o identificador gerado.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
}
