package repository

import (
	"context"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE).
	// Usado dentro da transação de venda para serializar o decremento de estoque.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	// DecrementStock subtrai qty do estoque e atualiza updated_at.
	DecrementStock(ctx context.Context, id int64, qty int64, at time.Time) error
}
