package repository

import (
	"context"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// ClientRepository define o porto de persistência para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete remove o cliente; vendas associadas ficam com referência nula
	// (ON DELETE SET NULL no schema).
	Delete(ctx context.Context, id int64) error
}
