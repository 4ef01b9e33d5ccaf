package sales

import (
	"context"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de DB, passando
// repositórios atados a essa tx. Garante a atomicidade entre a inserção da
// venda e o decremento de estoque: commit no retorno normal, rollback em erro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
