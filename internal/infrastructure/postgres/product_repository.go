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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome, quantidade, preco, validade, categoria,
	codigo_barras, fornecedor_id, created_at, updated_at`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos.
// Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var category *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Quantity, &p.Price, &p.Expiry, &category,
		&p.Barcode, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if category != nil {
		p.Category = *category
	}
	return &p, nil
}

// Create persiste um novo produto e preenche product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO produtos (nome, quantidade, preco, validade, categoria, codigo_barras, fornecedor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Quantity, product.Price, product.Expiry,
		product.Category, product.Barcode, product.SupplierID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return translateWriteError("insert produto", err)
	}
	return nil
}

// GetByID obtém um produto por id. Devolve (nil, nil) quando não existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM produtos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get produto", err)
	}
	return p, nil
}

// GetForUpdate bloqueia a linha do produto dentro da transação em curso.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM produtos WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get produto for update", err)
	}
	return p, nil
}

// List devolve produtos paginados ordenados por nome.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM produtos ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, domain.NewStorageError("list produtos", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan produto", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list produtos", err)
	}
	return products, nil
}

// Update grava todos os campos mutáveis do produto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE produtos
		SET nome = $1, quantidade = $2, preco = $3, validade = $4,
			categoria = NULLIF($5, ''), codigo_barras = $6, fornecedor_id = $7, updated_at = $8
		WHERE id = $9`
	tag, err := r.q.Exec(ctx, query,
		product.Name, product.Quantity, product.Price, product.Expiry,
		product.Category, product.Barcode, product.SupplierID,
		product.UpdatedAt, product.ID,
	)
	if err != nil {
		return translateWriteError("update produto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete remove o produto. O RESTRICT de vendas vira ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return translateWriteError("delete produto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DecrementStock subtrai qty do estoque. Chamado sob o lock de GetForUpdate;
// o CHECK (quantidade >= 0) do schema é a última barreira.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int64, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE produtos
		SET quantidade = quantidade - $1, updated_at = $2
		WHERE id = $3`, qty, at, id)
	if err != nil {
		return domain.NewStorageError("decrement estoque", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
