package usecase

import (
	"context"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. O estoque muda por venda
// (transação em sales) ou por ajuste explícito no Update.
type ProductUseCase struct {
	repo  repository.ProductRepository
	trail *audit.Recorder
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, trail *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, trail: trail}
}

// Create cria um novo produto.
func (uc *ProductUseCase) Create(ctx context.Context, actorID *int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:       in.Name,
		Quantity:   in.Quantity,
		Price:      in.Price,
		Expiry:     in.Expiry,
		Category:   in.Category,
		Barcode:    in.Barcode,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.trail.Record(ctx, actorID, "create", "produtos", &product.ID, nil, product)
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update atualiza os campos presentes. Ajuste manual de quantidade é
// permitido, mas nunca abaixo de zero.
func (uc *ProductUseCase) Update(ctx context.Context, actorID *int64, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	before := *product
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Expiry != nil {
		product.Expiry = *in.Expiry
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Barcode != nil {
		product.Barcode = in.Barcode
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.trail.Record(ctx, actorID, "update", "produtos", &product.ID, &before, product)
	return toProductResponse(product), nil
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um produto. Produtos referenciados por vendas são protegidos
// pelo RESTRICT do schema e devolvem ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, actorID *int64, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.trail.Record(ctx, actorID, "delete", "produtos", &id, product, nil)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Price:      p.Price,
		Expiry:     p.Expiry,
		Category:   p.Category,
		Barcode:    p.Barcode,
		SupplierID: p.SupplierID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
