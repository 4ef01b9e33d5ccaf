package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// SaleUseCase registra vendas de forma transacional: valida estoque, insere a
// venda com o preço capturado e decrementa o estoque com bloqueio de linha
// (SELECT FOR UPDATE), com Commit ou Rollback de ambos os passos juntos.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	trail    *audit.Recorder
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, trail *audit.Recorder) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, trail: trail}
}

// RecordSaleInput entrada para registrar uma venda.
type RecordSaleInput struct {
	ProductID     int64
	Quantity      int64
	UnitPrice     decimal.Decimal
	ClientID      *int64
	PaymentMethod string
	Tendered      *decimal.Decimal // valor pago; opcional
	ActorID       *int64           // usuário da sessão, para auditoria
}

// SaleResult venda registrada mais o troco, quando houve valor pago.
type SaleResult struct {
	Sale   entity.Sale
	Change *decimal.Decimal
}

// RecordSale valida a entrada, verifica a disponibilidade de estoque e grava
// venda + decremento numa única transação.
//
// Estoque insuficiente é um desfecho de negócio esperado (ErrInsufficientStock),
// não uma falha de armazenamento: nada é alterado e o chamador apresenta o
// resultado ao usuário. Total = Quantity × UnitPrice no momento da venda.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in RecordSaleInput) (*SaleResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	total := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
	// Valor pago abaixo do total é rejeitado antes de abrir a transação:
	// nenhuma linha de venda chega a ser escrita.
	if in.Tendered != nil && in.Tendered.LessThan(total) {
		return nil, domain.ErrInsufficientPayment
	}

	now := time.Now()
	sale := &entity.Sale{
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		Total:         total,
		ClientID:      in.ClientID,
		PaymentMethod: in.PaymentMethod,
		OccurredAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do produto para serializar decrementos concorrentes.
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		return productRepo.DecrementStock(ctx, product.ID, in.Quantity, now)
	})
	if err != nil {
		return nil, err
	}

	result := &SaleResult{Sale: *sale}
	if in.Tendered != nil {
		change := in.Tendered.Sub(total)
		result.Change = &change
	}
	uc.trail.Record(ctx, in.ActorID, "sale", "vendas", &sale.ID, nil, sale)
	return result, nil
}

// ListRecent devolve as vendas mais recentes (tela de vendas).
func (uc *SaleUseCase) ListRecent(ctx context.Context, limit int) (*dto.SaleListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.saleRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toSaleList(list), nil
}

// ListByPeriod devolve as vendas do intervalo (relatórios).
func (uc *SaleUseCase) ListByPeriod(ctx context.Context, from, to time.Time) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toSaleList(list), nil
}

func toSaleList(list []*entity.Sale) *dto.SaleListResponse {
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{Items: items}
}

// ToSaleResponse converte a entidade em DTO de resposta.
func ToSaleResponse(s *entity.Sale, change *decimal.Decimal) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Total:         s.Total,
		ClientID:      s.ClientID,
		PaymentMethod: s.PaymentMethod,
		OccurredAt:    s.OccurredAt,
		Change:        change,
	}
}
