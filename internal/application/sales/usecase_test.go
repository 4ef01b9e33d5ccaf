package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/logger"
)

// fakeSaleRepo armazena vendas em memória; com failCreate a inserção falha.
type fakeSaleRepo struct {
	sales      []*entity.Sale
	nextID     int64
	failCreate bool
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if f.failCreate {
		return domain.NewStorageError("insert venda", errors.New("conexão perdida"))
	}
	f.nextID++
	sale.ID = f.nextID
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) ListRecent(_ context.Context, limit int) ([]*entity.Sale, error) {
	if limit > len(f.sales) {
		limit = len(f.sales)
	}
	out := make([]*entity.Sale, 0, limit)
	for i := len(f.sales) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.sales[i])
	}
	return out, nil
}

func (f *fakeSaleRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if !s.OccurredAt.Before(from) && !s.OccurredAt.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeProductRepo só implementa o que a transação de venda usa.
type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(_ context.Context, _ int64) error           { return nil }
func (f *fakeProductRepo) DecrementStock(_ context.Context, id int64, qty int64, _ time.Time) error {
	f.products[id].Quantity -= qty
	return nil
}

// fakeTxRunner executa fn com os repositórios dados e simula rollback
// restaurando o estado quando fn devolve erro.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
	runs        int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	f.runs++

	// Snapshot para simular o rollback da transação.
	salesBefore := make([]*entity.Sale, len(f.saleRepo.sales))
	copy(salesBefore, f.saleRepo.sales)
	quantitiesBefore := map[int64]int64{}
	for id, p := range f.productRepo.products {
		quantitiesBefore[id] = p.Quantity
	}

	if err := fn(f.saleRepo, f.productRepo); err != nil {
		f.saleRepo.sales = salesBefore
		for id, q := range quantitiesBefore {
			f.productRepo.products[id].Quantity = q
		}
		return err
	}
	return nil
}

// fakeAuditRepo trilha em memória para o recorder; com fail o Append falha.
type fakeAuditRepo struct {
	entries []*entity.AuditEntry
	fail    bool
}

func (f *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditEntry) error {
	if f.fail {
		return errors.New("trilha indisponível")
	}
	f.entries = append(f.entries, entry)
	return nil
}

type saleFixture struct {
	uc       *SaleUseCase
	sales    *fakeSaleRepo
	products *fakeProductRepo
	tx       *fakeTxRunner
	trail    *fakeAuditRepo
}

func newSaleFixture(stock int64, price string) *saleFixture {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Vinho Tinto Reserva 750ml", Quantity: stock, Price: decimal.RequireFromString(price)},
	}}
	salesRepo := &fakeSaleRepo{}
	tx := &fakeTxRunner{saleRepo: salesRepo, productRepo: products}
	trail := &fakeAuditRepo{}
	recorder := audit.NewRecorder(trail, logger.New(logger.Config{Env: "development", Level: "error"}))
	return &saleFixture{
		uc:       NewSaleUseCase(tx, salesRepo, recorder),
		sales:    salesRepo,
		products: products,
		tx:       tx,
		trail:    trail,
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Cenário: venda com estoque suficiente grava a venda, decrementa o estoque e
// calcula total e troco exatos.
func TestRecordSale_Sucesso(t *testing.T) {
	fx := newSaleFixture(10, "89.90")
	tendered := d("200.00")

	result, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     1,
		Quantity:      2,
		UnitPrice:     d("89.90"),
		PaymentMethod: entity.PaymentDinheiro,
		Tendered:      &tendered,
	})
	require.NoError(t, err)

	assert.True(t, result.Sale.Total.Equal(d("179.80")), "total = 2 × 89.90")
	require.NotNil(t, result.Change)
	assert.True(t, result.Change.Equal(d("20.20")), "troco = 200.00 − 179.80")
	assert.EqualValues(t, 8, fx.products.products[1].Quantity)
	require.Len(t, fx.sales.sales, 1)
	assert.True(t, fx.sales.sales[0].UnitPrice.Equal(d("89.90")), "preço capturado na venda")
	require.Len(t, fx.trail.entries, 1)
	assert.Equal(t, "sale", fx.trail.entries[0].Action)
}

// Cenário: estoque insuficiente rejeita a venda sem alterar nada.
func TestRecordSale_EstoqueInsuficiente(t *testing.T) {
	fx := newSaleFixture(1, "89.90")

	_, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     1,
		Quantity:      5,
		UnitPrice:     d("89.90"),
		PaymentMethod: entity.PaymentPix,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 1, fx.products.products[1].Quantity, "estoque intocado")
	assert.Empty(t, fx.sales.sales, "nenhuma venda gravada")
	assert.Empty(t, fx.trail.entries)
}

// Valor pago abaixo do total: rejeitado antes da transação abrir.
func TestRecordSale_PagamentoInsuficiente(t *testing.T) {
	fx := newSaleFixture(10, "89.90")
	tendered := d("100.00")

	_, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     1,
		Quantity:      2, // total 179.80
		UnitPrice:     d("89.90"),
		PaymentMethod: entity.PaymentDinheiro,
		Tendered:      &tendered,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.Zero(t, fx.tx.runs, "a transação nem chega a abrir")
	assert.Empty(t, fx.sales.sales)
}

func TestRecordSale_EntradaInvalida(t *testing.T) {
	fx := newSaleFixture(10, "89.90")
	ctx := context.Background()

	_, err := fx.uc.RecordSale(ctx, RecordSaleInput{ProductID: 1, Quantity: 0, UnitPrice: d("10"), PaymentMethod: entity.PaymentPix})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero")

	_, err = fx.uc.RecordSale(ctx, RecordSaleInput{ProductID: 1, Quantity: -3, UnitPrice: d("10"), PaymentMethod: entity.PaymentPix})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade negativa")

	_, err = fx.uc.RecordSale(ctx, RecordSaleInput{ProductID: 1, Quantity: 1, UnitPrice: d("-1"), PaymentMethod: entity.PaymentPix})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço negativo")

	_, err = fx.uc.RecordSale(ctx, RecordSaleInput{ProductID: 1, Quantity: 1, UnitPrice: d("10"), PaymentMethod: "Cheque"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "forma de pagamento desconhecida")

	assert.Zero(t, fx.tx.runs)
}

func TestRecordSale_ProdutoInexistente(t *testing.T) {
	fx := newSaleFixture(10, "89.90")

	_, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     99,
		Quantity:      1,
		UnitPrice:     d("10.00"),
		PaymentMethod: entity.PaymentDebito,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, fx.sales.sales)
}

// Falha na inserção da venda reverte o decremento de estoque (atomicidade).
func TestRecordSale_RollbackEmFalhaDeEscrita(t *testing.T) {
	fx := newSaleFixture(10, "89.90")
	fx.sales.failCreate = true

	_, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     1,
		Quantity:      2,
		UnitPrice:     d("89.90"),
		PaymentMethod: entity.PaymentCredito,
	})
	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
	assert.EqualValues(t, 10, fx.products.products[1].Quantity, "rollback restaura o estoque")
	assert.Empty(t, fx.sales.sales)
}

// Trilha de auditoria fora do ar não derruba a venda: o registro é melhor
// esforço e acontece depois do commit.
func TestRecordSale_AuditoriaIndisponivelNaoFalhaVenda(t *testing.T) {
	fx := newSaleFixture(10, "89.90")
	fx.trail.fail = true

	result, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     1,
		Quantity:      2,
		UnitPrice:     d("89.90"),
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err, "falha na auditoria não pode falhar a venda")
	assert.True(t, result.Sale.Total.Equal(d("179.80")))
	assert.EqualValues(t, 8, fx.products.products[1].Quantity, "estoque decrementado")
	require.Len(t, fx.sales.sales, 1, "venda persistida")
	assert.Empty(t, fx.trail.entries, "nada chegou à trilha")
}

// Total exato com casas decimais: 3 × 19.99 = 59.97, sem erro de ponto flutuante.
func TestRecordSale_TotalDecimalExato(t *testing.T) {
	fx := newSaleFixture(10, "19.99")

	result, err := fx.uc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     1,
		Quantity:      3,
		UnitPrice:     d("19.99"),
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err)
	assert.True(t, result.Sale.Total.Equal(d("59.97")))
	assert.Nil(t, result.Change, "sem valor pago não há troco")
}

func TestListRecent_LimiteSaneado(t *testing.T) {
	fx := newSaleFixture(10, "10.00")
	now := time.Now()
	for i := 0; i < 3; i++ {
		fx.sales.sales = append(fx.sales.sales, &entity.Sale{
			ID: int64(i + 1), ProductID: 1, Quantity: 1,
			UnitPrice: d("10.00"), Total: d("10.00"),
			PaymentMethod: entity.PaymentPix, OccurredAt: now,
		})
	}

	out, err := fx.uc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
}
