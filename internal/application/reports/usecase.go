// Package reports monta os relatórios exportáveis a partir das vendas
// registradas.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// ReportUseCase gera o relatório de vendas em PDF para um período.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	generator   SalesReportGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	generator SalesReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		generator:   generator,
	}
}

// SalesReportPDF resolve as vendas do período em linhas com nomes de produto
// e cliente e delega a renderização ao generator.
func (uc *ReportUseCase) SalesReportPDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.saleRepo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	productNames := map[int64]string{}
	clientNames := map[int64]string{}
	grandTotal := decimal.Zero
	lines := make([]ReportLine, 0, len(list))
	for _, s := range list {
		productName, ok := productNames[s.ProductID]
		if !ok {
			p, err := uc.productRepo.GetByID(ctx, s.ProductID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				productName = p.Name
			}
			productNames[s.ProductID] = productName
		}
		clientName := ""
		if s.ClientID != nil {
			clientName, ok = clientNames[*s.ClientID]
			if !ok {
				c, err := uc.clientRepo.GetByID(ctx, *s.ClientID)
				if err != nil {
					return nil, err
				}
				if c != nil {
					clientName = c.Name
				}
				clientNames[*s.ClientID] = clientName
			}
		}
		grandTotal = grandTotal.Add(s.Total)
		lines = append(lines, ReportLine{
			SaleID:        s.ID,
			OccurredAt:    s.OccurredAt,
			ProductName:   productName,
			ClientName:    clientName,
			Quantity:      s.Quantity,
			UnitPrice:     s.UnitPrice,
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
		})
	}
	return uc.generator.GenerateSalesReport(ctx, from, to, lines, grandTotal)
}
