// Package analytics contém os casos de uso de leitura para o dashboard da
// tela inicial.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // produtos no widget de mais vendidos
	lowStockThreshold    = 5  // unidades a partir das quais o produto entra no alerta
	expiryWindowDays     = 30 // janela do alerta de validade
)

// DashboardUseCase gera o resumo financeiro do dia e do mês em curso.
//
// Fonte de dados: AnalyticsRepository (consultas read-only). Não acessa a
// tabela de vendas diretamente; delega tudo ao repositório.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary constrói o DashboardSummaryDTO: receita de hoje e do mês,
// produtos mais vendidos no mês, estoque baixo e validade próxima.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoje: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mês em curso: dia 1 às 00:00 – hoje às 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayRevenue, todayCount, err := uc.analyticsRepo.GetSalesTotals(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("totais de hoje: %w", err)
	}
	monthRevenue, _, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("totais do mês: %w", err)
	}
	top, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
	if err != nil {
		return nil, fmt.Errorf("mais vendidos: %w", err)
	}
	low, err := uc.analyticsRepo.GetLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("estoque baixo: %w", err)
	}
	expiring, err := uc.analyticsRepo.GetExpiring(ctx, now.AddDate(0, 0, expiryWindowDays))
	if err != nil {
		return nil, fmt.Errorf("validade próxima: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		TodayRevenue:   todayRevenue,
		TodaySaleCount: todayCount,
		MonthRevenue:   monthRevenue,
		TopProducts:    make([]dto.TopProductDTO, 0, len(top)),
		LowStock:       make([]dto.StockAlertDTO, 0, len(low)),
		Expiring:       make([]dto.StockAlertDTO, 0, len(expiring)),
		GeneratedAt:    now,
	}
	for _, t := range top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID: t.ProductID,
			Name:      t.Name,
			UnitsSold: t.UnitsSold,
			Revenue:   t.Revenue,
		})
	}
	for _, p := range low {
		summary.LowStock = append(summary.LowStock, dto.StockAlertDTO{
			ProductID: p.ID, Name: p.Name, Quantity: p.Quantity, Expiry: p.Expiry,
		})
	}
	for _, p := range expiring {
		summary.Expiring = append(summary.Expiring, dto.StockAlertDTO{
			ProductID: p.ID, Name: p.Name, Quantity: p.Quantity, Expiry: p.Expiry,
		})
	}
	return summary, nil
}
