// Package reporting contém os casos de uso somente leitura: resumo do
// dashboard, histórico de movimentações e relatório em PDF.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
	"github.com/viapro/armazem-api/internal/domain/valuation"
)

const (
	dashboardTopProducts = 5 // ranking de volume no widget do dashboard
	dashboardTopClients  = 5 // ranking de receita por cliente no mês
)

// DashboardUseCase monta o resumo do armazém e os indicadores financeiros do
// mês em curso. Toda a agregação é delegada ao pacote valuation; aqui só se
// carregam os dados e se montam os DTOs.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
	}
}

// GetSummary constrói o DashboardSummaryResponse.
//
// Três consultas em paralelo:
//  1. Count()                      → totalItensCadastrados
//  2. ListWithProduct()            → volume, críticos, capital, receita potencial
//  3. List(mês em curso)           → faturamento do mês + top clientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	type countResult struct {
		n   int
		err error
	}
	type stockResult struct {
		items []*entity.StockEntryWithProduct
		err   error
	}
	type movementsResult struct {
		movements []*entity.Movement
		err       error
	}

	countCh := make(chan countResult, 1)
	stockCh := make(chan stockResult, 1)
	movCh := make(chan movementsResult, 1)

	go func() {
		n, err := uc.productRepo.Count()
		countCh <- countResult{n, err}
	}()
	go func() {
		items, err := uc.stockRepo.ListWithProduct()
		stockCh <- stockResult{items, err}
	}()
	go func() {
		movements, err := uc.movementRepo.List(&monthStart, &monthEnd)
		movCh <- movementsResult{movements, err}
	}()

	count := <-countCh
	stock := <-stockCh
	monthMov := <-movCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: contagem de produtos: %w", count.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: saldos de estoque: %w", stock.err)
	}
	if monthMov.err != nil {
		return nil, fmt.Errorf("dashboard: movimentações do mês: %w", monthMov.err)
	}

	entries := make([]*entity.StockEntry, 0, len(stock.items))
	salePrices := make(map[string]decimal.Decimal, len(stock.items))
	for _, it := range stock.items {
		e := it.Entry
		entries = append(entries, &e)
		salePrices[it.Product.ID] = it.Product.SalePrice
	}

	topVolume := valuation.TopByVolume(stock.items, dashboardTopProducts)
	topProducts := make([]dto.TopProductItem, 0, len(topVolume))
	for _, it := range topVolume {
		topProducts = append(topProducts, dto.TopProductItem{
			ProductName: it.Product.Name,
			Quantity:    it.Entry.Quantity,
		})
	}

	clients := valuation.TopClientsByRevenue(monthMov.movements, salePrices, monthStart, monthEnd, -1)
	monthRevenue := decimal.Zero
	topClients := make([]dto.TopClientItem, 0, dashboardTopClients)
	for i, c := range clients {
		monthRevenue = monthRevenue.Add(c.Revenue)
		if i < dashboardTopClients {
			topClients = append(topClients, dto.TopClientItem{Name: c.Name, Revenue: c.Revenue.Round(2)})
		}
	}

	return &dto.DashboardSummaryResponse{
		TotalProducts:    count.n,
		TotalCost:        valuation.ImmobilizedCapital(stock.items).Round(2),
		TotalVolume:      valuation.TotalAvailableVolume(entries),
		CriticalCount:    valuation.CriticalCount(entries),
		PotentialRevenue: valuation.PotentialRevenue(stock.items).Round(2),
		MonthRevenue:     monthRevenue.Round(2),
		TopProducts:      topProducts,
		TopClients:       topClients,
	}, nil
}

// GetThroughput calcula o fluxo de entradas e saídas em [start, end), valorado
// ao custo congelado em cada lançamento.
func (uc *DashboardUseCase) GetThroughput(ctx context.Context, start, end time.Time) (*dto.ThroughputResponse, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("dashboard: período inválido: %w", domain.ErrInvalidInput)
	}
	movements, err := uc.movementRepo.List(&start, &end)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimentações do período: %w", err)
	}
	t := valuation.PeriodThroughput(movements, start, end)
	return &dto.ThroughputResponse{
		Start:        start.Format(time.RFC3339),
		End:          end.Format(time.RFC3339),
		InboundCost:  t.InboundCost.Round(2),
		OutboundCost: t.OutboundCost.Round(2),
	}, nil
}
