package valuation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/valuation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Testes das agregações puras de valoração. Sem mocks: os cenários são
// montados direto nas entidades.
// ──────────────────────────────────────────────────────────────────────────────

func entry(qty int64, status string) *entity.StockEntry {
	return &entity.StockEntry{ID: "e", ProductID: "p", Quantity: qty, Status: status}
}

func withProduct(name string, qty int64, status string, cost, sale float64) *entity.StockEntryWithProduct {
	return &entity.StockEntryWithProduct{
		Entry: entity.StockEntry{Quantity: qty, Status: status},
		Product: entity.Product{
			Name:      name,
			CostPrice: decimal.NewFromFloat(cost),
			SalePrice: decimal.NewFromFloat(sale),
		},
	}
}

// ── Nível crítico ────────────────────────────────────────────────────────────

func TestIsCritical_FronteiraEstritaEmDez(t *testing.T) {
	assert.True(t, valuation.IsCritical(entry(9, entity.StockStatusAvailable)),
		"9 unidades Disponíveis é crítico")
	assert.False(t, valuation.IsCritical(entry(10, entity.StockStatusAvailable)),
		"10 unidades não é crítico: a comparação é estritamente menor")
	assert.True(t, valuation.IsCritical(entry(0, entity.StockStatusAvailable)))
}

func TestIsCritical_IgnoraStatusNaoDisponivel(t *testing.T) {
	assert.False(t, valuation.IsCritical(entry(1, entity.StockStatusReserved)))
	assert.False(t, valuation.IsCritical(entry(1, entity.StockStatusDemo)))
}

func TestCriticalCount(t *testing.T) {
	entries := []*entity.StockEntry{
		entry(3, entity.StockStatusAvailable),
		entry(9, entity.StockStatusAvailable),
		entry(10, entity.StockStatusAvailable),
		entry(2, entity.StockStatusReserved),
	}
	assert.Equal(t, 2, valuation.CriticalCount(entries))
}

// ── Volumes e capital ────────────────────────────────────────────────────────

func TestTotalAvailableVolume_SomaApenasDisponiveis(t *testing.T) {
	entries := []*entity.StockEntry{
		entry(15, entity.StockStatusAvailable),
		entry(5, entity.StockStatusAvailable),
		entry(100, entity.StockStatusReserved),
	}
	assert.Equal(t, int64(20), valuation.TotalAvailableVolume(entries))
}

func TestTopByVolume_OrdenaDecrescenteECorta(t *testing.T) {
	items := []*entity.StockEntryWithProduct{
		withProduct("A", 5, entity.StockStatusAvailable, 1, 2),
		withProduct("B", 30, entity.StockStatusAvailable, 1, 2),
		withProduct("C", 12, entity.StockStatusAvailable, 1, 2),
		withProduct("D", 99, entity.StockStatusReserved, 1, 2),
	}

	top := valuation.TopByVolume(items, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Product.Name)
	assert.Equal(t, "C", top[1].Product.Name)
}

func TestTopByVolume_EmpateMantemOrdemOriginal(t *testing.T) {
	items := []*entity.StockEntryWithProduct{
		withProduct("Primeiro", 7, entity.StockStatusAvailable, 1, 2),
		withProduct("Segundo", 7, entity.StockStatusAvailable, 1, 2),
	}

	top := valuation.TopByVolume(items, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Primeiro", top[0].Product.Name, "empates preservam a ordem de entrada")
}

func TestImmobilizedCapital_QuantidadeVezesCusto(t *testing.T) {
	items := []*entity.StockEntryWithProduct{
		withProduct("A", 10, entity.StockStatusAvailable, 2.50, 5.00),
		withProduct("B", 4, entity.StockStatusAvailable, 10.00, 20.00),
		withProduct("C", 100, entity.StockStatusDemo, 1.00, 2.00),
	}

	got := valuation.ImmobilizedCapital(items)

	assert.True(t, got.Equal(decimal.NewFromFloat(65.00)), "10*2.50 + 4*10.00 = 65.00, got %s", got)
}

func TestPotentialRevenue_QuantidadeVezesVenda(t *testing.T) {
	items := []*entity.StockEntryWithProduct{
		withProduct("A", 10, entity.StockStatusAvailable, 2.50, 5.00),
		withProduct("B", 4, entity.StockStatusAvailable, 10.00, 20.00),
	}

	got := valuation.PotentialRevenue(items)

	assert.True(t, got.Equal(decimal.NewFromFloat(130.00)), "10*5.00 + 4*20.00 = 130.00, got %s", got)
}

// ── Fluxo do período ─────────────────────────────────────────────────────────

func mov(action string, qty int64, unitCost float64, at time.Time) *entity.Movement {
	return &entity.Movement{
		Action:     action,
		Quantity:   qty,
		UnitCost:   decimal.NewFromFloat(unitCost),
		OccurredAt: at,
	}
}

func TestPeriodThroughput_IntervaloMeioAberto(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// O início do intervalo é fechado e o fim é aberto: lançamentos exatamente
	// em end (ou antes de start) ficam de fora.
	movements := []*entity.Movement{
		mov(entity.ActionInbound, 10, 3.00, start),
		mov(entity.ActionSale, -4, 3.00, start.AddDate(0, 0, 15)),
		mov(entity.ActionInbound, 99, 3.00, end),
		mov(entity.ActionSale, -99, 3.00, start.AddDate(0, 0, -1)),
	}

	got := valuation.PeriodThroughput(movements, start, end)

	assert.True(t, got.InboundCost.Equal(decimal.NewFromFloat(30.00)),
		"entrada = 10*3.00, got %s", got.InboundCost)
	assert.True(t, got.OutboundCost.Equal(decimal.NewFromFloat(12.00)),
		"saída em valor absoluto = 4*3.00, got %s", got.OutboundCost)
}

func TestPeriodThroughput_UsaCustoCongelado(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	// Duas entradas do mesmo produto com custos diferentes: cada lançamento
	// vale o custo congelado no momento, não o custo atual.
	movements := []*entity.Movement{
		mov(entity.ActionInbound, 1, 5.00, start),
		mov(entity.ActionInbound, 1, 7.00, start.AddDate(0, 0, 1)),
	}

	got := valuation.PeriodThroughput(movements, start, end)
	assert.True(t, got.InboundCost.Equal(decimal.NewFromFloat(12.00)))
}

// ── Clientes ─────────────────────────────────────────────────────────────────

func TestCustomerFromNote(t *testing.T) {
	assert.Equal(t, "Transportadora Silva",
		valuation.CustomerFromNote("Cliente: Transportadora Silva"))
	assert.Equal(t, "Transportadora Silva",
		valuation.CustomerFromNote("Cliente: Transportadora Silva | retirada no balcão"))
	assert.Equal(t, "", valuation.CustomerFromNote("entrada por devolução"),
		"observação fora da convenção não tem cliente")
	assert.Equal(t, "", valuation.CustomerFromNote(""))
}

func TestTopClientsByRevenue_AgrupaSomaEOrdena(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	prices := map[string]decimal.Decimal{"p1": decimal.NewFromFloat(10.00)}

	sale := func(customer string, qty int64, day int) *entity.Movement {
		m := mov(entity.ActionSale, -qty, 4.00, start.AddDate(0, 0, day))
		m.ProductID = "p1"
		m.Customer = customer
		return m
	}
	movements := []*entity.Movement{
		sale("Transportadora Silva", 3, 1),
		sale("Metalúrgica União", 10, 2),
		sale("Transportadora Silva", 2, 3),
		mov(entity.ActionInbound, 50, 4.00, start.AddDate(0, 0, 4)), // não é venda
	}

	top := valuation.TopClientsByRevenue(movements, prices, start, end, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "Metalúrgica União", top[0].Name)
	assert.True(t, top[0].Revenue.Equal(decimal.NewFromFloat(100.00)))
	assert.Equal(t, "Transportadora Silva", top[1].Name)
	assert.True(t, top[1].Revenue.Equal(decimal.NewFromFloat(50.00)), "3*10 + 2*10 = 50")
}

func TestTopClientsByRevenue_AgrupaSemCaixaNemAcentos(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	prices := map[string]decimal.Decimal{"p1": decimal.NewFromFloat(10.00)}

	m1 := mov(entity.ActionSale, -1, 4.00, start)
	m1.ProductID = "p1"
	m1.Customer = "João Pereira"
	m2 := mov(entity.ActionSale, -1, 4.00, start.AddDate(0, 0, 1))
	m2.ProductID = "p1"
	m2.Customer = "joao pereira"

	top := valuation.TopClientsByRevenue([]*entity.Movement{m1, m2}, prices, start, end, 5)

	require.Len(t, top, 1, "grafias com e sem acento são o mesmo cliente")
	assert.Equal(t, "João Pereira", top[0].Name, "prevalece a primeira grafia vista")
	assert.True(t, top[0].Revenue.Equal(decimal.NewFromFloat(20.00)))
}

func TestTopClientsByRevenue_VendaSemClienteVaiParaBalcao(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	prices := map[string]decimal.Decimal{"p1": decimal.NewFromFloat(10.00)}

	anon := mov(entity.ActionSale, -2, 4.00, start)
	anon.ProductID = "p1"
	legacy := mov(entity.ActionSale, -1, 4.00, start.AddDate(0, 0, 1))
	legacy.ProductID = "p1"
	legacy.Note = "Cliente: Oficina Central | entrega agendada"

	top := valuation.TopClientsByRevenue([]*entity.Movement{anon, legacy}, prices, start, end, 5)

	require.Len(t, top, 2)
	assert.Equal(t, valuation.WalkInCustomer, top[0].Name,
		"venda sem cliente identificado agrupa no Balcão")
	assert.Equal(t, "Oficina Central", top[1].Name,
		"o cliente da convenção legada na observação ainda é reconhecido")
}
