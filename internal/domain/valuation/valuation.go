// Package valuation concentra as agregações read-only sobre catálogo, saldos e
// movimentações. Todas as funções são puras: recebem os dados já carregados e
// não tocam em estado mutável, para serem testáveis isoladamente.
package valuation

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/pkg/textutil"
)

// CriticalThreshold é o limite de estoque crítico exposto à UI.
// Um saldo Disponível é crítico quando quantity < 10 (estritamente menor).
const CriticalThreshold = 10

// WalkInCustomer é o rótulo sentinela para vendas sem cliente identificado.
const WalkInCustomer = "Balcão"

// IsCritical informa se um saldo está em nível crítico.
func IsCritical(e *entity.StockEntry) bool {
	return e.Status == entity.StockStatusAvailable && e.Quantity < CriticalThreshold
}

// CriticalCount conta os saldos Disponíveis abaixo do limite crítico.
func CriticalCount(entries []*entity.StockEntry) int {
	n := 0
	for _, e := range entries {
		if IsCritical(e) {
			n++
		}
	}
	return n
}

// TotalAvailableVolume soma as quantidades dos saldos Disponíveis.
func TotalAvailableVolume(entries []*entity.StockEntry) int64 {
	var total int64
	for _, e := range entries {
		if e.Status == entity.StockStatusAvailable {
			total += e.Quantity
		}
	}
	return total
}

// TopByVolume devolve os n saldos Disponíveis de maior quantidade, em ordem
// decrescente. Empates mantêm a ordem original (sort estável).
func TopByVolume(items []*entity.StockEntryWithProduct, n int) []*entity.StockEntryWithProduct {
	available := make([]*entity.StockEntryWithProduct, 0, len(items))
	for _, it := range items {
		if it.Entry.Status == entity.StockStatusAvailable {
			available = append(available, it)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Entry.Quantity > available[j].Entry.Quantity
	})
	if n >= 0 && len(available) > n {
		available = available[:n]
	}
	return available
}

// ImmobilizedCapital soma quantity * precoCusto dos saldos Disponíveis:
// o capital parado no armazém.
func ImmobilizedCapital(items []*entity.StockEntryWithProduct) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Entry.Status != entity.StockStatusAvailable {
			continue
		}
		total = total.Add(decimal.NewFromInt(it.Entry.Quantity).Mul(it.Product.CostPrice))
	}
	return total
}

// PotentialRevenue soma quantity * precoVenda dos saldos Disponíveis.
func PotentialRevenue(items []*entity.StockEntryWithProduct) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Entry.Status != entity.StockStatusAvailable {
			continue
		}
		total = total.Add(decimal.NewFromInt(it.Entry.Quantity).Mul(it.Product.SalePrice))
	}
	return total
}

// Throughput é o resultado de PeriodThroughput: valores absolutos de entrada e
// saída valorados ao custo congelado em cada movimentação.
type Throughput struct {
	InboundCost  decimal.Decimal
	OutboundCost decimal.Decimal
}

// PeriodThroughput particiona as movimentações em [start, end) por sinal e soma
// |quantity| * unitCost de cada lado. Usa o custo congelado no lançamento, não
// o custo atual do produto.
func PeriodThroughput(movements []*entity.Movement, start, end time.Time) Throughput {
	t := Throughput{InboundCost: decimal.Zero, OutboundCost: decimal.Zero}
	for _, m := range movements {
		if m.OccurredAt.Before(start) || !m.OccurredAt.Before(end) {
			continue
		}
		cost := m.TotalCost()
		if m.Quantity >= 0 {
			t.InboundCost = t.InboundCost.Add(cost)
		} else {
			t.OutboundCost = t.OutboundCost.Add(cost.Neg())
		}
	}
	return t
}

// ClientRevenue é a receita agregada de um cliente no período.
type ClientRevenue struct {
	Name    string
	Revenue decimal.Decimal
}

// CustomerFromNote extrai o nome do cliente da convenção legada de observação
// "Cliente: <nome> | <resto>". Devolve vazio quando a convenção não bate.
func CustomerFromNote(note string) string {
	const prefix = "Cliente: "
	if !strings.HasPrefix(note, prefix) {
		return ""
	}
	name := strings.TrimPrefix(note, prefix)
	if i := strings.Index(name, " | "); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// customerLabel resolve o rótulo de cliente de uma venda: campo estruturado,
// depois a convenção legada na observação, senão o sentinela de balcão.
func customerLabel(m *entity.Movement) string {
	if m.Customer != "" {
		return m.Customer
	}
	if name := CustomerFromNote(m.Note); name != "" {
		return name
	}
	return WalkInCustomer
}

// TopClientsByRevenue agrupa as vendas ("Saída de mercadoria") de [start, end)
// por cliente, somando |quantity| * precoVenda do produto, e devolve os n
// maiores em ordem decrescente. salePrices indexa preço de venda por produto.
// A agregação ignora caixa e acentos ("João" e "joao" são o mesmo cliente);
// prevalece a primeira grafia vista.
func TopClientsByRevenue(movements []*entity.Movement, salePrices map[string]decimal.Decimal, start, end time.Time, n int) []ClientRevenue {
	byClient := make(map[string]decimal.Decimal)
	labels := make(map[string]string)
	var order []string
	for _, m := range movements {
		if m.Action != entity.ActionSale {
			continue
		}
		if m.OccurredAt.Before(start) || !m.OccurredAt.Before(end) {
			continue
		}
		qty := m.Quantity
		if qty < 0 {
			qty = -qty
		}
		revenue := decimal.NewFromInt(qty).Mul(salePrices[m.ProductID])
		key := textutil.Normalize(customerLabel(m))
		if _, seen := byClient[key]; !seen {
			order = append(order, key)
			labels[key] = customerLabel(m)
		}
		byClient[key] = byClient[key].Add(revenue)
	}

	ranking := make([]ClientRevenue, 0, len(order))
	for _, key := range order {
		ranking = append(ranking, ClientRevenue{Name: labels[key], Revenue: byClient[key]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
	})
	if n >= 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}
