package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse é o resumo do GET /dashboard/resumo: indicadores de
// armazém (volume, críticos, capital imobilizado) e financeiros (faturamento do
// mês, top clientes). Valores monetários sem formatação de locale.
type DashboardSummaryResponse struct {
	TotalProducts    int              `json:"totalItensCadastrados"`
	TotalCost        decimal.Decimal  `json:"custoTotal"`
	TotalVolume      int64            `json:"volumeTotal"`
	CriticalCount    int              `json:"itensCriticos"`
	PotentialRevenue decimal.Decimal  `json:"receitaPotencial"`
	MonthRevenue     decimal.Decimal  `json:"faturamentoMes"`
	TopProducts      []TopProductItem `json:"topProdutos"`
	TopClients       []TopClientItem  `json:"topClientes"`
}

// TopProductItem item do ranking de volume em estoque.
type TopProductItem struct {
	ProductName string `json:"produtoNome"`
	Quantity    int64  `json:"quantidade"`
}

// TopClientItem item do ranking de receita por cliente no mês.
type TopClientItem struct {
	Name    string          `json:"nome"`
	Revenue decimal.Decimal `json:"valorGasto"`
}

// ThroughputResponse resultado do GET /dashboard/fluxo: custo de entradas e
// saídas no período, valorado ao custo congelado de cada movimentação.
type ThroughputResponse struct {
	Start        string          `json:"inicio"`
	End          string          `json:"fim"`
	InboundCost  decimal.Decimal `json:"custoEntradas"`
	OutboundCost decimal.Decimal `json:"custoSaidas"`
}
