package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viapro/armazem-api/internal/domain"
)

// Tipos de ação de movimentação (conjunto fechado, rótulos canônicos da UI).
const (
	ActionInbound        = "Entrada de mercadoria"
	ActionSale           = "Saída de mercadoria"
	ActionReturn         = "Devolução VIAPRO"
	ActionAdjustInbound  = "Ajuste de Entrada de Inventário"
	ActionAdjustOutbound = "Ajuste de Saída de Inventário"
	ActionDemoLoan       = "Saída para demonstração"
)

// Prefixos dos códigos sequenciais de movimentação (RE = entrada, RS = saída).
const (
	CodePrefixInbound  = "RE"
	CodePrefixOutbound = "RS"
)

// legacyActions mapeia rótulos antigos de tipoAcao para o conjunto canônico.
// Versões anteriores da UI enviavam identificadores curtos com underscore.
var legacyActions = map[string]string{
	"Entrada":               ActionInbound,
	"Saida_Venda":           ActionSale,
	"Saída P/ Venda":        ActionSale,
	"Devolucao":             ActionReturn,
	"Devolução":             ActionReturn,
	"Saida_Demonstracao":    ActionDemoLoan,
	"Saída P/ Demonstração": ActionDemoLoan,
}

// NormalizeAction converte um tipoAcao recebido (canônico ou legado) para o
// rótulo canônico. Retorna ErrInvalidInput para tipos desconhecidos.
func NormalizeAction(action string) (string, error) {
	switch action {
	case ActionInbound, ActionSale, ActionReturn, ActionAdjustInbound, ActionAdjustOutbound, ActionDemoLoan:
		return action, nil
	}
	if canonical, ok := legacyActions[action]; ok {
		return canonical, nil
	}
	return "", domain.ErrInvalidInput
}

// ActionSign devolve o sinal do tipo no razão de estoque: +1 entrada, -1 saída.
func ActionSign(action string) (int, error) {
	switch action {
	case ActionInbound, ActionReturn, ActionAdjustInbound:
		return 1, nil
	case ActionSale, ActionAdjustOutbound, ActionDemoLoan:
		return -1, nil
	}
	return 0, domain.ErrInvalidInput
}

// ActionCodePrefix devolve o prefixo do código sequencial (RE ou RS) do tipo.
func ActionCodePrefix(action string) (string, error) {
	sign, err := ActionSign(action)
	if err != nil {
		return "", err
	}
	if sign > 0 {
		return CodePrefixInbound, nil
	}
	return CodePrefixOutbound, nil
}

// Movement é um lançamento imutável do razão de estoque. Criado exclusivamente
// pelo motor de movimentações; nunca é atualizado nem apagado.
// Quantity carrega o sinal (positivo entrada, negativo saída).
// UnitCost é o custo do produto congelado no momento do registro, para que a
// valoração histórica não mude quando o preço de custo é editado depois.
type Movement struct {
	ID             string
	Code           string // sequencial legível, ex: RE-0001 / RS-0042
	ProductID      string
	StockEntryID   string
	UserID         string
	Action         string
	Quantity       int64
	UnitCost       decimal.Decimal
	Customer       string     // apenas vendas
	ExpectedReturn *time.Time // apenas saídas para demonstração
	Note           string
	OccurredAt     time.Time
}

// TotalCost devolve quantity * unitCost preservando o sinal do lançamento.
func (m *Movement) TotalCost() decimal.Decimal {
	return decimal.NewFromInt(m.Quantity).Mul(m.UnitCost)
}

// MovementWithDetails junta o lançamento com os nomes desnormalizados
// exibidos no histórico.
type MovementWithDetails struct {
	Movement
	ProductName string
	UserName    string
}
