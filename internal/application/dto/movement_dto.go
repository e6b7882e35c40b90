package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationRequest payload genérico de movimentação (POST /movimentacoes/operacao).
// TipoAcao aceita os seis rótulos canônicos e os identificadores legados.
type OperationRequest struct {
	ProductID      string     `json:"produtoId"`
	UserID         string     `json:"usuarioId"`
	StockEntryID   string     `json:"estoqueId"`
	Action         string     `json:"tipoAcao"`
	Quantity       int64      `json:"quantidade"`
	Customer       string     `json:"cliente"`
	ExpectedReturn *time.Time `json:"dataPrevistaRetorno"`
	Note           string     `json:"observacao"`
}

// InboundRequest payload da rota legada POST /movimentacoes/entrada.
type InboundRequest struct {
	ProductID    string `json:"produtoId"`
	UserID       string `json:"usuarioId"`
	StockEntryID string `json:"estoqueDestinoId"`
	Quantity     int64  `json:"quantidade"`
	Note         string `json:"observacao"`
}

// OutboundRequest payload das rotas legadas de saída (venda e demonstração).
type OutboundRequest struct {
	ProductID      string     `json:"produtoId"`
	UserID         string     `json:"usuarioId"`
	StockEntryID   string     `json:"estoqueOrigemId"`
	Quantity       int64      `json:"quantidade"`
	Customer       string     `json:"cliente"`
	ExpectedReturn *time.Time `json:"dataPrevistaRetorno"`
	Note           string     `json:"observacao"`
}

// AdjustmentRequest payload do ajuste absoluto (POST /movimentacoes/ajuste).
// NewQuantity é o saldo final desejado; o motor calcula o delta.
type AdjustmentRequest struct {
	ProductID    string `json:"produtoId"`
	UserID       string `json:"usuarioId"`
	StockEntryID string `json:"estoqueId"`
	NewQuantity  int64  `json:"novaQuantidade"`
	Note         string `json:"observacao"`
}

// MovementResponse lançamento do razão nas respostas, com nomes
// desnormalizados para o histórico.
type MovementResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"codigo"`
	ProductID      string          `json:"produtoId"`
	StockEntryID   string          `json:"estoqueId"`
	Action         string          `json:"tipoAcao"`
	Quantity       int64           `json:"quantidade"`
	UnitCost       decimal.Decimal `json:"custoUnitario"`
	Customer       string          `json:"cliente,omitempty"`
	ExpectedReturn *time.Time      `json:"dataPrevistaRetorno,omitempty"`
	Note           string          `json:"observacao,omitempty"`
	OccurredAt     time.Time       `json:"dataHora"`
	Product        *NameRef        `json:"produto,omitempty"`
	User           *NameRef        `json:"usuario,omitempty"`
}

// NameRef referência mínima {nome} usada pela UI de histórico.
type NameRef struct {
	Name string `json:"nome"`
}
