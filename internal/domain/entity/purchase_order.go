package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de pedido de compra. Pendente → Recebido, uma única vez; Recebido é terminal.
const (
	OrderStatusPending  = "Pendente"
	OrderStatusReceived = "Recebido"
)

// Prefixo do código sequencial de pedidos de compra.
const CodePrefixPurchaseOrder = "PC"

// PurchaseOrder é um pedido de compra a fornecedor. O recebimento dispara uma
// movimentação de entrada no estoque do produto, dentro da mesma transação.
type PurchaseOrder struct {
	ID           string
	Code         string // ex: PC-0007
	SupplierID   string
	ProductID    string
	Quantity     int64
	TotalCost    decimal.Decimal
	Status       string
	ExpectedDate *time.Time
	ReceivedAt   *time.Time
	ReceivedBy   string
	CreatedAt    time.Time
}

// PurchaseOrderWithDetails junta o pedido com os nomes exibidos na listagem.
type PurchaseOrderWithDetails struct {
	PurchaseOrder
	SupplierName string
	ProductName  string
}
