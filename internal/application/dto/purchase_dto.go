package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest payload de emissão de pedido (POST /pedidos-compra).
type CreatePurchaseOrderRequest struct {
	SupplierID   string          `json:"fornecedorId"`
	ProductID    string          `json:"produtoId"`
	Quantity     int64           `json:"quantidade"`
	TotalCost    decimal.Decimal `json:"custoTotal"`
	ExpectedDate *time.Time      `json:"dataPrevisao"`
}

// ReceiveOrderRequest payload do recebimento (PUT /pedidos-compra/:id/receber).
type ReceiveOrderRequest struct {
	UserID string `json:"usuarioId"`
}

// PurchaseOrderResponse pedido de compra com nomes para a listagem.
type PurchaseOrderResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"codigo"`
	SupplierID   string          `json:"fornecedorId"`
	ProductID    string          `json:"produtoId"`
	Quantity     int64           `json:"quantidade"`
	TotalCost    decimal.Decimal `json:"custoTotal"`
	Status       string          `json:"status"`
	ExpectedDate *time.Time      `json:"dataPrevisao,omitempty"`
	ReceivedAt   *time.Time      `json:"dataRecebimento,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	Supplier     *SupplierRef    `json:"fornecedor,omitempty"`
	Product      *NameRef        `json:"produto,omitempty"`
}

// SupplierRef referência mínima {nomeEmpresa} usada pela listagem de compras.
type SupplierRef struct {
	CompanyName string `json:"nomeEmpresa"`
}
