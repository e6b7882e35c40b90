package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto.
const (
	ProductKindRawMaterial = "MATERIA_PRIMA"
	ProductKindFinished    = "ACABADO"
)

// Product representa um item do catálogo (matéria-prima ou produto acabado).
// SKU é único; o saldo físico vive em StockEntry e só muda via movimentações.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Kind        string // MATERIA_PRIMA | ACABADO
	CategoryID  string
	SupplierID  string // opcional
	LotNumber   string // opcional, ex: L2026B
	Address     string // endereço físico no armazém: rua - prateleira - célula
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
