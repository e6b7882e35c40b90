package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest payload de criação de produto (POST /produtos).
type CreateProductRequest struct {
	Name        string          `json:"nome"`
	SKU         string          `json:"sku"`
	Kind        string          `json:"tipo"`
	CategoryID  string          `json:"categoriaId"`
	Description string          `json:"descricao"`
	CostPrice   decimal.Decimal `json:"precoCusto"`
	SalePrice   decimal.Decimal `json:"precoVenda"`
	LotNumber   string          `json:"lote"`
	Address     string          `json:"enderecoLocalizacao"`
	SupplierID  string          `json:"fornecedorId"`
}

// UpdateProductRequest payload de edição parcial (PUT /produtos/:id).
type UpdateProductRequest struct {
	Name        *string          `json:"nome"`
	Kind        *string          `json:"tipo"`
	CategoryID  *string          `json:"categoriaId"`
	Description *string          `json:"descricao"`
	CostPrice   *decimal.Decimal `json:"precoCusto"`
	SalePrice   *decimal.Decimal `json:"precoVenda"`
	LotNumber   *string          `json:"lote"`
	Address     *string          `json:"enderecoLocalizacao"`
	SupplierID  *string          `json:"fornecedorId"`
}

// ProductResponse representação de produto nas respostas.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	SKU         string          `json:"sku"`
	Kind        string          `json:"tipo"`
	CategoryID  string          `json:"categoriaId"`
	Description string          `json:"descricao,omitempty"`
	CostPrice   decimal.Decimal `json:"precoCusto"`
	SalePrice   decimal.Decimal `json:"precoVenda"`
	LotNumber   string          `json:"lote,omitempty"`
	Address     string          `json:"enderecoLocalizacao,omitempty"`
	SupplierID  string          `json:"fornecedorId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
