package entity

import "time"

// Supplier representa um fornecedor de insumos/mercadorias.
type Supplier struct {
	ID          string
	CompanyName string
	CNPJ        string
	ContactName string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
