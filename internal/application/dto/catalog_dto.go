package dto

import "time"

// CreateCategoryRequest payload de criação de categoria.
type CreateCategoryRequest struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

// CategoryResponse representação de categoria.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
}

// SupplierRequest payload de criação/edição de fornecedor.
type SupplierRequest struct {
	CompanyName string `json:"nomeEmpresa"`
	CNPJ        string `json:"cnpj"`
	ContactName string `json:"contatoNome"`
	Phone       string `json:"telefone"`
	Email       string `json:"email"`
}

// SupplierResponse representação de fornecedor.
type SupplierResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"nomeEmpresa"`
	CNPJ        string `json:"cnpj,omitempty"`
	ContactName string `json:"contatoNome,omitempty"`
	Phone       string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// LocationRequest payload de criação/edição de local do armazém.
type LocationRequest struct {
	Code  string `json:"codigo"`
	Zone  string `json:"zona"`
	Aisle string `json:"corredor"`
	Shelf string `json:"prateleira"`
}

// LocationResponse representação de local.
type LocationResponse struct {
	ID    string `json:"id"`
	Code  string `json:"codigo"`
	Zone  string `json:"zona"`
	Aisle string `json:"corredor"`
	Shelf string `json:"prateleira"`
}

// CreateUserRequest payload de criação de usuário.
type CreateUserRequest struct {
	Name     string `json:"nome"`
	Role     string `json:"cargo"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// UpdateUserRequest payload de edição de usuário (sem troca de senha).
type UpdateUserRequest struct {
	Name  *string `json:"nome"`
	Role  *string `json:"cargo"`
	Email *string `json:"email"`
}

// UserResponse representação de usuário (nunca expõe o hash da senha).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Role      string    `json:"cargo"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
