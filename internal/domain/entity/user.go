package entity

import "time"

// Cargos reconhecidos pela política de acesso. O cargo fica no JWT; a checagem
// acontece no middleware HTTP, nunca dentro do motor de movimentações.
const (
	RoleAdmin      = "admin"
	RoleStockClerk = "estoquista"
	RoleSeller     = "vendedor"
)

// User é um operador do sistema (gestor, estoquista ou vendedor).
type User struct {
	ID           string
	Name         string
	Role         string // cargo livre; a política compara por substring (ex: "Gestor Admin")
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
