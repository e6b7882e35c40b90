package dto

// LoginRequest credenciais do POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResponse token e dados do usuário autenticado, no formato que a UI
// guarda na sessão.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}
