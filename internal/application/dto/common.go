package dto

// ErrorResponse corpo de erro HTTP. Error espelha o campo `error` que a UI
// legada lê; Code é o identificador estável do tipo de falha.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores padrão quando Limit/Offset não foram informados.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
