package dto

import "time"

// AuditLogResponse registro da trilha de auditoria (GET /logs-auditoria).
type AuditLogResponse struct {
	ID          string    `json:"id"`
	Action      string    `json:"acao"`
	SubjectName string    `json:"nomeAlvo"`
	ActorName   string    `json:"autorNome"`
	Reason      string    `json:"motivo,omitempty"`
	OccurredAt  time.Time `json:"dataHora"`
}
