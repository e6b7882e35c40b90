package entity

import "time"

// AuditLogEntry registra uma ação destrutiva (exclusão de produto, fornecedor,
// local ou usuário). Append-only: nenhum caller pode atualizar ou remover.
type AuditLogEntry struct {
	ID          string
	Action      string // ex: "Exclusão de Produto"
	SubjectName string // nome do registro excluído
	ActorName   string // quem executou
	Reason      string
	OccurredAt  time.Time
}
