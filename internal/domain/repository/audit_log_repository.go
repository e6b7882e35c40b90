package repository

import "github.com/viapro/armazem-api/internal/domain/entity"

// AuditLogRepository é a porta append-only da trilha de auditoria de ações
// destrutivas. Por desenho não existem operações de atualização ou remoção.
type AuditLogRepository interface {
	Create(entry *entity.AuditLogEntry) error
	List() ([]*entity.AuditLogEntry, error)
}
