package postgres

import (
	"context"
	"fmt"

	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo trilha de auditoria append-only sobre PostgreSQL.
// Nenhum UPDATE nem DELETE é emitido contra audit_logs.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository constrói o adaptador da trilha de auditoria.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create registra uma ação destrutiva.
func (r *AuditLogRepo) Create(entry *entity.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (id, action, subject_name, actor_name, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Action, entry.SubjectName, entry.ActorName, entry.Reason, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List devolve a trilha completa, mais recente primeiro.
func (r *AuditLogRepo) List() ([]*entity.AuditLogEntry, error) {
	query := `
		SELECT id, action, subject_name, actor_name, reason, occurred_at
		FROM audit_logs ORDER BY occurred_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLogEntry
	for rows.Next() {
		var e entity.AuditLogEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.SubjectName, &e.ActorName, &e.Reason, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
