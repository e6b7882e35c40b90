// Package audit expõe a trilha append-only de ações destrutivas, separada do
// razão de movimentações.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

// Trail caso de uso da trilha de auditoria.
type Trail struct {
	repo repository.AuditLogRepository
}

// NewTrail constrói o caso de uso.
func NewTrail(repo repository.AuditLogRepository) *Trail {
	return &Trail{repo: repo}
}

// RecordDeletion grava um registro de exclusão. Nunca falha por regra de
// negócio; só por indisponibilidade do armazenamento.
func (t *Trail) RecordDeletion(action, subjectName, actorName, reason string) error {
	return t.repo.Create(&entity.AuditLogEntry{
		ID:          uuid.New().String(),
		Action:      action,
		SubjectName: subjectName,
		ActorName:   actorName,
		Reason:      reason,
		OccurredAt:  time.Now(),
	})
}

// List devolve a trilha completa para o GET /logs-auditoria.
func (t *Trail) List() ([]dto.AuditLogResponse, error) {
	entries, err := t.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogResponse{
			ID:          e.ID,
			Action:      e.Action,
			SubjectName: e.SubjectName,
			ActorName:   e.ActorName,
			Reason:      e.Reason,
			OccurredAt:  e.OccurredAt,
		})
	}
	return out, nil
}
