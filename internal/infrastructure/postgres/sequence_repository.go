package postgres

import (
	"context"
	"fmt"

	"github.com/viapro/armazem-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo alocação de códigos sequenciais por prefixo (RE, RS, PC).
// O upsert atômico garante códigos sem furos nem duplicatas sob concorrência;
// chamado dentro da transação da operação, o número só é consumido no commit.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository constrói o alocador de sequências.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devolve o próximo número da sequência do prefixo, começando em 1.
func (r *SequenceRepo) Next(prefix string) (int64, error) {
	var value int64
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO sequences (prefix, value)
		VALUES ($1, 1)
		ON CONFLICT (prefix)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value`, prefix,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", prefix, err)
	}
	return value, nil
}
