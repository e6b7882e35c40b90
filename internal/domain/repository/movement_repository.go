package repository

import (
	"time"

	"github.com/viapro/armazem-api/internal/domain/entity"
)

// MovementRepository define a porta de persistência do razão de movimentações.
// Não há Update nem Delete: lançamentos são imutáveis.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(from, to *time.Time) ([]*entity.Movement, error)
	// ListWithDetails devolve os lançamentos com nomes de produto e usuário
	// desnormalizados, em ordem decrescente de data.
	ListWithDetails(from, to *time.Time) ([]*entity.MovementWithDetails, error)
	ExistsForProduct(productID string) (bool, error)
}
