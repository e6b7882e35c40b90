package movement

import (
	"context"

	"github.com/viapro/armazem-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação, entregando repositórios
// presos a essa transação. É o que garante a atomicidade do motor: ou o saldo e
// o lançamento são gravados juntos, ou nada é gravado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
