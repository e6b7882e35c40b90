package purchasing

import (
	"context"

	"github.com/viapro/armazem-api/internal/domain/repository"
)

// TxRunner transações de pedidos de compra. Na emissão, o código PC-NNNN é
// alocado junto com a gravação do pedido; no recebimento, a mudança de status
// e a movimentação de entrada são gravadas como uma unidade.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
