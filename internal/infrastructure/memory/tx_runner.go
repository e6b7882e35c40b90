package memory

import (
	"context"
	"sync"

	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/application/purchasing"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

var _ movement.TxRunner = (*TxRunner)(nil)
var _ purchasing.TxRunner = (*TxRunner)(nil)

// TxRunner transações sobre o Store: serializa os callbacks com um mutex
// próprio e tira um snapshot antes de cada um. Se o callback devolver erro,
// o estado volta ao snapshot, imitando o rollback do PostgreSQL.
type TxRunner struct {
	txMu  sync.Mutex
	store *Store
}

// NewTxRunner constrói o runner sobre o Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executa fn como uma transação do motor de movimentações.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.store.mu.Lock()
	snap := r.store.snapshot()
	r.store.mu.Unlock()

	err := fn(NewMovementRepository(r.store), NewStockRepository(r.store), NewSequenceRepository(r.store))
	if err != nil {
		r.store.mu.Lock()
		r.store.restore(snap)
		r.store.mu.Unlock()
		return err
	}
	return nil
}

// RunPurchase executa fn como uma transação de pedido de compra, tanto na
// emissão quanto no recebimento.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.store.mu.Lock()
	snap := r.store.snapshot()
	r.store.mu.Unlock()

	err := fn(NewPurchaseOrderRepository(r.store), NewMovementRepository(r.store), NewStockRepository(r.store), NewSequenceRepository(r.store))
	if err != nil {
		r.store.mu.Lock()
		r.store.restore(snap)
		r.store.mu.Unlock()
		return err
	}
	return nil
}
