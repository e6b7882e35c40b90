package repository

import "github.com/viapro/armazem-api/internal/domain/entity"

// StockRepository define a porta para consultar e atualizar saldos de estoque.
// UpdateQuantity só deve ser chamado pelo motor de movimentações, dentro de uma
// transação, após GetForUpdate na mesma linha.
type StockRepository interface {
	Create(entry *entity.StockEntry) error
	Get(id string) (*entity.StockEntry, error)
	// GetForUpdate bloqueia a linha (SELECT FOR UPDATE) para serializar o
	// read-modify-write de movimentações concorrentes sobre o mesmo saldo.
	GetForUpdate(id string) (*entity.StockEntry, error)
	// GetAvailableByProductForUpdate localiza e bloqueia o saldo Disponível de
	// um produto (usado no recebimento de pedidos de compra).
	GetAvailableByProductForUpdate(productID string) (*entity.StockEntry, error)
	UpdateQuantity(id string, quantity int64) error
	List() ([]*entity.StockEntry, error)
	ListWithProduct() ([]*entity.StockEntryWithProduct, error)
}
