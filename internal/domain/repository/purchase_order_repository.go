package repository

import "github.com/viapro/armazem-api/internal/domain/entity"

// PurchaseOrderRepository define a porta de persistência de pedidos de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetForUpdate bloqueia o pedido para o recebimento, evitando que duas
	// confirmações concorrentes apliquem a entrada em dobro.
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	MarkReceived(order *entity.PurchaseOrder) error
	ListWithDetails() ([]*entity.PurchaseOrderWithDetails, error)
}
