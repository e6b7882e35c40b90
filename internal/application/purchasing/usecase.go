package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

// UseCase emissão e recebimento de pedidos de compra.
// Pendente → Recebido acontece exatamente uma vez; o recebimento dispara a
// entrada no estoque dentro da mesma transação.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// Create emite um pedido de compra com código sequencial PC-NNNN e status
// Pendente. O código é alocado na mesma transação que grava o pedido, para
// que uma emissão que falhe não queime um número.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var order *entity.PurchaseOrder
	err = uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.MovementRepository,
		_ repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		seq, err := seqRepo.Next(entity.CodePrefixPurchaseOrder)
		if err != nil {
			return err
		}
		order = &entity.PurchaseOrder{
			ID:           uuid.New().String(),
			Code:         fmt.Sprintf("%s-%04d", entity.CodePrefixPurchaseOrder, seq),
			SupplierID:   in.SupplierID,
			ProductID:    in.ProductID,
			Quantity:     in.Quantity,
			TotalCost:    in.TotalCost,
			Status:       entity.OrderStatusPending,
			ExpectedDate: in.ExpectedDate,
			CreatedAt:    time.Now(),
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	resp.Supplier = &dto.SupplierRef{CompanyName: supplier.CompanyName}
	resp.Product = &dto.NameRef{Name: product.Name}
	return resp, nil
}

// List devolve os pedidos com nomes de fornecedor e produto.
func (uc *UseCase) List() ([]dto.PurchaseOrderResponse, error) {
	orders, err := uc.orderRepo.ListWithDetails()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := toOrderResponse(&o.PurchaseOrder)
		resp.Supplier = &dto.SupplierRef{CompanyName: o.SupplierName}
		resp.Product = &dto.NameRef{Name: o.ProductName}
		out = append(out, *resp)
	}
	return out, nil
}

// Receive confirma o recebimento de um pedido Pendente: marca Recebido e
// registra a entrada no saldo Disponível do produto, tudo em uma transação.
// Um segundo recebimento falha com ErrConflict sem reaplicar a entrada.
func (uc *UseCase) Receive(ctx context.Context, orderID, userID string) (*dto.PurchaseOrderResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	var received *entity.PurchaseOrder
	err = uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return domain.ErrConflict
		}
		product, err := uc.productRepo.GetByID(order.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		entry, err := stockRepo.GetAvailableByProductForUpdate(order.ProductID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		note := fmt.Sprintf("Recebimento do pedido %s", order.Code)
		if _, err := movement.RecordInboundInTx(movRepo, stockRepo, seqRepo, product, entry, userID, order.Quantity, note, now); err != nil {
			return err
		}

		order.Status = entity.OrderStatusReceived
		order.ReceivedAt = &now
		order.ReceivedBy = userID
		if err := orderRepo.MarkReceived(order); err != nil {
			return err
		}
		received = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(received), nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:           o.ID,
		Code:         o.Code,
		SupplierID:   o.SupplierID,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		TotalCost:    o.TotalCost,
		Status:       o.Status,
		ExpectedDate: o.ExpectedDate,
		ReceivedAt:   o.ReceivedAt,
		CreatedAt:    o.CreatedAt,
	}
}
