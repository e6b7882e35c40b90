// Package stock expõe a consulta do armazém e a abertura de novos saldos.
// A quantidade em si só muda pelo motor de movimentações.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
	"github.com/viapro/armazem-api/internal/domain/valuation"
	"github.com/viapro/armazem-api/pkg/textutil"
)

// UseCase consulta e abertura de saldos de estoque.
type UseCase struct {
	txRunner     movement.TxRunner
	stockRepo    repository.StockRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner movement.TxRunner,
	stockRepo repository.StockRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		stockRepo:    stockRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// List devolve os saldos com produto e local embutidos, como a tela de
// Gestão de Armazém consome. O termo de busca, quando presente, filtra por
// nome ou SKU do produto sem distinguir caixa nem acentos.
func (uc *UseCase) List(search string) ([]dto.StockEntryResponse, error) {
	items, err := uc.stockRepo.ListWithProduct()
	if err != nil {
		return nil, err
	}
	if search != "" {
		filtered := items[:0]
		for _, it := range items {
			if textutil.ContainsFold(it.Product.Name, search) || textutil.ContainsFold(it.Product.SKU, search) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Location, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
	}

	out := make([]dto.StockEntryResponse, 0, len(items))
	for _, it := range items {
		resp := dto.StockEntryResponse{
			ID:       it.Entry.ID,
			Quantity: it.Entry.Quantity,
			Status:   it.Entry.Status,
			Critical: valuation.IsCritical(&it.Entry),
			Product: dto.ProductResponse{
				ID:         it.Product.ID,
				Name:       it.Product.Name,
				SKU:        it.Product.SKU,
				Kind:       it.Product.Kind,
				CategoryID: it.Product.CategoryID,
				CostPrice:  it.Product.CostPrice,
				SalePrice:  it.Product.SalePrice,
				CreatedAt:  it.Product.CreatedAt,
				UpdatedAt:  it.Product.UpdatedAt,
			},
		}
		if l, ok := byID[it.Entry.LocationID]; ok {
			resp.Location = &dto.LocationResponse{ID: l.ID, Code: l.Code, Zone: l.Zone, Aisle: l.Aisle, Shelf: l.Shelf}
		}
		out = append(out, resp)
	}
	return out, nil
}

// CreateEntry abre um saldo para (produto, local). O registro nasce zerado e o
// saldo inicial, quando positivo, entra como movimentação de entrada na mesma
// transação, de modo que o razão explica o saldo desde a origem e uma falha na
// movimentação não deixa um saldo zerado órfão para trás.
func (uc *UseCase) CreateEntry(ctx context.Context, in dto.CreateStockEntryRequest) (*entity.StockEntry, error) {
	if in.ProductID == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.InitialQuantity > 0 {
		if in.UserID == "" {
			return nil, domain.ErrInvalidInput
		}
		user, err := uc.userRepo.GetByID(in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
	}
	status := in.Status
	if status == "" {
		status = entity.StockStatusAvailable
	}
	now := time.Now()
	entry := &entity.StockEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Quantity:   0,
		Status:     status,
		UpdatedAt:  now,
	}
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		if err := stockRepo.Create(entry); err != nil {
			return err
		}
		if in.InitialQuantity == 0 {
			return nil
		}
		note := "Saldo inicial de cadastro"
		if _, err := movement.RecordInboundInTx(movRepo, stockRepo, seqRepo, product, entry, in.UserID, in.InitialQuantity, note, now); err != nil {
			return err
		}
		entry.Quantity = in.InitialQuantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
