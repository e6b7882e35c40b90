package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/viapro/armazem-api/internal/application/audit"
	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

// ProductUseCase CRUD do catálogo de produtos. Saldo e movimentações ficam com
// o motor de movimentações; aqui só identidade, classificação e preços.
type ProductUseCase struct {
	repo      repository.ProductRepository
	movements repository.MovementRepository
	trail     *audit.Trail
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movements repository.MovementRepository, trail *audit.Trail) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, trail: trail}
}

// Create cria um produto. SKU duplicado falha com ErrDuplicateSKU.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	kind := in.Kind
	if kind == "" {
		kind = entity.ProductKindFinished
	}
	if kind != entity.ProductKindRawMaterial && kind != entity.ProductKindFinished {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Kind:        kind,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		LotNumber:   in.LotNumber,
		Address:     in.Address,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID; nil quando não existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edita um produto. A troca de SKU revalida a unicidade.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Kind != nil {
		if *in.Kind != entity.ProductKindRawMaterial && *in.Kind != entity.ProductKindFinished {
			return nil, domain.ErrInvalidInput
		}
		product.Kind = *in.Kind
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.LotNumber != nil {
		product.LotNumber = *in.LotNumber
	}
	if in.Address != nil {
		product.Address = *in.Address
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete exclui um produto e registra a exclusão na trilha de auditoria.
// Falha com ErrReferenced enquanto houver estoque ou movimentações apontando
// para ele; nesse caso nada é alterado nem auditado.
func (uc *ProductUseCase) Delete(id string, actor Actor, reason string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	// O razão é imutável: um produto com lançamentos nunca pode sumir, em
	// qualquer backend. As FKs do banco ficam como última barreira.
	referenced, err := uc.movements.ExistsForProduct(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrReferenced
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.trail.RecordDeletion("Exclusão de Produto", product.Name, actor.Name, reason)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Kind:        p.Kind,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		LotNumber:   p.LotNumber,
		Address:     p.Address,
		SupplierID:  p.SupplierID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
