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

// SupplierUseCase CRUD de fornecedores.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	trail *audit.Trail
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, trail *audit.Trail) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, trail: trail}
}

// Create cria um fornecedor.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		CNPJ:        in.CNPJ,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update edita um fornecedor; nil quando não existe.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier.CompanyName = in.CompanyName
	supplier.CNPJ = in.CNPJ
	supplier.ContactName = in.ContactName
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista fornecedores.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Delete exclui um fornecedor e audita. ErrReferenced quando há pedidos de
// compra ou produtos apontando para ele.
func (uc *SupplierUseCase) Delete(id string, actor Actor, reason string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.trail.RecordDeletion("Exclusão de Fornecedor", supplier.CompanyName, actor.Name, reason)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		CompanyName: s.CompanyName,
		CNPJ:        s.CNPJ,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
	}
}
