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

// CategoryUseCase CRUD de categorias de produto.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	trail *audit.Trail
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, trail *audit.Trail) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, trail: trail}
}

// Create cria uma categoria.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

// List lista todas as categorias.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return items, nil
}

// Delete exclui uma categoria e audita. ErrReferenced quando há produtos
// classificados nela.
func (uc *CategoryUseCase) Delete(id string, actor Actor, reason string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.trail.RecordDeletion("Exclusão de Categoria", category.Name, actor.Name, reason)
}
