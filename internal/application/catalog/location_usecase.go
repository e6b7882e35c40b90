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

// LocationUseCase CRUD de locais físicos do armazém.
type LocationUseCase struct {
	repo  repository.LocationRepository
	trail *audit.Trail
}

// NewLocationUseCase constrói o caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, trail *audit.Trail) *LocationUseCase {
	return &LocationUseCase{repo: repo, trail: trail}
}

// Create cria um local.
func (uc *LocationUseCase) Create(in dto.LocationRequest) (*dto.LocationResponse, error) {
	if in.Code == "" || in.Zone == "" {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.Location{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Zone:      in.Zone,
		Aisle:     in.Aisle,
		Shelf:     in.Shelf,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Update edita um local; nil quando não existe.
func (uc *LocationUseCase) Update(id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	location.Code = in.Code
	location.Zone = in.Zone
	location.Aisle = in.Aisle
	location.Shelf = in.Shelf
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista locais.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete exclui um local e audita. ErrReferenced quando há estoque no local.
func (uc *LocationUseCase) Delete(id string, actor Actor, reason string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.trail.RecordDeletion("Exclusão de Local", location.Code, actor.Name, reason)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{ID: l.ID, Code: l.Code, Zone: l.Zone, Aisle: l.Aisle, Shelf: l.Shelf}
}
