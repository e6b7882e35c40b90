package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

// MovementReportRenderer gera o relatório de movimentações em PDF.
type MovementReportRenderer interface {
	Render(movements []*entity.MovementWithDetails, generatedAt time.Time) ([]byte, error)
}

// HistoryUseCase lista o histórico de movimentações e gera o relatório em PDF.
type HistoryUseCase struct {
	movementRepo repository.MovementRepository
	renderer     MovementReportRenderer
}

// NewHistoryUseCase constrói o caso de uso.
func NewHistoryUseCase(movementRepo repository.MovementRepository, renderer MovementReportRenderer) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo, renderer: renderer}
}

// List devolve o histórico com nomes de produto e usuário, mais recente
// primeiro. from e to são opcionais.
func (uc *HistoryUseCase) List(ctx context.Context, from, to *time.Time) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListWithDetails(from, to)
	if err != nil {
		return nil, fmt.Errorf("histórico: %w", err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ReportPDF gera o relatório de movimentações do período em PDF.
func (uc *HistoryUseCase) ReportPDF(ctx context.Context, from, to *time.Time) ([]byte, error) {
	movements, err := uc.movementRepo.ListWithDetails(from, to)
	if err != nil {
		return nil, fmt.Errorf("relatório: %w", err)
	}
	pdf, err := uc.renderer.Render(movements, time.Now())
	if err != nil {
		return nil, fmt.Errorf("relatório: render: %w", err)
	}
	return pdf, nil
}

// ToMovementResponse converte um lançamento desnormalizado no DTO do histórico.
func ToMovementResponse(m *entity.MovementWithDetails) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Code:           m.Code,
		ProductID:      m.ProductID,
		StockEntryID:   m.StockEntryID,
		Action:         m.Action,
		Quantity:       m.Quantity,
		UnitCost:       m.UnitCost,
		Customer:       m.Customer,
		ExpectedReturn: m.ExpectedReturn,
		Note:           m.Note,
		OccurredAt:     m.OccurredAt,
		Product:        &dto.NameRef{Name: m.ProductName},
		User:           &dto.NameRef{Name: m.UserName},
	}
}
