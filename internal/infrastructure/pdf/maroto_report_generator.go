// Package pdf gera o relatório de movimentações em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Movimentações + data de emissão        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Código | Data | Produto | Tipo | Qtd | Operador     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de lançamentos                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/viapro/armazem-api/internal/application/reporting"
	"github.com/viapro/armazem-api/internal/domain/entity"
)

var _ reporting.MovementReportRenderer = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 15, Green: 80, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa reporting.MovementReportRenderer com Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Render gera o PDF do histórico e devolve seus bytes.
func (g *MarotoReportGenerator) Render(movements []*entity.MovementWithDetails, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Movimentações", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (esq) e data de emissão (dir).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE MOVIMENTAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Controle de entradas e saídas do armazém", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em:", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de lançamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 1, align.Left),
		h("Data", 2, align.Left),
		h("Produto", 4, align.Left),
		h("Tipo de ação", 3, align.Left),
		h("Qtd.", 1, align.Right),
		h("Operador", 1, align.Left),
	)
}

// movementRow: uma linha por lançamento.
func movementRow(m *entity.MovementWithDetails) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(m.Code, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(m.OccurredAt.Format("02/01/2006 15:04"), props.Text{
			Size: 7.5, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(m.ProductName, props.Text{
			Size: 7.5, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(m.Action, props.Text{
			Size: 7.5, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%+d", m.Quantity), props.Text{
			Size: 7.5, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(m.UserName, props.Text{
			Size: 7.5, Top: 1, Left: 1,
		})),
	)
}

// footerRow: total de lançamentos do relatório.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de lançamentos: %d", total), props.Text{
			Size: 8, Top: 2, Color: colorGray,
		}),
	))
}
