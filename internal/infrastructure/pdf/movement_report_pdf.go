// Package pdf genera la versión imprimible del reporte de movimientos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + período + granularidad                    │
//	│  FILTROS: ítem / estoque (o "todos")                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bucket | Item | Estoque | Entradas | Saídas | Tipos │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: suma de entradas y saídas                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MovementReportPDF genera el PDF del reporte con Maroto v2.
type MovementReportPDF struct {
	author string
}

// NewMovementReportPDF construye el generador. author aparece en los metadatos del documento.
func NewMovementReportPDF(author string) *MovementReportPDF {
	return &MovementReportPDF{author: author}
}

// RenderMovementReport genera el documento y devuelve sus bytes.
func (g *MovementReportPDF) RenderMovementReport(_ context.Context, rep *dto.MovementReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de movimentações", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(filtersRow(rep.Filtros))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(rep.Linhas) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
			"Nenhuma movimentação no período.",
			props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray},
		))))
	}
	m.AddRows(tableRows(rep.Linhas)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep.Linhas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep *dto.MovementReportResponse) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE MOVIMENTAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary,
			}),
			text.New("Transferências realizadas e agendadas", props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Início: "+rep.Periodo.Inicio, props.Text{Size: 8, Align: align.Right}),
			text.New("Fim: "+rep.Periodo.Fim, props.Text{Size: 8, Align: align.Right, Top: 5}),
			text.New("Granularidade: "+rep.Periodo.Granularity, props.Text{Size: 8, Align: align.Right, Top: 10}),
		),
	)
}

func filtersRow(f dto.FiltrosDTO) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(
		"Item: "+optionalID(f.ItemID)+"    Estoque: "+optionalID(f.EstoqueID),
		props.Text{Size: 8, Color: colorGray, Top: 1},
	)))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Bucket", 2, align.Left),
		h("Item", 3, align.Left),
		h("Estoque", 3, align.Left),
		h("Entradas", 1, align.Right),
		h("Saídas", 1, align.Right),
		h("Tipos", 2, align.Left),
	)
}

// tableRows: una fila por línea del reporte, en el mismo orden de la respuesta JSON.
func tableRows(linhas []dto.MovementRowDTO) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.Bucket, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.ItemNome, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.EstoqueNome, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Entradas), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Saidas), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(strings.Join(l.Tipos, ", "), props.Text{Size: 6, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}

func totalsRow(linhas []dto.MovementRowDTO) core.Row {
	var in, out int
	for _, l := range linhas {
		in += l.Entradas
		out += l.Saidas
	}
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1}
	return row.New(8).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1})),
		col.New(1).Add(text.New(strconv.Itoa(in), bold)),
		col.New(1).Add(text.New(strconv.Itoa(out), bold)),
		col.New(2),
	)
}

func optionalID(id *int) string {
	if id == nil {
		return "todos"
	}
	return "#" + strconv.Itoa(*id)
}
