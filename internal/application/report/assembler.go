package report

import (
	"sort"
	"time"

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
	"github.com/estoque-app/movimentacoes-api/internal/domain/movement"
)

// isoLayout replica Date.toISOString: UTC con milisegundos.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Report resultado del motor antes de darle forma HTTP.
type Report struct {
	Window Window
	Rows   []movement.Row // ya ordenadas
}

// CollectIDs devuelve los ids distintos de ítems y estoques referenciados por ambas fuentes,
// ordenados para que las consultas de nombres sean estables.
func CollectIDs(transfers []entity.Transfer, scheduled []entity.ScheduledTransfer) (itemIDs, stockIDs []int) {
	items := make(map[int]struct{})
	stocks := make(map[int]struct{})
	for _, t := range transfers {
		items[t.ItemID] = struct{}{}
		stocks[t.OriginStockID] = struct{}{}
		stocks[t.DestStockID] = struct{}{}
	}
	for _, s := range scheduled {
		items[s.ItemID] = struct{}{}
		stocks[s.OriginStockID] = struct{}{}
		stocks[s.DestStockID] = struct{}{}
	}
	return sortedKeys(items), sortedKeys(stocks)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// FormatISO formatea t como ISO 8601 en UTC con milisegundos.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ToResponse arma el sobre de respuesta (periodo, filtros, linhas).
func (r *Report) ToResponse() *dto.MovementReportResponse {
	linhas := make([]dto.MovementRowDTO, 0, len(r.Rows))
	for _, row := range r.Rows {
		tipos := make([]string, 0, len(row.Kinds))
		for _, k := range row.Kinds {
			tipos = append(tipos, string(k))
		}
		linhas = append(linhas, dto.MovementRowDTO{
			ItemID:      row.ItemID,
			ItemNome:    row.ItemName,
			EstoqueID:   row.StockID,
			EstoqueNome: row.StockName,
			Bucket:      row.Bucket,
			Entradas:    row.Inbound,
			Saidas:      row.Outbound,
			Tipos:       tipos,
		})
	}
	return &dto.MovementReportResponse{
		Periodo: dto.PeriodoDTO{
			Inicio:      FormatISO(r.Window.Start),
			Fim:         FormatISO(r.Window.End),
			Granularity: string(r.Window.Granularity),
		},
		Filtros: dto.FiltrosDTO{
			ItemID:    r.Window.ItemID,
			EstoqueID: r.Window.StockID,
		},
		Linhas: linhas,
	}
}
