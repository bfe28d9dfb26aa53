// Package report contiene el caso de uso del reporte de movimientos (transferencias
// ejecutadas + agendadas, agregadas por ítem, estoque y bucket de tiempo).
package report

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
	"github.com/estoque-app/movimentacoes-api/internal/domain"
	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
	"github.com/estoque-app/movimentacoes-api/internal/domain/movement"
	"github.com/estoque-app/movimentacoes-api/internal/domain/repository"
)

const tracerName = "github.com/estoque-app/movimentacoes-api/internal/application/report"

// MovementReportUseCase orquesta el reporte de movimientos:
//  1. Valida la ventana de consulta.
//  2. Lee transferencias y agendamientos pendientes en paralelo.
//  3. Resuelve nombres de ítems y estoques en paralelo (segunda ola: necesita los ids).
//  4. Clasifica, agrega y ordena.
//
// No guarda estado entre peticiones: cada llamada usa sus propios mapas.
type MovementReportUseCase struct {
	repo   repository.MovementReportRepository
	opts   Options
	tracer trace.Tracer
}

// NewMovementReportUseCase construye el caso de uso.
func NewMovementReportUseCase(repo repository.MovementReportRepository, opts Options) *MovementReportUseCase {
	return &MovementReportUseCase{
		repo:   repo,
		opts:   opts.withDefaults(),
		tracer: otel.Tracer(tracerName),
	}
}

// Generate devuelve el reporte con la forma de la respuesta HTTP.
func (uc *MovementReportUseCase) Generate(ctx context.Context, q dto.MovementReportQuery) (*dto.MovementReportResponse, error) {
	r, err := uc.Build(ctx, q)
	if err != nil {
		return nil, err
	}
	return r.ToResponse(), nil
}

// Build valida la consulta y ejecuta el motor. Devuelve *domain.ValidationError
// o *domain.StorageError; nunca resultados parciales.
func (uc *MovementReportUseCase) Build(ctx context.Context, q dto.MovementReportQuery) (*Report, error) {
	ctx, span := uc.tracer.Start(ctx, "movimentacoes.relatorio")
	defer span.End()

	w, err := ValidateQuery(q, uc.opts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.String("granularity", string(w.Granularity)),
		attribute.Bool("filtro.item", w.ItemID != nil),
		attribute.Bool("filtro.estoque", w.StockID != nil),
	)

	rows, err := uc.run(ctx, w)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage")
		return nil, err
	}
	span.SetAttributes(attribute.Int("linhas", len(rows)))
	return &Report{Window: w, Rows: rows}, nil
}

func (uc *MovementReportUseCase) run(ctx context.Context, w Window) ([]movement.Row, error) {
	// ── Ola 1: transferencias y agendamientos ────────────────────────────────
	transfers, scheduled, err := uc.fetchTransfers(ctx, w)
	if err != nil {
		return nil, err
	}

	// ── Ola 2: nombres ────────────────────────────────────────────────────────
	itemIDs, stockIDs := CollectIDs(transfers, scheduled)
	names, err := uc.fetchNames(ctx, itemIDs, stockIDs)
	if err != nil {
		return nil, err
	}

	// ── Clasificar y agregar: reales primero, luego agendadas ────────────────
	agg := movement.NewAggregator(w.Granularity, uc.opts.Location, names)
	for _, t := range transfers {
		agg.AddClassification(movement.ClassifyTransfer(t, w.StockID))
	}
	for _, s := range scheduled {
		if !s.IsPending() {
			continue
		}
		agg.AddClassification(movement.ClassifyScheduled(s, w.StockID))
	}

	rows := agg.Rows()
	movement.SortRows(rows, uc.opts.Collation)
	return rows, nil
}

func (uc *MovementReportUseCase) fetchTransfers(ctx context.Context, w Window) ([]entity.Transfer, []entity.ScheduledTransfer, error) {
	ctx, span := uc.tracer.Start(ctx, "movimentacoes.transferencias")
	defer span.End()

	filter := repository.TransferFilter{ItemID: w.ItemID, StockID: w.StockID, From: w.Start, To: w.End}

	type transfersResult struct {
		rows []entity.Transfer
		err  error
	}
	type scheduledResult struct {
		rows []entity.ScheduledTransfer
		err  error
	}
	trCh := make(chan transfersResult, 1)
	schCh := make(chan scheduledResult, 1)

	go func() {
		rows, err := uc.repo.FindTransfers(ctx, filter)
		trCh <- transfersResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.FindScheduledTransfers(ctx, repository.ScheduledTransferFilter{
			TransferFilter: filter,
			Status:         entity.ScheduledStatusPending,
		})
		schCh <- scheduledResult{rows, err}
	}()

	tr := <-trCh
	sch := <-schCh

	if tr.err != nil {
		return nil, nil, domain.WrapStorage("relatorio: transferencias", tr.err)
	}
	if sch.err != nil {
		return nil, nil, domain.WrapStorage("relatorio: transferencias agendadas", sch.err)
	}
	span.SetAttributes(
		attribute.Int("transferencias", len(tr.rows)),
		attribute.Int("agendadas", len(sch.rows)),
	)
	return tr.rows, sch.rows, nil
}

func (uc *MovementReportUseCase) fetchNames(ctx context.Context, itemIDs, stockIDs []int) (movement.Names, error) {
	ctx, span := uc.tracer.Start(ctx, "movimentacoes.nomes")
	defer span.End()

	type namesResult struct {
		refs []entity.NamedRef
		err  error
	}
	itemCh := make(chan namesResult, 1)
	stockCh := make(chan namesResult, 1)

	go func() {
		if len(itemIDs) == 0 {
			itemCh <- namesResult{}
			return
		}
		refs, err := uc.repo.FindItemNames(ctx, itemIDs)
		itemCh <- namesResult{refs, err}
	}()
	go func() {
		if len(stockIDs) == 0 {
			stockCh <- namesResult{}
			return
		}
		refs, err := uc.repo.FindStockNames(ctx, stockIDs)
		stockCh <- namesResult{refs, err}
	}()

	items := <-itemCh
	stocks := <-stockCh

	if items.err != nil {
		return movement.Names{}, domain.WrapStorage("relatorio: nomes de itens", items.err)
	}
	if stocks.err != nil {
		return movement.Names{}, domain.WrapStorage("relatorio: nomes de estoques", stocks.err)
	}
	return movement.Names{
		Items:  movement.NameIndex(items.refs),
		Stocks: movement.NameIndex(stocks.refs),
	}, nil
}
