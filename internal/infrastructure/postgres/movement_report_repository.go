package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
	"github.com/estoque-app/movimentacoes-api/internal/domain/repository"
)

var _ repository.MovementReportRepository = (*MovementReportRepo)(nil)

// MovementReportRepo lecturas del reporte de movimientos sobre PostgreSQL.
// Solo lectura: nada de lo que hace necesita transacción.
type MovementReportRepo struct {
	db      Querier
	builder squirrel.StatementBuilderType
}

// NewMovementReportRepository construye el adaptador. db suele ser el *pgxpool.Pool.
func NewMovementReportRepository(db Querier) *MovementReportRepo {
	return &MovementReportRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// transfersQuery SELECT sobre transferencias con la ventana [From, To] y los filtros opcionales.
// El filtro de estoque coincide por origen o por destino.
func (r *MovementReportRepo) transfersQuery(table, dateCol string, f repository.TransferFilter) squirrel.SelectBuilder {
	q := r.builder.
		Select("item_id", "estoque_origem_id", "estoque_destino_id", "quantidade", dateCol).
		From(table).
		Where(squirrel.GtOrEq{dateCol: f.From}).
		Where(squirrel.LtOrEq{dateCol: f.To})

	if f.ItemID != nil {
		q = q.Where(squirrel.Eq{"item_id": *f.ItemID})
	}
	if f.StockID != nil {
		q = q.Where(squirrel.Or{
			squirrel.Eq{"estoque_origem_id": *f.StockID},
			squirrel.Eq{"estoque_destino_id": *f.StockID},
		})
	}
	return q
}

func (r *MovementReportRepo) buildTransfersQuery(f repository.TransferFilter) squirrel.SelectBuilder {
	return r.transfersQuery("transferencias", "data", f).OrderBy("data", "id")
}

func (r *MovementReportRepo) buildScheduledQuery(f repository.ScheduledTransferFilter) squirrel.SelectBuilder {
	q := r.transfersQuery("transferencias_agendadas", "data_agendada", f.TransferFilter)
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": f.Status})
	}
	return q.Column("status").OrderBy("data_agendada", "id")
}

func (r *MovementReportRepo) buildNamesQuery(table string, ids []int) squirrel.SelectBuilder {
	return r.builder.
		Select("id", "nome").
		From(table).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id")
}

// FindTransfers transferencias ejecutadas dentro de la ventana.
func (r *MovementReportRepo) FindTransfers(ctx context.Context, f repository.TransferFilter) ([]entity.Transfer, error) {
	sql, args, err := r.buildTransfersQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transferencias: %w", err)
	}
	var out []entity.Transfer
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("select transferencias: %w", err)
	}
	return out, nil
}

// FindScheduledTransfers transferencias agendadas dentro de la ventana con el estado pedido.
func (r *MovementReportRepo) FindScheduledTransfers(ctx context.Context, f repository.ScheduledTransferFilter) ([]entity.ScheduledTransfer, error) {
	sql, args, err := r.buildScheduledQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transferencias_agendadas: %w", err)
	}
	var out []entity.ScheduledTransfer
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("select transferencias_agendadas: %w", err)
	}
	return out, nil
}

// FindItemNames nombres de los ítems indicados. Los ids inexistentes simplemente no aparecen.
func (r *MovementReportRepo) FindItemNames(ctx context.Context, ids []int) ([]entity.NamedRef, error) {
	return r.findNames(ctx, "itens", ids)
}

// FindStockNames nombres de los estoques indicados.
func (r *MovementReportRepo) FindStockNames(ctx context.Context, ids []int) ([]entity.NamedRef, error) {
	return r.findNames(ctx, "estoques", ids)
}

func (r *MovementReportRepo) findNames(ctx context.Context, table string, ids []int) ([]entity.NamedRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sql, args, err := r.buildNamesQuery(table, ids).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", table, err)
	}
	var out []entity.NamedRef
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return out, nil
}
