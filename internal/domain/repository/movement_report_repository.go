package repository

import (
	"context"
	"time"

	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
)

// TransferFilter filtros de lectura de transferencias. From/To son inclusivos.
// Con StockID, la transferencia debe tener origen O destino en ese estoque.
type TransferFilter struct {
	ItemID  *int
	StockID *int
	From    time.Time
	To      time.Time
}

// ScheduledTransferFilter igual que TransferFilter, restringido además por estado.
type ScheduledTransferFilter struct {
	TransferFilter
	Status string
}

// MovementReportRepository colaborador de almacenamiento del reporte de movimientos.
// Solo lectura: ninguna implementación debe modificar datos.
type MovementReportRepository interface {
	FindTransfers(ctx context.Context, f TransferFilter) ([]entity.Transfer, error)
	FindScheduledTransfers(ctx context.Context, f ScheduledTransferFilter) ([]entity.ScheduledTransfer, error)

	// FindItemNames y FindStockNames resuelven nombres en lote; los ids desconocidos
	// simplemente no aparecen en el resultado.
	FindItemNames(ctx context.Context, ids []int) ([]entity.NamedRef, error)
	FindStockNames(ctx context.Context, ids []int) ([]entity.NamedRef, error)
}
