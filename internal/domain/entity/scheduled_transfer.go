package entity

import "time"

// Estados de una transferencia agendada. El ciclo de vida lo gestiona el agendador externo;
// aquí solo se leen las filas PENDING.
const (
	ScheduledStatusPending   = "PENDING"
	ScheduledStatusExecuted  = "EXECUTED"
	ScheduledStatusCancelled = "CANCELLED"
)

// ScheduledTransfer representa una transferencia programada que aún no se ejecutó.
type ScheduledTransfer struct {
	ItemID        int       `db:"item_id"`
	OriginStockID int       `db:"estoque_origem_id"`
	DestStockID   int       `db:"estoque_destino_id"`
	Quantity      int       `db:"quantidade"`
	ScheduledAt   time.Time `db:"data_agendada"`
	Status        string    `db:"status"`
}

// IsPending indica si la transferencia participa en los reportes de movimientos.
func (s ScheduledTransfer) IsPending() bool {
	return s.Status == ScheduledStatusPending
}
