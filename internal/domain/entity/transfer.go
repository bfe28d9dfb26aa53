package entity

import "time"

// Transfer representa una transferencia ya ejecutada entre dos estoques (hecho histórico, inmutable).
type Transfer struct {
	ItemID        int       `db:"item_id"`
	OriginStockID int       `db:"estoque_origem_id"`
	DestStockID   int       `db:"estoque_destino_id"`
	Quantity      int       `db:"quantidade"` // siempre > 0
	OccurredAt    time.Time `db:"data"`
}
