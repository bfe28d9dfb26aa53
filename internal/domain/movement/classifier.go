package movement

import (
	"time"

	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
)

// Kind tipo de evento de movimiento.
type Kind string

const (
	KindTransferOut  Kind = "TRANSFER_OUT"
	KindTransferIn   Kind = "TRANSFER_IN"
	KindScheduledOut Kind = "SCHEDULED_OUT"
	KindScheduledIn  Kind = "SCHEDULED_IN"
)

// Event movimiento direccional en un estoque. SignedQuantity > 0 es entrada, < 0 salida.
// Existe solo durante el procesamiento de una petición.
type Event struct {
	ItemID         int
	StockID        int
	Timestamp      time.Time
	SignedQuantity int
	Kind           Kind
}

// Classification resultado de clasificar una transferencia: cero, uno o dos eventos.
type Classification struct {
	events [2]Event
	n      int
}

// Events devuelve los eventos producidos (salida primero, luego entrada).
func (c Classification) Events() []Event {
	out := make([]Event, c.n)
	copy(out, c.events[:c.n])
	return out
}

// Len número de eventos producidos.
func (c Classification) Len() int { return c.n }

func (c *Classification) push(e Event) {
	c.events[c.n] = e
	c.n++
}

// ClassifyTransfer clasifica una transferencia ejecutada.
// Sin filtro de estoque se emiten ambos lados: el reporte mide movimiento por ubicación,
// no el delta neto del sistema.
func ClassifyTransfer(t entity.Transfer, stockFilter *int) Classification {
	return classify(t.ItemID, t.OriginStockID, t.DestStockID, t.Quantity, t.OccurredAt,
		KindTransferOut, KindTransferIn, stockFilter)
}

// ClassifyScheduled clasifica una transferencia agendada (movimiento proyectado).
func ClassifyScheduled(s entity.ScheduledTransfer, stockFilter *int) Classification {
	return classify(s.ItemID, s.OriginStockID, s.DestStockID, s.Quantity, s.ScheduledAt,
		KindScheduledOut, KindScheduledIn, stockFilter)
}

// origen == destino es válido: produce dos eventos opuestos en el mismo estoque.
func classify(itemID, origin, dest, qty int, at time.Time, outKind, inKind Kind, stockFilter *int) Classification {
	var c Classification
	if stockFilter == nil || *stockFilter == origin {
		c.push(Event{ItemID: itemID, StockID: origin, Timestamp: at, SignedQuantity: -qty, Kind: outKind})
	}
	if stockFilter == nil || *stockFilter == dest {
		c.push(Event{ItemID: itemID, StockID: dest, Timestamp: at, SignedQuantity: qty, Kind: inKind})
	}
	return c
}
