package movement

import (
	"fmt"
	"time"
)

// BucketKey identifica una fila agregada.
type BucketKey struct {
	ItemID  int
	StockID int
	Bucket  string
}

// String forma itemId:stockId:bucket. Los ids son numéricos, ':' no colisiona.
func (k BucketKey) String() string {
	return fmt.Sprintf("%d:%d:%s", k.ItemID, k.StockID, k.Bucket)
}

// Row fila agregada por (ítem, estoque, bucket).
type Row struct {
	ItemID    int
	ItemName  string
	StockID   int
	StockName string
	Bucket    string
	Inbound   int
	Outbound  int
	Kinds     []Kind // conjunto ordenado por primera aparición
}

// hasKind informa si k ya está en el conjunto de la fila.
func (r *Row) hasKind(k Kind) bool {
	for _, existing := range r.Kinds {
		if existing == k {
			return true
		}
	}
	return false
}

// Aggregator acumula eventos en filas por BucketKey. No es seguro para uso concurrente;
// se crea uno por petición y se descarta.
type Aggregator struct {
	granularity Granularity
	loc         *time.Location
	names       Names
	rows        map[BucketKey]*Row
	order       []BucketKey
}

// NewAggregator construye un agregador vacío. loc nil equivale a time.Local.
func NewAggregator(g Granularity, loc *time.Location, names Names) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		granularity: g,
		loc:         loc,
		names:       names,
		rows:        make(map[BucketKey]*Row),
	}
}

// Add incorpora un evento. Eventos con cantidad cero se ignoran por completo.
func (a *Aggregator) Add(e Event) {
	if e.SignedQuantity == 0 {
		return
	}
	key := BucketKey{
		ItemID:  e.ItemID,
		StockID: e.StockID,
		Bucket:  TruncateBucket(e.Timestamp, a.granularity, a.loc),
	}
	row, ok := a.rows[key]
	if !ok {
		row = &Row{
			ItemID:    e.ItemID,
			ItemName:  NameOf(a.names.Items, e.ItemID),
			StockID:   e.StockID,
			StockName: NameOf(a.names.Stocks, e.StockID),
			Bucket:    key.Bucket,
			Kinds:     make([]Kind, 0, 2),
		}
		a.rows[key] = row
		a.order = append(a.order, key)
	}

	if e.SignedQuantity > 0 {
		row.Inbound += e.SignedQuantity
	} else {
		row.Outbound += -e.SignedQuantity
	}
	if !row.hasKind(e.Kind) {
		row.Kinds = append(row.Kinds, e.Kind)
	}
}

// AddAll incorpora los eventos en orden.
func (a *Aggregator) AddAll(events []Event) {
	for _, e := range events {
		a.Add(e)
	}
}

// AddClassification incorpora los eventos de una clasificación.
func (a *Aggregator) AddClassification(c Classification) {
	for i := 0; i < c.n; i++ {
		a.Add(c.events[i])
	}
}

// Len número de filas distintas.
func (a *Aggregator) Len() int { return len(a.rows) }

// Rows devuelve copias de las filas en orden de primera aparición (sin ordenar para el reporte).
func (a *Aggregator) Rows() []Row {
	out := make([]Row, 0, len(a.order))
	for _, key := range a.order {
		r := *a.rows[key]
		r.Kinds = append([]Kind(nil), r.Kinds...)
		out = append(out, r)
	}
	return out
}
