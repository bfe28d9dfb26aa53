package movement

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultCollation idioma usado para comparar nombres en los reportes.
var DefaultCollation = language.BrazilianPortuguese

// SortRows ordena in-place por bucket (ancho fijo: orden lexicográfico = cronológico),
// nombre del ítem y nombre del estoque, estos dos con comparación sensible al idioma.
// itemId y stockId desempatan filas con nombres idénticos, así el orden es total
// y no depende del orden de entrada.
func SortRows(rows []Row, tag language.Tag) {
	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	c := collate.New(tag)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Bucket != b.Bucket {
			return a.Bucket < b.Bucket
		}
		if cmp := c.CompareString(a.ItemName, b.ItemName); cmp != 0 {
			return cmp < 0
		}
		if cmp := c.CompareString(a.StockName, b.StockName); cmp != 0 {
			return cmp < 0
		}
		if a.ItemID != b.ItemID {
			return a.ItemID < b.ItemID
		}
		return a.StockID < b.StockID
	})
}
