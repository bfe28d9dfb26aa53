package movement

import (
	"strconv"

	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
)

// Names instantánea de solo lectura de nombres por id, construida una vez por petición.
type Names struct {
	Items  map[int]string
	Stocks map[int]string
}

// NameIndex convierte el resultado de una búsqueda de nombres en un mapa id → nombre.
func NameIndex(refs []entity.NamedRef) map[int]string {
	m := make(map[int]string, len(refs))
	for _, r := range refs {
		m[r.ID] = r.Name
	}
	return m
}

// NameOf devuelve el nombre de id o el marcador "#<id>" si no se resolvió.
func NameOf(m map[int]string, id int) string {
	if name, ok := m[id]; ok {
		return name
	}
	return "#" + strconv.Itoa(id)
}
