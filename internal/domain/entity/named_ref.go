package entity

// NamedRef par id → nombre legible, usado para resolver ítems y estoques en reportes.
type NamedRef struct {
	ID   int    `db:"id"`
	Name string `db:"nome"`
}
