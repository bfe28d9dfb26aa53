package report

import (
	"time"

	"golang.org/x/text/language"

	"github.com/estoque-app/movimentacoes-api/internal/domain/movement"
)

// Options parámetros del reporte. Los valores cero toman los defaults.
type Options struct {
	// Location zona usada para leer fechas sin offset y para truncar buckets.
	Location *time.Location
	// DefaultWindow duración de la ventana cuando no se envía inicio.
	DefaultWindow time.Duration
	// Collation idioma para ordenar nombres.
	Collation language.Tag
	// Now reloj inyectable para tests.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.DefaultWindow <= 0 {
		o.DefaultWindow = defaultWindow
	}
	if o.Collation == language.Und {
		o.Collation = movement.DefaultCollation
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
