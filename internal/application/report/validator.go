package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
	"github.com/estoque-app/movimentacoes-api/internal/domain"
	"github.com/estoque-app/movimentacoes-api/internal/domain/movement"
)

// Mensajes de validación. Los clientes dependen del texto exacto.
const (
	MsgInvalidDates   = "inicio/fim inválidos. Use ISO 8601 ou YYYY-MM-DD."
	MsgEndBeforeStart = "fim deve ser maior que inicio."
	MsgInvalidIDs     = "itemId/estoqueId devem ser números inteiros."
)

const defaultWindow = 7 * 24 * time.Hour

// Window ventana de consulta ya validada y con valores por defecto aplicados.
type Window struct {
	Start       time.Time
	End         time.Time
	Granularity movement.Granularity
	ItemID      *int
	StockID     *int
}

// ValidateQuery aplica valores por defecto y valida la consulta del reporte:
//   - granularity desconocida → day (nunca falla por este campo).
//   - fim ausente → now; inicio ausente → fim - window.
//   - inicio/fim enviados pero no interpretables → ValidationError.
//   - fim <= inicio → ValidationError.
//   - itemId/estoqueId no enteros → ValidationError.
func ValidateQuery(q dto.MovementReportQuery, opts Options) (Window, error) {
	opts = opts.withDefaults()

	w := Window{Granularity: movement.ParseGranularity(q.Granularity)}

	end, endOK := movement.ParseDateLoose(q.Fim, opts.Location)
	if !endOK {
		if strings.TrimSpace(q.Fim) != "" {
			return Window{}, domain.NewValidationError(MsgInvalidDates)
		}
		end = opts.Now().In(opts.Location)
	}
	start, startOK := movement.ParseDateLoose(q.Inicio, opts.Location)
	if !startOK {
		if strings.TrimSpace(q.Inicio) != "" {
			return Window{}, domain.NewValidationError(MsgInvalidDates)
		}
		start = end.Add(-opts.DefaultWindow)
	}
	if !end.After(start) {
		return Window{}, domain.NewValidationError(MsgEndBeforeStart)
	}
	w.Start, w.End = start, end

	var err error
	if w.ItemID, err = optionalInt(q.ItemID); err != nil {
		return Window{}, err
	}
	if w.StockID, err = optionalInt(q.EstoqueID); err != nil {
		return Window{}, err
	}
	return w, nil
}

func optionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, domain.NewValidationError(MsgInvalidIDs)
	}
	return &n, nil
}
