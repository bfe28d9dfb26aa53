package dto

// MovementReportQuery parámetros de GET /movimentacoes/relatorio.
// Se reciben como string para poder distinguir "ausente" de "inválido".
type MovementReportQuery struct {
	ItemID      string `query:"itemId"`
	EstoqueID   string `query:"estoqueId"`
	Inicio      string `query:"inicio"`      // ISO 8601 o YYYY-MM-DD; por defecto fim - 7 días
	Fim         string `query:"fim"`         // ISO 8601 o YYYY-MM-DD; por defecto ahora
	Granularity string `query:"granularity"` // day | hour (default day)
}

// PeriodoDTO ventana efectiva del reporte.
type PeriodoDTO struct {
	Inicio      string `json:"inicio"` // ISO 8601 UTC
	Fim         string `json:"fim"`
	Granularity string `json:"granularity"`
}

// FiltrosDTO filtros opcionales ya resueltos (null si no se enviaron).
type FiltrosDTO struct {
	ItemID    *int `json:"itemId"`
	EstoqueID *int `json:"estoqueId"`
}

// MovementRowDTO fila agregada por (ítem, estoque, bucket).
type MovementRowDTO struct {
	ItemID      int      `json:"itemId"`
	ItemNome    string   `json:"itemNome"`
	EstoqueID   int      `json:"estoqueId"`
	EstoqueNome string   `json:"estoqueNome"`
	Bucket      string   `json:"bucket"`
	Entradas    int      `json:"entradas"`
	Saidas      int      `json:"saidas"`
	Tipos       []string `json:"tipos"` // TRANSFER_OUT | TRANSFER_IN | SCHEDULED_OUT | SCHEDULED_IN, en orden de aparición
}

// MovementReportResponse respuesta de GET /movimentacoes/relatorio.
type MovementReportResponse struct {
	Periodo PeriodoDTO       `json:"periodo"`
	Filtros FiltrosDTO       `json:"filtros"`
	Linhas  []MovementRowDTO `json:"linhas"` // nunca null; [] si no hay movimientos
}
