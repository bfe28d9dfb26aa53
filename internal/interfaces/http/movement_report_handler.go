package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
	"github.com/estoque-app/movimentacoes-api/internal/application/report"
	"github.com/estoque-app/movimentacoes-api/internal/domain"
	"github.com/estoque-app/movimentacoes-api/pkg/logger"
)

// MsgReportFailed mensaje genérico para cualquier fallo que no sea de validación.
const MsgReportFailed = "Erro ao gerar relatório de movimentações"

// reportPDFRenderer lo implementa *pdf.MovementReportPDF.
type reportPDFRenderer interface {
	RenderMovementReport(ctx context.Context, rep *dto.MovementReportResponse) ([]byte, error)
}

// MovementReportHandler maneja los endpoints del reporte de movimientos.
type MovementReportHandler struct {
	uc  *report.MovementReportUseCase
	pdf reportPDFRenderer
	log *logger.Logger
}

// NewMovementReportHandler construye el handler.
func NewMovementReportHandler(uc *report.MovementReportUseCase, pdf reportPDFRenderer, log *logger.Logger) *MovementReportHandler {
	return &MovementReportHandler{uc: uc, pdf: pdf, log: log}
}

// Get godoc
// @Summary      Relatório de movimentações por item, estoque e período
// @Description  Combina transferências realizadas e agendadas (PENDING) e agrega entradas/saídas
//               por item, estoque e bucket (dia ou hora). Sem estoqueId cada transferência conta
//               nos dois estoques. Requer a permissão 'relatorios:visualizar'.
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        inicio       query  string  false  "Início (ISO 8601 ou YYYY-MM-DD). Default: fim - 7 dias."
// @Param        fim          query  string  false  "Fim (ISO 8601 ou YYYY-MM-DD). Default: agora."
// @Param        itemId       query  int     false  "Filtra por item."
// @Param        estoqueId    query  int     false  "Filtra por estoque (origem ou destino)."
// @Param        granularity  query  string  false  "day | hour (default day)."
// @Success      200  {object}  dto.MovementReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /movimentacoes/relatorio [get]
func (h *MovementReportHandler) Get(c *fiber.Ctx) error {
	rep, err := h.generate(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rep)
}

// GetPDF godoc
// @Summary      Relatório de movimentações em PDF
// @Description  Mesmos parâmetros e erros de /movimentacoes/relatorio; responde application/pdf.
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      application/pdf
// @Param        inicio       query  string  false  "Início (ISO 8601 ou YYYY-MM-DD)."
// @Param        fim          query  string  false  "Fim (ISO 8601 ou YYYY-MM-DD)."
// @Param        itemId       query  int     false  "Filtra por item."
// @Param        estoqueId    query  int     false  "Filtra por estoque."
// @Param        granularity  query  string  false  "day | hour."
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /movimentacoes/relatorio/pdf [get]
func (h *MovementReportHandler) GetPDF(c *fiber.Ctx) error {
	rep, err := h.generate(c)
	if err != nil {
		return h.fail(c, err)
	}
	doc, err := h.pdf.RenderMovementReport(c.Context(), rep)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-movimentacoes.pdf"`)
	return c.Send(doc)
}

func (h *MovementReportHandler) generate(c *fiber.Ctx) (*dto.MovementReportResponse, error) {
	var q dto.MovementReportQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, domain.NewValidationError(report.MsgInvalidDates)
	}
	return h.uc.Generate(c.Context(), q)
}

// fail: validación → 400 con el mensaje tal cual; cualquier otro error → 500 genérico y log.
func (h *MovementReportHandler) fail(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Message})
	}
	h.log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Int("user_id", GetUserID(c)).
		Str("query", string(c.Request().URI().QueryString())).
		Msg("relatorio de movimentacoes")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: MsgReportFailed})
}
