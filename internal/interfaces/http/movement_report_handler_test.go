package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
	apphttp "github.com/estoque-app/movimentacoes-api/internal/interfaces/http"
)

func decodeReport(t *testing.T, resp *http.Response) dto.MovementReportResponse {
	t.Helper()
	var out dto.MovementReportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeError(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /movimentacoes/relatorio
// ──────────────────────────────────────────────────────────────────────────────

func TestRelatorio_SemFiltro(t *testing.T) {
	app := buildTestApp(scenarioRepo(), grantAll())

	resp := doGet(t, app, "/movimentacoes/relatorio?inicio=2025-01-01&fim=2025-01-08", bearer(t, testUserID))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeReport(t, resp)
	assert.Equal(t, "2025-01-01T03:00:00.000Z", out.Periodo.Inicio)
	assert.Equal(t, "2025-01-08T03:00:00.000Z", out.Periodo.Fim)
	assert.Equal(t, "day", out.Periodo.Granularity)
	assert.Nil(t, out.Filtros.ItemID)
	assert.Nil(t, out.Filtros.EstoqueID)

	require.Len(t, out.Linhas, 3)
	assert.Equal(t, dto.MovementRowDTO{
		ItemID: 1, ItemNome: "Notebook Dell", EstoqueID: 10, EstoqueNome: "Almoxarifado Central",
		Bucket: "2025-01-05", Entradas: 0, Saidas: 7, Tipos: []string{"TRANSFER_OUT", "SCHEDULED_OUT"},
	}, out.Linhas[0])
	assert.Equal(t, 3, out.Linhas[1].Entradas)
	assert.Equal(t, 4, out.Linhas[2].Entradas)
}

func TestRelatorio_FiltroEstoque(t *testing.T) {
	app := buildTestApp(scenarioRepo(), grantAll())

	resp := doGet(t, app, "/movimentacoes/relatorio?inicio=2025-01-01&fim=2025-01-08&estoqueId=10", bearer(t, testUserID))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeReport(t, resp)
	require.NotNil(t, out.Filtros.EstoqueID)
	assert.Equal(t, 10, *out.Filtros.EstoqueID)
	require.Len(t, out.Linhas, 1)
	assert.Equal(t, 10, out.Linhas[0].EstoqueID)
	assert.Equal(t, 7, out.Linhas[0].Saidas)
}

func TestRelatorio_SemMovimentacoes(t *testing.T) {
	app := buildTestApp(&memRepo{}, grantAll())

	resp := doGet(t, app, "/movimentacoes/relatorio", bearer(t, testUserID))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"linhas":[]`)
	assert.Contains(t, string(body), `"inicio":"2025-01-03T18:30:00.000Z"`)
	assert.Contains(t, string(body), `"fim":"2025-01-10T18:30:00.000Z"`)
}

func TestRelatorio_ErrosDeValidacao(t *testing.T) {
	app := buildTestApp(scenarioRepo(), grantAll())

	tests := []struct {
		name, query, msg string
	}{
		{"inicio inválido", "?inicio=abc", "inicio/fim inválidos. Use ISO 8601 ou YYYY-MM-DD."},
		{"fim inválido", "?fim=ontem", "inicio/fim inválidos. Use ISO 8601 ou YYYY-MM-DD."},
		{"fim igual a inicio", "?inicio=2025-01-05&fim=2025-01-05", "fim deve ser maior que inicio."},
		{"fim antes de inicio", "?inicio=2025-01-06&fim=2025-01-05", "fim deve ser maior que inicio."},
		{"itemId não numérico", "?itemId=abc", "itemId/estoqueId devem ser números inteiros."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, app, "/movimentacoes/relatorio"+tt.query, bearer(t, testUserID))
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.msg, decodeError(t, resp)["error"])
		})
	}
}

func TestRelatorio_FalhaDeArmazenamento_Retorna500(t *testing.T) {
	app := buildTestApp(&memRepo{err: errDB}, grantAll())

	resp := doGet(t, app, "/movimentacoes/relatorio", bearer(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, apphttp.MsgReportFailed, body["error"])
	assert.NotContains(t, body["error"], errDB.Error(), "el detalle no llega al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /movimentacoes/relatorio/pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestRelatorioPDF(t *testing.T) {
	app := buildTestApp(scenarioRepo(), grantAll())

	resp := doGet(t, app, "/movimentacoes/relatorio/pdf?inicio=2025-01-01&fim=2025-01-08", bearer(t, testUserID))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio-movimentacoes.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRelatorioPDF_ValidacaoIgualAoJSON(t *testing.T) {
	app := buildTestApp(scenarioRepo(), grantAll())

	resp := doGet(t, app, "/movimentacoes/relatorio/pdf?inicio=2025-01-05&fim=2025-01-05", bearer(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "fim deve ser maior que inicio.", decodeError(t, resp)["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(scenarioRepo(), grantAll())

	resp := doGet(t, app, "/health", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "movimentacoes-api", decodeError(t, resp)["service"])

	resp = doGet(t, app, "/health/db", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthDB_Caido(t *testing.T) {
	h := apphttp.NewHealthHandler("svc", pingFunc(func(context.Context) error { return errDB }))
	app := fiber.New()
	app.Get("/health/db", h.DB)

	resp := doGet(t, app, "/health/db", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "down", decodeError(t, resp)["status"])
}
