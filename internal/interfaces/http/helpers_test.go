package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/estoque-app/movimentacoes-api/internal/application/report"
	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
	"github.com/estoque-app/movimentacoes-api/internal/domain/repository"
	"github.com/estoque-app/movimentacoes-api/internal/infrastructure/pdf"
	apphttp "github.com/estoque-app/movimentacoes-api/internal/interfaces/http"
	"github.com/estoque-app/movimentacoes-api/pkg/logger"
	pkgjwt "github.com/estoque-app/movimentacoes-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "estoque-app-test"
	testUserID    = 7
)

var (
	brt      = time.FixedZone("BRT", -3*60*60)
	fixedNow = time.Date(2025, 1, 10, 15, 30, 0, 0, brt)
	jan5     = time.Date(2025, 1, 5, 10, 0, 0, 0, brt)
)

// memRepo almacenamiento en memoria. Sin filtros de ventana: los tests usan datos dentro del período.
type memRepo struct {
	transfers []entity.Transfer
	scheduled []entity.ScheduledTransfer
	items     map[int]string
	stocks    map[int]string
	err       error
}

func (r *memRepo) FindTransfers(_ context.Context, f repository.TransferFilter) ([]entity.Transfer, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Transfer
	for _, t := range r.transfers {
		if f.StockID != nil && *f.StockID != t.OriginStockID && *f.StockID != t.DestStockID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memRepo) FindScheduledTransfers(_ context.Context, f repository.ScheduledTransferFilter) ([]entity.ScheduledTransfer, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.ScheduledTransfer
	for _, s := range r.scheduled {
		if s.Status != f.Status {
			continue
		}
		if f.StockID != nil && *f.StockID != s.OriginStockID && *f.StockID != s.DestStockID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func refs(m map[int]string, ids []int) []entity.NamedRef {
	var out []entity.NamedRef
	for _, id := range ids {
		if n, ok := m[id]; ok {
			out = append(out, entity.NamedRef{ID: id, Name: n})
		}
	}
	return out
}

func (r *memRepo) FindItemNames(_ context.Context, ids []int) ([]entity.NamedRef, error) {
	return refs(r.items, ids), nil
}

func (r *memRepo) FindStockNames(_ context.Context, ids []int) ([]entity.NamedRef, error) {
	return refs(r.stocks, ids), nil
}

func scenarioRepo() *memRepo {
	return &memRepo{
		transfers: []entity.Transfer{
			{ItemID: 1, OriginStockID: 10, DestStockID: 20, Quantity: 3, OccurredAt: jan5},
		},
		scheduled: []entity.ScheduledTransfer{
			{ItemID: 1, OriginStockID: 10, DestStockID: 30, Quantity: 4, ScheduledAt: jan5, Status: entity.ScheduledStatusPending},
		},
		items:  map[int]string{1: "Notebook Dell"},
		stocks: map[int]string{10: "Almoxarifado Central", 20: "Filial Norte", 30: "Filial Sul"},
	}
}

// permissions checker en memoria.
type permissions struct {
	granted map[int]bool
	err     error
}

func (p permissions) HasPermission(_ context.Context, userID int, permission string) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	return permission == apphttp.PermissionViewReports && p.granted[userID], nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var errDB = errors.New("conexão recusada")

// buildTestApp arma la app completa (middlewares + rutas) con colaboradores en memoria.
func buildTestApp(repo repository.MovementReportRepository, perms permissions) *fiber.App {
	app := fiber.New()
	uc := report.NewMovementReportUseCase(repo, report.Options{
		Location: brt,
		Now:      func() time.Time { return fixedNow },
	})
	apphttp.Router(app, apphttp.RouterDeps{
		MovementReport: uc,
		ReportPDF:      pdf.NewMovementReportPDF("test"),
		Permissions:    perms,
		DB:             pingFunc(func(context.Context) error { return nil }),
		Log:            logger.Nop(),
		AppName:        "movimentacoes-api",
		JWTSecret:      testJWTSecret,
		JWTIssuer:      testIssuer,
	})
	return app
}

func grantAll() permissions {
	return permissions{granted: map[int]bool{testUserID: true}}
}

func bearer(t *testing.T, userID int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, "gerente", testIssuer, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
