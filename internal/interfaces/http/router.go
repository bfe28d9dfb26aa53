package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoque-app/movimentacoes-api/internal/application/report"
	"github.com/estoque-app/movimentacoes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementReport *report.MovementReportUseCase
	ReportPDF      reportPDFRenderer
	Permissions    permissionChecker
	DB             pinger
	Log            *logger.Logger
	AppName        string
	JWTSecret      string
	JWTIssuer      string
}

// Router registra middlewares comunes y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID())
	app.Use(RequestLogger(log))

	health := NewHealthHandler(deps.AppName, deps.DB)
	app.Get("/health", health.Live)
	app.Get("/health/db", health.DB)

	// Rutas protegidas (Bearer Token + permiso)
	mov := app.Group("/movimentacoes",
		AuthMiddleware(deps.JWTSecret, deps.JWTIssuer),
		RequirePermission(PermissionViewReports, deps.Permissions),
	)
	reportHandler := NewMovementReportHandler(deps.MovementReport, deps.ReportPDF, log)
	mov.Get("/relatorio", reportHandler.Get)
	mov.Get("/relatorio/pdf", reportHandler.GetPDF)
}
