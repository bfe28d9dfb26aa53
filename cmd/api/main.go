// @title           Movimentações API
// @version         1.0
// @description     Relatório de movimentações de estoque (transferências realizadas e agendadas).
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
// @description     Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/estoque-app/movimentacoes-api/docs"
	"github.com/estoque-app/movimentacoes-api/internal/application/report"
	infrapdf "github.com/estoque-app/movimentacoes-api/internal/infrastructure/pdf"
	"github.com/estoque-app/movimentacoes-api/internal/infrastructure/postgres"
	httpRouter "github.com/estoque-app/movimentacoes-api/internal/interfaces/http"
	"github.com/estoque-app/movimentacoes-api/pkg/config"
	"github.com/estoque-app/movimentacoes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET no configurado")
	}
	loc, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del reporte")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reportRepo := postgres.NewMovementReportRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	reportUC := report.NewMovementReportUseCase(reportRepo, report.Options{
		Location:      loc,
		DefaultWindow: cfg.Report.DefaultWindow(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Movimentações API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovementReport: reportUC,
		ReportPDF:      infrapdf.NewMovementReportPDF(cfg.App.Name),
		Permissions:    permissionRepo,
		DB:             pool,
		Log:            log,
		AppName:        cfg.App.Name,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
