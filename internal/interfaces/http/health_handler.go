package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// pinger lo implementa *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler endpoints de salud.
type HealthHandler struct {
	service string
	db      pinger
}

// NewHealthHandler construye el handler. db puede ser nil (entonces /health/db responde 503).
func NewHealthHandler(service string, db pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db}
}

// Live godoc
// @Summary  Estado del servicio
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// DB godoc
// @Summary  Conectividad con PostgreSQL
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health/db [get]
func (h *HealthHandler) DB(c *fiber.Ctx) error {
	if h.db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
	}
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
