package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-app/movimentacoes-api/internal/application/dto"
)

// PermissionViewReports permiso necesario para consultar reportes de movimientos.
const PermissionViewReports = "relatorios:visualizar"

// permissionChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *postgres.PermissionRepo.
type permissionChecker interface {
	HasPermission(ctx context.Context, userID int, permission string) (bool, error)
}

// RequirePermission devuelve un middleware Fiber que verifica si el usuario del token tiene
// el permiso indicado. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 Unauthorized → no hay usuario en el contexto.
//   - 403 Forbidden → el usuario no tiene el permiso.
//   - 503 Service Unavailable → fallo al consultar los permisos.
func RequirePermission(permission string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:  "UNAUTHORIZED",
				Error: "Usuário não autenticado.",
			})
		}

		ok, err := checker.HasPermission(c.Context(), userID, permission)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:  "PERMISSION_CHECK_FAILED",
				Error: "Não foi possível verificar as permissões. Tente novamente.",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:  "FORBIDDEN",
				Error: "Permissão '" + permission + "' necessária.",
			})
		}

		return c.Next()
	}
}
