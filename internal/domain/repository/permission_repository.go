package repository

import "context"

// PermissionRepository consulta permisos de usuario (colaborador externo de autorización).
type PermissionRepository interface {
	// HasPermission devuelve false (sin error) si el usuario no tiene el permiso.
	// Solo devuelve error ante fallos de infraestructura.
	HasPermission(ctx context.Context, userID int, permission string) (bool, error)
}
