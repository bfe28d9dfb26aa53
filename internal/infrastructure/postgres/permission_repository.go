package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/estoque-app/movimentacoes-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo consulta los permisos por usuario (tabla usuario_permissoes).
type PermissionRepo struct {
	db      Querier
	builder squirrel.StatementBuilderType
}

// NewPermissionRepository construye el adaptador de permisos.
func NewPermissionRepository(db Querier) *PermissionRepo {
	return &PermissionRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PermissionRepo) buildHasPermissionQuery(userID int, permission string) squirrel.SelectBuilder {
	return r.builder.
		Select("COUNT(*) > 0").
		From("usuario_permissoes").
		Where(squirrel.Eq{"usuario_id": userID}).
		Where(squirrel.Eq{"permissao": permission})
}

// HasPermission indica si el usuario tiene el permiso indicado.
func (r *PermissionRepo) HasPermission(ctx context.Context, userID int, permission string) (bool, error) {
	sql, args, err := r.buildHasPermissionQuery(userID, permission).ToSql()
	if err != nil {
		return false, fmt.Errorf("build permiso: %w", err)
	}
	var ok bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("consultar permiso: %w", err)
	}
	return ok, nil
}
