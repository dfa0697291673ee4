package access

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

// PermissionGate decide si un rol puede invocar una ruta. No tiene efectos secundarios.
type PermissionGate struct {
	roles repository.RoleRepository
}

// NewPermissionGate construye la puerta de permisos.
func NewPermissionGate(roles repository.RoleRepository) *PermissionGate {
	return &PermissionGate{roles: roles}
}

// Authorize carga el rol (empresa, nombre) y exige "*" o la ruta exacta en sus paths.
// No hay coincidencia por prefijo ni patrón.
func (g *PermissionGate) Authorize(ctx context.Context, companyID, roleName, path string) error {
	role, err := g.roles.GetByName(ctx, companyID, roleName)
	if err != nil {
		return domain.Wrap(err, domain.KindUpstream, "Authorization failed.",
			fmt.Sprintf("role lookup failed for company %s role %s", companyID, roleName))
	}
	if role == nil {
		return domain.NewForbidden("Forbidden", fmt.Sprintf("role not found: company %s role %q", companyID, roleName))
	}
	if !role.AllowsPath(path) {
		return domain.NewForbidden("Forbidden", fmt.Sprintf("role %q cannot access %s", roleName, path))
	}
	return nil
}
