package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// permissionChecker es el contrato mínimo que necesita RequirePermission.
// Lo implementa *access.PermissionGate.
type permissionChecker interface {
	Authorize(ctx context.Context, companyID, roleName, path string) error
}

// scopeChecker lo implementa *access.ScopeResolver.
type scopeChecker interface {
	ResolveWarehouse(ctx context.Context, p access.Principal, warehouseID string) (*entity.Warehouse, error)
	ResolveZone(ctx context.Context, p access.Principal, zoneID string) (*entity.Zone, error)
}

// RequirePermission verifica que el rol del usuario tenga la plantilla de la ruta
// (ej. "/api/warehouses/:warehouseId") o "*". Debe usarse DESPUÉS de AuthMiddleware y
// registrarse en la propia ruta, no con Use, para que c.Route() sea la ruta final.
//
// Comportamiento:
//   - 401 si no hay Principal en el contexto.
//   - 403 si el rol no existe o no incluye la ruta.
//   - 502 si falla la consulta del rol.
func RequirePermission(gate permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := mustPrincipal(c)
		if err != nil {
			return err
		}
		if err := gate.Authorize(c.UserContext(), p.CompanyID, p.Role, c.Route().Path); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireWarehouse resuelve la bodega que entrega from dentro del alcance del usuario y
// la deja en LocalWarehouse para el handler.
func RequireWarehouse(scope scopeChecker, from func(*fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := mustPrincipal(c)
		if err != nil {
			return err
		}
		w, err := scope.ResolveWarehouse(c.UserContext(), p, from(c))
		if err != nil {
			return err
		}
		c.Locals(LocalWarehouse, w)
		return c.Next()
	}
}

// RequireZone resuelve la zona que entrega from y la deja en LocalZone. Su WarehouseID es
// la bodega que deben usar los pasos siguientes.
func RequireZone(scope scopeChecker, from func(*fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := mustPrincipal(c)
		if err != nil {
			return err
		}
		z, err := scope.ResolveZone(c.UserContext(), p, from(c))
		if err != nil {
			return err
		}
		c.Locals(LocalZone, z)
		return c.Next()
	}
}

// ResolvedWarehouse bodega que dejó RequireWarehouse.
func ResolvedWarehouse(c *fiber.Ctx) (*entity.Warehouse, bool) {
	w, ok := c.Locals(LocalWarehouse).(*entity.Warehouse)
	return w, ok && w != nil
}

// ResolvedZone zona que dejó RequireZone.
func ResolvedZone(c *fiber.Ctx) (*entity.Zone, bool) {
	z, ok := c.Locals(LocalZone).(*entity.Zone)
	return z, ok && z != nil
}

// mustWarehouse una ruta sin RequireWarehouse es un error de cableado, no del cliente.
func mustWarehouse(c *fiber.Ctx) (*entity.Warehouse, error) {
	w, ok := ResolvedWarehouse(c)
	if !ok {
		return nil, &domain.Error{Kind: domain.KindInternal, Message: "Internal server error",
			Log: "route " + c.Route().Path + " has no RequireWarehouse"}
	}
	return w, nil
}

func mustZone(c *fiber.Ctx) (*entity.Zone, error) {
	z, ok := ResolvedZone(c)
	if !ok {
		return nil, &domain.Error{Kind: domain.KindInternal, Message: "Internal server error",
			Log: "route " + c.Route().Path + " has no RequireZone"}
	}
	return z, nil
}

// Param lee un parámetro de ruta.
func Param(name string) func(*fiber.Ctx) string {
	return func(c *fiber.Ctx) string { return c.Params(name) }
}
