package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

// ScopeResolver aplica el alcance por sucursal. Un usuario de bodega solo ve su bodega;
// un usuario de empresa ve todas (las consultas siguen filtrando por empresa).
type ScopeResolver struct {
	warehouses repository.WarehouseRepository
	zones      repository.ZoneRepository
}

// NewScopeResolver construye el resolver de alcance.
func NewScopeResolver(warehouses repository.WarehouseRepository, zones repository.ZoneRepository) *ScopeResolver {
	return &ScopeResolver{warehouses: warehouses, zones: zones}
}

// Authorize verifica que p pueda operar sobre branchID.
func (s *ScopeResolver) Authorize(p Principal, branchID string) error {
	err := p.Branch.Match(
		func(string) error { return nil },
		func(warehouseID string) error {
			if warehouseID != branchID {
				return domain.NewForbidden("Invalid warehouse",
					fmt.Sprintf("user %s bound to warehouse %s requested %s", p.UserID, warehouseID, branchID))
			}
			return nil
		},
	)
	return branchError(p, err)
}

// ResolveWarehouse valida el alcance y que la bodega exista dentro de la empresa.
func (s *ScopeResolver) ResolveWarehouse(ctx context.Context, p Principal, warehouseID string) (*entity.Warehouse, error) {
	if err := s.Authorize(p, warehouseID); err != nil {
		return nil, err
	}
	w, err := s.warehouses.GetByID(ctx, p.CompanyID, warehouseID)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Failed to get warehouse.",
			fmt.Sprintf("warehouse lookup failed for company %s warehouse %s", p.CompanyID, warehouseID))
	}
	if w == nil {
		return nil, domain.NewNotFound("Warehouse not found")
	}
	return w, nil
}

// ResolveZone busca la zona según la sucursal del usuario:
//   - bodega W: (zona, empresa, W)
//   - empresa: (zona, empresa), y se confía en la bodega propia de la zona.
//
// La bodega devuelta en zone.WarehouseID es la que deben usar los pasos siguientes.
func (s *ScopeResolver) ResolveZone(ctx context.Context, p Principal, zoneID string) (*entity.Zone, error) {
	var zone *entity.Zone
	err := p.Branch.Match(
		func(string) error {
			z, err := s.zones.GetByID(ctx, p.CompanyID, zoneID)
			zone = z
			return err
		},
		func(warehouseID string) error {
			z, err := s.zones.GetInWarehouse(ctx, p.CompanyID, warehouseID, zoneID)
			zone = z
			return err
		},
	)
	if errors.Is(err, entity.ErrInvalidBranch) {
		return nil, branchError(p, err)
	}
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Failed to get zone.",
			fmt.Sprintf("zone lookup failed for company %s zone %s", p.CompanyID, zoneID))
	}
	if zone == nil {
		return nil, domain.NewNotFound("Zone not found")
	}
	return zone, nil
}

// WarehouseFilter bodega que deben agregar los listados: la del usuario si es de bodega,
// vacío si es de empresa.
func (s *ScopeResolver) WarehouseFilter(p Principal) (string, error) {
	var warehouseID string
	err := p.Branch.Match(
		func(string) error { return nil },
		func(id string) error { warehouseID = id; return nil },
	)
	if err != nil {
		return "", branchError(p, err)
	}
	return warehouseID, nil
}

func branchError(p Principal, err error) error {
	if errors.Is(err, entity.ErrInvalidBranch) {
		return domain.NewForbidden("Forbidden",
			fmt.Sprintf("user %s has an invalid branch %s", p.UserID, p.Branch))
	}
	return err
}
