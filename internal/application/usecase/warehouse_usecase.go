package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// WarehouseUseCase bodegas y sus zonas.
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository
	zones      repository.ZoneRepository
	scope      *access.ScopeResolver
	log        *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouses repository.WarehouseRepository, zones repository.ZoneRepository, scope *access.ScopeResolver, log *logger.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{warehouses: warehouses, zones: zones, scope: scope, log: log.Component("warehouse")}
}

// Create solo un usuario de empresa puede abrir bodegas.
func (uc *WarehouseUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := requireCompanyScope(p, "create warehouses"); err != nil {
		return nil, err
	}
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:             uuid.New().String(),
		CompanyID:      p.CompanyID,
		Name:           in.Name,
		MainPersonName: in.MainPersonName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.warehouses.Create(ctx, w); err != nil {
		return nil, upstream(err, "Failed to create warehouse.", "warehouse insert failed for company %s", p.CompanyID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("warehouse_id", w.ID).Msg("warehouse created")
	out := dto.FromWarehouse(w)
	return &out, nil
}

// List un usuario de bodega solo ve la suya.
func (uc *WarehouseUseCase) List(ctx context.Context, p access.Principal, page pagination.Page) ([]dto.WarehouseResponse, error) {
	warehouseID, err := uc.scope.WarehouseFilter(p)
	if err != nil {
		return nil, err
	}
	items, err := uc.warehouses.List(ctx, repository.WarehouseFilter{CompanyID: p.CompanyID, WarehouseID: warehouseID}, page)
	if err != nil {
		return nil, upstream(err, "Failed to list warehouses.", "warehouse list failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromWarehouse), nil
}

// Get la bodega ya viene resuelta por el resolver de alcance (RequireWarehouse).
func (uc *WarehouseUseCase) Get(w *entity.Warehouse) *dto.WarehouseResponse {
	out := dto.FromWarehouse(w)
	return &out
}

// CreateZone agrega una zona a una bodega ya resuelta dentro del alcance del usuario.
func (uc *WarehouseUseCase) CreateZone(ctx context.Context, p access.Principal, w *entity.Warehouse) (*dto.ZoneResponse, error) {
	now := time.Now()
	z := &entity.Zone{
		ID:          uuid.New().String(),
		CompanyID:   p.CompanyID,
		WarehouseID: w.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.zones.Create(ctx, z); err != nil {
		return nil, upstream(err, "Failed to create zone.", "zone insert failed for warehouse %s", w.ID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("warehouse_id", w.ID).Str("zone_id", z.ID).Msg("zone created")
	out := dto.FromZone(z)
	return &out, nil
}

// ListZones zonas de la bodega resuelta con su cantidad de productos.
func (uc *WarehouseUseCase) ListZones(ctx context.Context, p access.Principal, w *entity.Warehouse, page pagination.Page) ([]dto.ZoneResponse, error) {
	items, err := uc.zones.List(ctx, repository.ZoneFilter{CompanyID: p.CompanyID, WarehouseID: w.ID}, page)
	if err != nil {
		return nil, upstream(err, "Failed to list zones.", "zone list failed for warehouse %s", w.ID)
	}
	return dto.MapAll(items, dto.FromZone), nil
}

// GetZone bodega y zona llegan resueltas; la zona debe pertenecer a esa bodega.
func (uc *WarehouseUseCase) GetZone(w *entity.Warehouse, z *entity.Zone) (*dto.ZoneResponse, error) {
	if z.WarehouseID != w.ID {
		return nil, domain.NewNotFound("Zone not found")
	}
	out := dto.FromZone(z)
	return &out, nil
}
