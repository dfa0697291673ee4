package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// WarehouseFilter filtro de listado de bodegas. WarehouseID vacío = todas las de la empresa.
type WarehouseFilter struct {
	CompanyID   string
	WarehouseID string
}

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Lister[entity.Warehouse, WarehouseFilter]

	Create(ctx context.Context, warehouse *entity.Warehouse) error
	// GetByID busca la bodega dentro de la empresa; (nil, nil) si no existe.
	GetByID(ctx context.Context, companyID, id string) (*entity.Warehouse, error)
}

// ZoneFilter filtro de listado de zonas de una bodega.
type ZoneFilter struct {
	CompanyID   string
	WarehouseID string
}

// ZoneRepository define el puerto de persistencia para Zone.
type ZoneRepository interface {
	Lister[entity.Zone, ZoneFilter]

	Create(ctx context.Context, zone *entity.Zone) error
	// GetByID busca por (zona, empresa) sin restringir la bodega.
	GetByID(ctx context.Context, companyID, id string) (*entity.Zone, error)
	// GetInWarehouse busca por (zona, empresa, bodega).
	GetInWarehouse(ctx context.Context, companyID, warehouseID, id string) (*entity.Zone, error)
}
