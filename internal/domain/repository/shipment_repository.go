package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// ShipmentFilter filtro de listado. WarehouseID limita a envíos con origen o destino en esa bodega.
type ShipmentFilter struct {
	CompanyID   string
	WarehouseID string
	Status      string
}

// ShipmentRepository define el puerto de persistencia para Shipment y ShipmentProduct.
type ShipmentRepository interface {
	Lister[entity.Shipment, ShipmentFilter]

	Create(ctx context.Context, shipment *entity.Shipment) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Shipment, error)
	// Update persiste destino y fecha programada.
	Update(ctx context.Context, shipment *entity.Shipment) error
	UpdateStatus(ctx context.Context, companyID, id, status string) error
	AddProducts(ctx context.Context, items []*entity.ShipmentProduct) (BulkInsertResult, error)
}
