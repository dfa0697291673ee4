package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// ProductInfoFilter filtro del catálogo. Con WarehouseID (y ZoneID) solo se devuelven
// entradas con al menos una unidad física en esa ubicación.
type ProductInfoFilter struct {
	CompanyID   string
	WarehouseID string
	ZoneID      string
	IDs         []string
}

// ProductInfoRepository define el puerto de persistencia para el catálogo.
type ProductInfoRepository interface {
	Lister[entity.ProductInfo, ProductInfoFilter]

	Create(ctx context.Context, info *entity.ProductInfo) error
	GetByID(ctx context.Context, companyID, id string) (*entity.ProductInfo, error)
	Update(ctx context.Context, info *entity.ProductInfo) error
}

// ProductFilter filtro de unidades físicas. EPCNumbers vacío = sin filtro por EPC.
type ProductFilter struct {
	CompanyID   string
	WarehouseID string
	EPCNumbers  []string
}

// BulkInsertResult resultado de una inserción por lotes: cuántos entraron y qué EPC ya existían.
type BulkInsertResult struct {
	Inserted   int
	Duplicates []string
}

// ProductRepository define el puerto de persistencia para Product (unidad con EPC).
type ProductRepository interface {
	Lister[entity.ProductDetail, ProductFilter]

	// CreateMany inserta los productos como una unidad: los EPC duplicados se omiten y se
	// reportan, y cualquier otro error deja la tabla sin cambios.
	CreateMany(ctx context.Context, products []*entity.Product) (BulkInsertResult, error)

	// FindDetailsByEPC devuelve el detalle (catálogo, proveedor, bodega, zona) de los EPC
	// de la empresa que existan. Los EPC desconocidos simplemente no aparecen.
	FindDetailsByEPC(ctx context.Context, companyID string, epcs []string) ([]*entity.ProductDetail, error)

	// AssignShipment marca como parte del envío los EPC de la empresa que no viajan en
	// otro envío y devuelve cuántos marcó.
	AssignShipment(ctx context.Context, companyID, shipmentID string, epcs []string) (int64, error)

	// MoveShipment reubica en warehouseID todos los productos del envío y limpia la referencia.
	MoveShipment(ctx context.Context, companyID, shipmentID, warehouseID string) (int64, error)
}
