package entity

import "time"

// Product es una unidad física identificada por su EPC, ubicada en exactamente un (company, warehouse, zone).
type Product struct {
	ID            string
	EPCNumber     string
	CompanyID     string
	WarehouseID   string
	ZoneID        string
	ProductInfoID string
	ShipmentID    string // vacío si no está en tránsito
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductDetail es un Product con su catálogo, proveedor, bodega y zona resueltos.
// Las relaciones pueden faltar (nil) si el registro referenciado ya no existe.
type ProductDetail struct {
	Product
	Info      *ProductInfo
	Vendor    *Vendor
	Warehouse *Warehouse
	Zone      *Zone
}
