package entity

import "time"

// Zone es una ubicación física dentro de una Warehouse.
// CompanyID se guarda de forma redundante para filtrar rápido: zone.warehouse.company == zone.company.
type Zone struct {
	ID          string
	CompanyID   string
	WarehouseID string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ProductCount solo se llena en listados.
	ProductCount int
}
