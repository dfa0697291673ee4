package entity

import "time"

// Audit es una expectativa de inventario: el conjunto de EPC que deberían estar en una bodega.
// Se crea una vez por staging y no se modifica después.
type Audit struct {
	UUID        string
	CompanyID   string
	WarehouseID string
	EPCNumbers  []string
	CreatedAt   time.Time
}
