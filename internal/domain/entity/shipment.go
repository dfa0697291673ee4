package entity

import "time"

// Estados de Shipment, en orden.
const (
	ShipmentReadyToShip = "ready to ship"
	ShipmentOutbound    = "outbound"
	ShipmentInbound     = "inbound"
	ShipmentCompleted   = "completed"
)

// ValidShipmentStatus indica si s es un estado conocido.
func ValidShipmentStatus(s string) bool {
	switch s {
	case ShipmentReadyToShip, ShipmentOutbound, ShipmentInbound, ShipmentCompleted:
		return true
	}
	return false
}

// Shipment mueve productos etiquetados entre dos bodegas de la misma empresa.
type Shipment struct {
	ID                     string
	CompanyID              string
	WarehouseID            string
	DestinationWarehouseID string
	Status                 string
	Schedule               time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// ProductCount solo se llena en listados.
	ProductCount int
}

// ShipmentProduct EPC incluido en un envío.
type ShipmentProduct struct {
	ID         string
	ShipmentID string
	EPCNumber  string
	CreatedAt  time.Time
}
