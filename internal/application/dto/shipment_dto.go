package dto

import "time"

// CreateShipmentRequest entrada para crear un envío desde la bodega origen.
type CreateShipmentRequest struct {
	WarehouseID            string    `json:"warehouse_id"`
	DestinationWarehouseID string    `json:"destination_warehouse_id"`
	Schedule               time.Time `json:"schedule"`
}

// UpdateShipmentRequest cambia destino y/o fecha programada.
type UpdateShipmentRequest struct {
	DestinationWarehouseID *string    `json:"destination_warehouse_id"`
	Schedule               *time.Time `json:"schedule"`
}

// UpdateShipmentStatusRequest transición de estado.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// ShipmentListQuery filtros del listado de envíos.
type ShipmentListQuery struct {
	Status string `query:"status"`
}

// ShipmentResponse salida de un envío.
type ShipmentResponse struct {
	ID                     string    `json:"id"`
	CompanyID              string    `json:"company_id"`
	WarehouseID            string    `json:"warehouse_id"`
	DestinationWarehouseID string    `json:"destination_warehouse_id"`
	Status                 string    `json:"status"`
	Schedule               time.Time `json:"schedule"`
	ProductCount           int       `json:"product_count"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ShipmentStatusResponse resultado de una transición; Moved solo se llena al completar.
type ShipmentStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Moved   int64  `json:"moved"`
}
