package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name           string `json:"name"`
	MainPersonName string `json:"main_person_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	Name           string    `json:"name"`
	MainPersonName string    `json:"main_person_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"company_id"`
	WarehouseID        string    `json:"warehouse_id"`
	QuantityOfProducts int       `json:"quantity_of_products"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
