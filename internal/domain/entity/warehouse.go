package entity

import "time"

// Warehouse representa una bodega de una Company. Nunca se borra en cascada.
type Warehouse struct {
	ID             string
	CompanyID      string
	Name           string
	MainPersonName string
	Email          string
	Phone          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
