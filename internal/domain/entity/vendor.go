package entity

import "time"

// Vendor proveedor de una Company, opcionalmente asociado a ProductInfo.
type Vendor struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
