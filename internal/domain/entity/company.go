package entity

import "time"

// Company representa una organización/tenant del sistema; raíz de propiedad de todos los datos.
type Company struct {
	ID           string
	BrandName    string
	Organization string
	GSTIN        string
	Phone        string
	Email        string
	Address      string
	AdminID      string // vacío hasta que se crea el usuario administrador
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
