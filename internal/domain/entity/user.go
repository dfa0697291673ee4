package entity

import "time"

// User pertenece a una Company, tiene una sola referencia de sucursal y un nombre de rol
// que se resuelve contra Role en cada petición (no se cachea).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Branch       BranchRef
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
