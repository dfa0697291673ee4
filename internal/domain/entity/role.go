package entity

import "time"

// WildcardPath concede acceso a cualquier ruta.
const WildcardPath = "*"

// Nombres de rol reservados.
const (
	RoleAdmin   = "admin"
	RoleDefault = "default" // plantilla global (sin company)
)

// Role conjunto de rutas/permisos con nombre, por empresa.
type Role struct {
	ID          string
	CompanyID   string // vacío = rol global
	Name        string
	Paths       []string
	Permissions []string
	AllowUpdate bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllowsPath aplica la regla de la puerta de permisos: comodín o coincidencia exacta.
func (r *Role) AllowsPath(path string) bool {
	for _, p := range r.Paths {
		if p == WildcardPath || p == path {
			return true
		}
	}
	return false
}
