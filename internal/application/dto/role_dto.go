package dto

import "time"

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Paths       []string `json:"paths"`
	Permissions []string `json:"permissions"`
	AllowUpdate bool     `json:"allow_update"`
}

// UpdateRoleRequest actualización parcial de un rol.
type UpdateRoleRequest struct {
	Paths       []string `json:"paths"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Paths       []string  `json:"paths"`
	Permissions []string  `json:"permissions"`
	AllowUpdate bool      `json:"allow_update"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
