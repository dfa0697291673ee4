package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	BranchPath string `json:"branch_path"` // Company | Warehouse
	BranchID   string `json:"branch_id"`
	Role       string `json:"role"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	BranchPath string    `json:"branch_path"`
	BranchID   string    `json:"branch_id"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListQuery filtros del listado de usuarios.
type UserListQuery struct {
	Role       string `query:"role"`
	BranchPath string `query:"branch_path"`
	BranchID   string `query:"branch_id"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UpdateUserRequest solo se aplican los campos presentes. La sucursal cambia solo si
// llegan branch_path y branch_id juntos.
type UpdateUserRequest struct {
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	BranchPath *string `json:"branch_path"`
	BranchID   *string `json:"branch_id"`
	Role       *string `json:"role"`
}

// RegisterUsersRequest alta masiva en JSON; password vacío se genera.
type RegisterUsersRequest struct {
	Users []CreateUserRequest `json:"users"`
}

// RegisterUsersCSVRequest alta masiva con el CSV en el cuerpo (columnas email, phone,
// password, branch_path, branch_id, role).
type RegisterUsersCSVRequest struct {
	Text string `json:"text"`
}

// RegisteredUser usuario creado; Password solo viene cuando se generó.
type RegisteredUser struct {
	UserResponse
	Password string `json:"password,omitempty"`
}

// RegisterUsersResponse resultado del alta masiva.
type RegisterUsersResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []RegisteredUser `json:"data"`
}
