package dto

import "time"

// RegisterCompanyRequest alta de empresa con su usuario administrador.
type RegisterCompanyRequest struct {
	BrandName       string `json:"brand_name"`
	Organization    string `json:"organization"`
	GSTIN           string `json:"gstin"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterCompanyResponse token del administrador recién creado.
type RegisterCompanyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Token     string `json:"token"`
	CompanyID string `json:"company_id"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	BrandName    string    `json:"brand_name"`
	Organization string    `json:"organization"`
	GSTIN        string    `json:"gstin"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	AdminID      string    `json:"admin_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
