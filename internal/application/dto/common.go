package dto

// PageQuery parámetros crudos de listado; se resuelven con pagination.Config.Resolve.
type PageQuery struct {
	Limit string `query:"limit"`
	Page  string `query:"page"`
	Sort  string `query:"sort"` // asc | desc
}

// ListResponse envoltura de todos los listados.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

// NewList construye la respuesta; nunca serializa data como null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Data: items}
}

// DataResponse envoltura de un único recurso.
type DataResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// MessageResponse respuesta de operaciones sin cuerpo.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
