package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// Lister listado paginado genérico. Cada entidad define su propio filtro F;
// el filtro siempre lleva CompanyID y la implementación nunca lo omite.
type Lister[T any, F any] interface {
	List(ctx context.Context, filter F, page pagination.Page) ([]*T, error)
}
