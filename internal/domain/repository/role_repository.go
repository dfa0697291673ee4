package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

type RoleFilter struct {
	CompanyID string
}

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Lister[entity.Role, RoleFilter]

	// Create devuelve domain.ErrDuplicate si (empresa, nombre) ya existe.
	Create(ctx context.Context, role *entity.Role) error
	// GetByName busca por (empresa, nombre). companyID vacío busca los roles globales.
	GetByName(ctx context.Context, companyID, name string) (*entity.Role, error)
	GetByID(ctx context.Context, companyID, id string) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
}
