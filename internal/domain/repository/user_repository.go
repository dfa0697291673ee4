package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// UserFilter filtro de listado de usuarios; campos vacíos no filtran.
type UserFilter struct {
	CompanyID  string
	Role       string
	BranchKind entity.BranchKind
	BranchID   string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Lister[entity.User, UserFilter]

	// Create devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
	Create(ctx context.Context, user *entity.User) error
	// GetByID busca en todas las empresas (resolución de identidad).
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetInCompany(ctx context.Context, companyID, id string) (*entity.User, error)
	// Update reescribe email, teléfono, sucursal y rol; mismos errores que Create.
	Update(ctx context.Context, user *entity.User) error
}
