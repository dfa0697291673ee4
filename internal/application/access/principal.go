// Package access resuelve quién hace la petición y qué puede tocar: identidad,
// puerta de permisos por ruta y alcance por sucursal (empresa o bodega).
package access

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

// Principal identidad autenticada de la petición en curso.
type Principal struct {
	UserID    string
	Role      string
	CompanyID string
	Branch    entity.BranchRef
}

// IsCompanyScoped true si la sucursal del usuario es la empresa completa.
func (p Principal) IsCompanyScoped() bool {
	return p.Branch.Kind() == entity.BranchCompany && p.Branch.Valid()
}

// IdentityResolver carga el usuario del token. El rol y la sucursal se leen en cada
// petición, nunca desde el token.
type IdentityResolver struct {
	users repository.UserRepository
}

// NewIdentityResolver construye el resolver.
func NewIdentityResolver(users repository.UserRepository) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve devuelve el Principal de userID o Unauthorized si el usuario ya no existe.
func (r *IdentityResolver) Resolve(ctx context.Context, userID string) (*Principal, error) {
	if userID == "" {
		return nil, domain.NewUnauthorized("Unauthorized")
	}
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Authorization failed.",
			fmt.Sprintf("identity lookup failed for user %s", userID))
	}
	if user == nil {
		return nil, domain.NewUnauthorized("Unauthorized")
	}
	return &Principal{
		UserID:    user.ID,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		Branch:    user.Branch,
	}, nil
}
