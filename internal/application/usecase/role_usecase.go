package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// RoleUseCase roles de la empresa. Un rol con AllowUpdate=false (ej. admin) es inmutable.
type RoleUseCase struct {
	roles repository.RoleRepository
	log   *logger.Logger
}

func NewRoleUseCase(roles repository.RoleRepository, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{roles: roles, log: log.Component("role")}
}

func (uc *RoleUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if err := requireCompanyScope(p, "create roles"); err != nil {
		return nil, err
	}
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   p.CompanyID,
		Name:        in.Name,
		Paths:       in.Paths,
		Permissions: in.Permissions,
		AllowUpdate: in.AllowUpdate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roles.Create(ctx, role); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewConflict(fmt.Sprintf("Role %q already exists", in.Name))
		}
		return nil, upstream(err, "Failed to create role.", "role insert failed for company %s", p.CompanyID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("role", role.Name).Msg("role created")
	out := dto.FromRole(role)
	return &out, nil
}

func (uc *RoleUseCase) List(ctx context.Context, p access.Principal, page pagination.Page) ([]dto.RoleResponse, error) {
	items, err := uc.roles.List(ctx, repository.RoleFilter{CompanyID: p.CompanyID}, page)
	if err != nil {
		return nil, upstream(err, "Failed to list roles.", "role list failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromRole), nil
}

func (uc *RoleUseCase) Get(ctx context.Context, p access.Principal, roleID string) (*dto.RoleResponse, error) {
	role, err := uc.get(ctx, p, roleID)
	if err != nil {
		return nil, err
	}
	out := dto.FromRole(role)
	return &out, nil
}

// Update reemplaza paths y/o permisos; un rol sin AllowUpdate responde Forbidden.
func (uc *RoleUseCase) Update(ctx context.Context, p access.Principal, roleID string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if err := requireCompanyScope(p, "update roles"); err != nil {
		return nil, err
	}
	role, err := uc.get(ctx, p, roleID)
	if err != nil {
		return nil, err
	}
	if !role.AllowUpdate {
		return nil, domain.NewForbidden("Role cannot be updated",
			fmt.Sprintf("role %q of company %s has allow_update=false", role.Name, p.CompanyID))
	}
	if in.Paths != nil {
		role.Paths = in.Paths
	}
	if in.Permissions != nil {
		role.Permissions = in.Permissions
	}
	role.UpdatedAt = time.Now()
	if err := uc.roles.Update(ctx, role); err != nil {
		return nil, upstream(err, "Failed to update role.", "role update failed for %s", roleID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("role", role.Name).Msg("role updated")
	out := dto.FromRole(role)
	return &out, nil
}

func (uc *RoleUseCase) get(ctx context.Context, p access.Principal, roleID string) (*entity.Role, error) {
	role, err := uc.roles.GetByID(ctx, p.CompanyID, roleID)
	if err != nil {
		return nil, upstream(err, "Failed to get role.", "role lookup failed for %s", roleID)
	}
	if role == nil {
		return nil, domain.NewNotFound("Role not found")
	}
	return role, nil
}
