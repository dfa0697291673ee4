package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

const roleColumns = `id, COALESCE(company_id::text, ''), name, paths, permissions, allow_update, created_at, updated_at`

// RoleRepo roles por empresa; company_id NULL son las plantillas globales.
type RoleRepo struct {
	db Querier
}

func NewRoleRepository(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

// Create devuelve domain.ErrDuplicate si (empresa, nombre) ya existe.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO roles (id, company_id, name, paths, permissions, allow_update, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8)`,
		role.ID, role.CompanyID, role.Name, nonNil(role.Paths), nonNil(role.Permissions),
		role.AllowUpdate, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

func (r *RoleRepo) GetByName(ctx context.Context, companyID, name string) (*entity.Role, error) {
	if companyID == "" {
		return r.getOne(ctx, `SELECT `+roleColumns+` FROM roles WHERE company_id IS NULL AND name = $1`, name)
	}
	return r.getOne(ctx, `SELECT `+roleColumns+` FROM roles WHERE company_id = $1 AND name = $2`, companyID, name)
}

func (r *RoleRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Role, error) {
	return r.getOne(ctx, `SELECT `+roleColumns+` FROM roles WHERE company_id = $1 AND id = $2`, companyID, id)
}

// Update reemplaza paths y permisos.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE roles SET paths = $3, permissions = $4, updated_at = $5
		WHERE company_id = $1 AND id = $2`,
		role.CompanyID, role.ID, nonNil(role.Paths), nonNil(role.Permissions), role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RoleRepo) List(ctx context.Context, f repository.RoleFilter, p pagination.Page) ([]*entity.Role, error) {
	var w where
	w.add("company_id = ?", f.CompanyID)
	rows, err := r.db.Query(ctx, `SELECT `+roleColumns+` FROM roles`+w.sql()+w.page("created_at", "id", p), w.args...)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

func (r *RoleRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Role, error) {
	role, err := scanRole(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func scanRole(row rowScanner) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.CompanyID, &role.Name, &role.Paths, &role.Permissions,
		&role.AllowUpdate, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
