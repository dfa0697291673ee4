package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, email, phone, password_hash, branch_path, branch_id, role, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// La sucursal se guarda como (branch_path, branch_id) y se reconstruye con entity.ParseBranch.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.CompanyID, u.Email, u.Phone, u.PasswordHash,
		string(u.Branch.Kind()), u.Branch.ID(), u.Role,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (cualquier company).
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (cualquier company).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *UserRepo) GetInCompany(ctx context.Context, companyID, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE company_id = $1 AND id = $2`, companyID, id)
}

// Update la sucursal se reescribe completa (branch_path y branch_id).
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE users SET email = $3, phone = $4, branch_path = $5, branch_id = $6, role = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`,
		u.CompanyID, u.ID, u.Email, u.Phone, string(u.Branch.Kind()), u.Branch.ID(), u.Role, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List usuarios de la empresa filtrados por rol y/o sucursal.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter, p pagination.Page) ([]*entity.User, error) {
	var w where
	w.add("company_id = ?", f.CompanyID)
	if f.Role != "" {
		w.add("role = ?", f.Role)
	}
	if f.BranchKind != "" {
		w.add("branch_path = ?", string(f.BranchKind))
	}
	if f.BranchID != "" {
		w.add("branch_id::text = ?", f.BranchID)
	}
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users`+w.sql()+w.page("created_at", "id", p), w.args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// scanUser una sucursal persistida inválida deja Branch en su valor cero, que el
// resolver de alcance siempre rechaza.
func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u                  entity.User
		branchPath, branch string
	)
	err := row.Scan(&u.ID, &u.CompanyID, &u.Email, &u.Phone, &u.PasswordHash,
		&branchPath, &branch, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Branch, _ = entity.ParseBranch(branchPath, branch)
	return &u, nil
}
