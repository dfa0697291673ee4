package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// RecordReader lee un archivo tabular (CSV o XLSX) como filas cabecera → valor.
type RecordReader interface {
	Records(r io.Reader, filename string) ([]map[string]string, error)
}

// maxBulkUsers tope de filas por alta masiva (cada una paga un hash bcrypt).
const maxBulkUsers = 100

// UserUseCase usuarios de la empresa.
type UserUseCase struct {
	tx      repository.TxRunner
	users   repository.UserRepository
	roles   repository.RoleRepository
	scope   *access.ScopeResolver
	records RecordReader
	log     *logger.Logger
}

func NewUserUseCase(tx repository.TxRunner, users repository.UserRepository, roles repository.RoleRepository,
	scope *access.ScopeResolver, records RecordReader, log *logger.Logger) *UserUseCase {
	return &UserUseCase{tx: tx, users: users, roles: roles, scope: scope, records: records, log: log.Component("user")}
}

// Create la sucursal debe existir en la empresa y quedar dentro del alcance del creador;
// el rol debe existir en la empresa.
func (uc *UserUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.prepare(ctx, p, in)
	if err != nil {
		return nil, err
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewConflict("Email already registered")
		}
		return nil, upstream(err, "Failed to create user.", "user insert failed for company %s", p.CompanyID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("user_id", u.ID).Str("branch", u.Branch.String()).Msg("user created")
	out := dto.FromUser(u)
	return &out, nil
}

// prepare valida la entrada y devuelve el usuario listo para insertar (password ya hasheado).
func (uc *UserUseCase) prepare(ctx context.Context, p access.Principal, in dto.CreateUserRequest) (*entity.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := required("email", in.Email); err != nil {
		return nil, err
	}
	if err := required("password", in.Password); err != nil {
		return nil, err
	}
	if err := required("role", in.Role); err != nil {
		return nil, err
	}
	branch, err := uc.checkBranch(ctx, p, in.BranchPath, in.BranchID)
	if err != nil {
		return nil, err
	}
	role, err := uc.checkRole(ctx, p, in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindInternal, "Failed to create user.", "bcrypt hash failed")
	}
	now := time.Now()
	return &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    p.CompanyID,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Branch:       branch,
		Role:         role.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (uc *UserUseCase) checkBranch(ctx context.Context, p access.Principal, path, id string) (entity.BranchRef, error) {
	branch, err := entity.ParseBranch(path, id)
	if err != nil {
		return entity.BranchRef{}, domain.NewValidation("branch_path", "branch_path must be Company or Warehouse with a branch_id")
	}
	err = branch.Match(
		func(companyID string) error {
			if companyID != p.CompanyID {
				return domain.NewNotFound("Company not found")
			}
			return uc.scope.Authorize(p, companyID)
		},
		func(warehouseID string) error {
			_, err := uc.scope.ResolveWarehouse(ctx, p, warehouseID)
			return err
		},
	)
	if err != nil {
		return entity.BranchRef{}, err
	}
	return branch, nil
}

func (uc *UserUseCase) checkRole(ctx context.Context, p access.Principal, name string) (*entity.Role, error) {
	role, err := uc.roles.GetByName(ctx, p.CompanyID, name)
	if err != nil {
		return nil, upstream(err, "Failed to get role.", "role lookup failed for %s", name)
	}
	if role == nil {
		return nil, domain.NewNotFound("Role not found")
	}
	return role, nil
}

// Update aplica solo los campos presentes. El usuario editado debe estar dentro del
// alcance de quien edita, y la nueva sucursal también.
func (uc *UserUseCase) Update(ctx context.Context, p access.Principal, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.users.GetInCompany(ctx, p.CompanyID, userID)
	if err != nil {
		return nil, upstream(err, "Failed to update user.", "user lookup failed for %s", userID)
	}
	if u == nil {
		return nil, domain.NewNotFound("User not found")
	}
	if err := uc.scope.Authorize(p, u.Branch.ID()); err != nil {
		return nil, err
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := required("email", email); err != nil {
			return nil, err
		}
		u.Email = email
	}
	setIf(&u.Phone, in.Phone)
	if in.BranchPath != nil || in.BranchID != nil {
		if in.BranchPath == nil || in.BranchID == nil {
			return nil, domain.NewValidation("branch_path", "branch_path and branch_id must be sent together")
		}
		if u.Branch, err = uc.checkBranch(ctx, p, *in.BranchPath, *in.BranchID); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		role, err := uc.checkRole(ctx, p, *in.Role)
		if err != nil {
			return nil, err
		}
		u.Role = role.Name
	}
	u.UpdatedAt = time.Now()

	if err := uc.users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewConflict("Email already registered")
		}
		return nil, upstream(err, "Failed to update user.", "user update failed for %s", userID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("user_id", u.ID).Str("branch", u.Branch.String()).Msg("user updated")
	out := dto.FromUser(u)
	return &out, nil
}

// RegisterJSON alta masiva desde el cuerpo JSON.
func (uc *UserUseCase) RegisterJSON(ctx context.Context, p access.Principal, in dto.RegisterUsersRequest) (*dto.RegisterUsersResponse, error) {
	return uc.register(ctx, p, in.Users)
}

// RegisterCSV alta masiva con el CSV como texto en el cuerpo.
func (uc *UserUseCase) RegisterCSV(ctx context.Context, p access.Principal, in dto.RegisterUsersCSVRequest) (*dto.RegisterUsersResponse, error) {
	if err := required("text", in.Text); err != nil {
		return nil, err
	}
	recs, err := uc.records.Records(strings.NewReader(in.Text), "users.csv")
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Unable to read CSV.", "user csv parse failed")
	}
	return uc.register(ctx, p, usersFromRecords(recs))
}

// RegisterFile alta masiva desde un archivo CSV o XLSX.
func (uc *UserUseCase) RegisterFile(ctx context.Context, p access.Principal, file *audit.Upload) (*dto.RegisterUsersResponse, error) {
	if file == nil || file.Body == nil {
		return nil, domain.NewValidation("file", "No file uploaded")
	}
	recs, err := uc.records.Records(file.Body, file.Filename)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Unable to read file.",
			fmt.Sprintf("user file parse failed for %q", file.Filename))
	}
	return uc.register(ctx, p, usersFromRecords(recs))
}

func usersFromRecords(recs []map[string]string) []dto.CreateUserRequest {
	out := make([]dto.CreateUserRequest, len(recs))
	for i, r := range recs {
		out[i] = dto.CreateUserRequest{
			Email:      r["email"],
			Phone:      r["phone"],
			Password:   r["password"],
			BranchPath: r["branch_path"],
			BranchID:   r["branch_id"],
			Role:       r["role"],
		}
	}
	return out
}

// register todo o nada: cada fila se valida como en Create y la inserción va en una
// sola transacción. Las filas sin password reciben una generada que se devuelve una vez.
func (uc *UserUseCase) register(ctx context.Context, p access.Principal, items []dto.CreateUserRequest) (*dto.RegisterUsersResponse, error) {
	if len(items) == 0 {
		return nil, domain.NewValidation("users", "No users to register")
	}
	if len(items) > maxBulkUsers {
		return nil, domain.NewValidation("users", fmt.Sprintf("At most %d users per request", maxBulkUsers))
	}

	seen := make(map[string]bool, len(items))
	users := make([]*entity.User, len(items))
	generated := make([]string, len(items))
	for i, in := range items {
		key := strings.ToLower(strings.TrimSpace(in.Email))
		if key != "" && seen[key] {
			return nil, atRow(domain.NewValidation("email", "Email repeated in the request"), i)
		}
		seen[key] = true
		if strings.TrimSpace(in.Password) == "" {
			pw, err := generatePassword()
			if err != nil {
				return nil, domain.Wrap(err, domain.KindInternal, "Failed to create users.", "password generation failed")
			}
			in.Password, generated[i] = pw, pw
		}
		u, err := uc.prepare(ctx, p, in)
		if err != nil {
			return nil, atRow(err, i)
		}
		users[i] = u
	}

	err := uc.tx.Run(ctx, func(tx repository.Stores) error {
		for i, u := range users {
			if err := tx.Users.Create(ctx, u); err != nil {
				if errors.Is(err, domain.ErrEmailAlreadyExists) {
					return atRow(domain.NewConflict(fmt.Sprintf("Email %s already registered", u.Email)), i)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, upstream(err, "Failed to create users.", "bulk user insert failed for company %s", p.CompanyID)
	}

	out := make([]dto.RegisteredUser, len(users))
	for i, u := range users {
		out[i] = dto.RegisteredUser{UserResponse: dto.FromUser(u), Password: generated[i]}
	}
	uc.log.Info().Str("company_id", p.CompanyID).Int("users", len(users)).Msg("users registered")
	return &dto.RegisterUsersResponse{
		Success: true,
		Message: fmt.Sprintf("%d users created", len(users)),
		Data:    out,
	}, nil
}

// atRow ubica el error en la fila i del alta masiva.
func atRow(err error, i int) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		return err
	}
	cp := *de
	if cp.Field != "" {
		cp.Field = fmt.Sprintf("users[%d].%s", i, cp.Field)
	} else {
		cp.Field = fmt.Sprintf("users[%d]", i)
	}
	cp.Message = fmt.Sprintf("Row %d: %s", i+1, cp.Message)
	return &cp
}

// List un usuario de bodega solo ve los usuarios de su bodega.
func (uc *UserUseCase) List(ctx context.Context, p access.Principal, q dto.UserListQuery, page pagination.Page) ([]dto.UserResponse, error) {
	filter := repository.UserFilter{
		CompanyID:  p.CompanyID,
		Role:       q.Role,
		BranchKind: entity.BranchKind(q.BranchPath),
		BranchID:   q.BranchID,
	}
	warehouseID, err := uc.scope.WarehouseFilter(p)
	if err != nil {
		return nil, err
	}
	if warehouseID != "" {
		filter.BranchKind, filter.BranchID = entity.BranchWarehouse, warehouseID
	}
	items, err := uc.users.List(ctx, filter, page)
	if err != nil {
		return nil, upstream(err, "Failed to list users.", "user list failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromUser), nil
}

func (uc *UserUseCase) Get(ctx context.Context, p access.Principal, userID string) (*dto.UserResponse, error) {
	u, err := uc.users.GetInCompany(ctx, p.CompanyID, userID)
	if err != nil {
		return nil, upstream(err, "Failed to get user.", "user lookup failed for %s", userID)
	}
	if u == nil {
		return nil, domain.NewNotFound("User not found")
	}
	if err := uc.scope.Authorize(p, u.Branch.ID()); err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}
