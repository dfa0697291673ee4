package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/jwt"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

func (c JWTConfig) issue(userID string) (string, error) {
	return jwt.Generate(c.Secret, userID, c.Issuer, c.ExpMinutes)
}

// CompanyUseCase alta de empresas y consulta de la empresa propia.
type CompanyUseCase struct {
	tx        repository.TxRunner
	companies repository.CompanyRepository
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(tx repository.TxRunner, companies repository.CompanyRepository, jwtCfg JWTConfig, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{tx: tx, companies: companies, jwtCfg: jwtCfg, log: log.Component("company")}
}

// Register crea en una sola transacción la empresa, el rol admin (["*"]), la copia de la
// plantilla global "default" si existe y el usuario administrador sobre la rama de empresa.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	for _, f := range []struct{ name, value string }{
		{"brand_name", in.BrandName}, {"email", in.Email}, {"password", in.Password},
	} {
		if err := required(f.name, f.value); err != nil {
			return nil, err
		}
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewValidation("confirm_password", "Passwords do not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindInternal, "Registration failed.", "bcrypt hash failed")
	}

	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		BrandName:    in.BrandName,
		Organization: in.Organization,
		GSTIN:        in.GSTIN,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Branch:       entity.CompanyBranch(company.ID),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func(tx repository.Stores) error {
		existing, err := tx.Users.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewConflict("Email already registered")
		}
		if err := tx.Companies.Create(ctx, company); err != nil {
			return err
		}
		if err := tx.Roles.Create(ctx, &entity.Role{
			ID: uuid.New().String(), CompanyID: company.ID, Name: entity.RoleAdmin,
			Paths: []string{entity.WildcardPath}, Permissions: []string{entity.WildcardPath},
			AllowUpdate: false, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			return err
		}
		template, err := tx.Roles.GetByName(ctx, "", entity.RoleDefault)
		if err != nil {
			return err
		}
		if template != nil {
			if err := tx.Roles.Create(ctx, &entity.Role{
				ID: uuid.New().String(), CompanyID: company.ID, Name: template.Name,
				Paths: template.Paths, Permissions: template.Permissions,
				AllowUpdate: template.AllowUpdate, CreatedAt: now, UpdatedAt: now,
			}); err != nil {
				return err
			}
		}
		if err := tx.Users.Create(ctx, admin); err != nil {
			return err
		}
		return tx.Companies.SetAdmin(ctx, company.ID, admin.ID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewConflict("Email already registered")
		}
		return nil, upstream(err, "Registration failed.", "company registration failed for %s", in.Email)
	}

	token, err := uc.jwtCfg.issue(admin.ID)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindInternal, "Registration failed.",
			fmt.Sprintf("token generation failed for user %s", admin.ID))
	}

	uc.log.Info().
		Str("company_id", company.ID).
		Str("user_id", admin.ID).
		Msg("company registered")

	return &dto.RegisterCompanyResponse{
		Success:   true,
		Message:   "Company registered",
		Token:     token,
		CompanyID: company.ID,
	}, nil
}

// Get devuelve la empresa del usuario autenticado.
func (uc *CompanyUseCase) Get(ctx context.Context, p access.Principal) (*dto.CompanyResponse, error) {
	c, err := uc.companies.GetByID(ctx, p.CompanyID)
	if err != nil {
		return nil, upstream(err, "Failed to get company.", "company lookup failed for %s", p.CompanyID)
	}
	if c == nil {
		return nil, domain.NewNotFound("Company not found")
	}
	out := dto.FromCompany(c)
	return &out, nil
}
