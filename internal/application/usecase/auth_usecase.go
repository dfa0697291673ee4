package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

// AuthUseCase login con email y contraseña.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y contraseña incorrecta responden igual.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := required("email", in.Email); err != nil {
		return nil, err
	}
	if err := required("password", in.Password); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, upstream(err, "Login failed.", "user lookup failed for %s", in.Email)
	}
	if user == nil {
		return nil, domain.NewUnauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.NewUnauthorized("Invalid email or password")
	}
	token, err := uc.jwtCfg.issue(user.ID)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindInternal, "Login failed.",
			fmt.Sprintf("token generation failed for user %s", user.ID))
	}
	return &dto.LoginResponse{Success: true, Token: token, User: dto.FromUser(user)}, nil
}
