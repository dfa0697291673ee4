package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// SetAdmin registra el usuario administrador creado en el alta de la empresa.
	SetAdmin(ctx context.Context, companyID, userID string) error
}
