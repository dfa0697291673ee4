package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// AuditRepository persiste los conjuntos esperados de EPC. Un Audit no se modifica después de creado.
type AuditRepository interface {
	Create(ctx context.Context, audit *entity.Audit) error
	// GetByUUID busca por (uuid, empresa); (nil, nil) si no existe.
	GetByUUID(ctx context.Context, companyID, uuid string) (*entity.Audit, error)
}
