package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo guarda el conjunto esperado completo en una sola fila (text[]): el INSERT es atómico.
type AuditRepo struct {
	db Querier
}

func NewAuditRepository(db Querier) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Create(ctx context.Context, a *entity.Audit) error {
	epcs := a.EPCNumbers
	if epcs == nil {
		epcs = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO audits (uuid, company_id, warehouse_id, epc_numbers, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.UUID, a.CompanyID, a.WarehouseID, epcs, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func (r *AuditRepo) GetByUUID(ctx context.Context, companyID, id string) (*entity.Audit, error) {
	var a entity.Audit
	err := r.db.QueryRow(ctx, `
		SELECT uuid, company_id, warehouse_id, epc_numbers, created_at
		FROM audits WHERE company_id = $1 AND uuid = $2`, companyID, id).
		Scan(&a.UUID, &a.CompanyID, &a.WarehouseID, &a.EPCNumbers, &a.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit: %w", err)
	}
	return &a, nil
}
