package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

const zoneSelect = `
	SELECT z.id, z.company_id, z.warehouse_id, z.created_at, z.updated_at,
	       (SELECT count(*) FROM products p WHERE p.zone_id = z.id)
	FROM zones z`

// ZoneRepo implementación del puerto ZoneRepository sobre PostgreSQL.
type ZoneRepo struct {
	db Querier
}

func NewZoneRepository(db Querier) *ZoneRepo {
	return &ZoneRepo{db: db}
}

// Create persiste la zona. La bodega debe ser de la misma empresa (lo garantiza la FK compuesta).
func (r *ZoneRepo) Create(ctx context.Context, z *entity.Zone) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO zones (id, company_id, warehouse_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		z.ID, z.CompanyID, z.WarehouseID, z.CreatedAt, z.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

func (r *ZoneRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Zone, error) {
	return r.getOne(ctx, zoneSelect+` WHERE z.company_id = $1 AND z.id = $2`, companyID, id)
}

func (r *ZoneRepo) GetInWarehouse(ctx context.Context, companyID, warehouseID, id string) (*entity.Zone, error) {
	return r.getOne(ctx, zoneSelect+` WHERE z.company_id = $1 AND z.warehouse_id = $2 AND z.id = $3`,
		companyID, warehouseID, id)
}

func (r *ZoneRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Zone, error) {
	z, err := scanZone(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return z, nil
}

// List zonas de una bodega con la cantidad de productos de cada una.
func (r *ZoneRepo) List(ctx context.Context, f repository.ZoneFilter, p pagination.Page) ([]*entity.Zone, error) {
	var w where
	w.add("z.company_id = ?", f.CompanyID)
	if f.WarehouseID != "" {
		w.add("z.warehouse_id = ?", f.WarehouseID)
	}
	rows, err := r.db.Query(ctx, zoneSelect+w.sql()+w.page("z.created_at", "z.id", p), w.args...)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, z)
	}
	return list, rows.Err()
}

func scanZone(row rowScanner) (*entity.Zone, error) {
	var z entity.Zone
	if err := row.Scan(&z.ID, &z.CompanyID, &z.WarehouseID, &z.CreatedAt, &z.UpdatedAt, &z.ProductCount); err != nil {
		return nil, err
	}
	return &z, nil
}
