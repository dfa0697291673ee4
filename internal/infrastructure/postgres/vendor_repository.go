package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, company_id, name, email, phone, address, created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	db Querier
}

func NewVendorRepository(db Querier) *VendorRepo {
	return &VendorRepo{db: db}
}

func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID, v.CompanyID, v.Name, v.Email, v.Phone, v.Address, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (r *VendorRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE company_id = $1 AND id = $2`, companyID, id).
		Scan(&v.ID, &v.CompanyID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE vendors SET name = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE company_id = $1 AND id = $2`,
		v.CompanyID, v.ID, v.Name, v.Email, v.Phone, v.Address, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VendorRepo) List(ctx context.Context, f repository.VendorFilter, p pagination.Page) ([]*entity.Vendor, error) {
	var w where
	w.add("company_id = ?", f.CompanyID)
	rows, err := r.db.Query(ctx, `SELECT `+vendorColumns+` FROM vendors`+w.sql()+w.page("created_at", "id", p), w.args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
