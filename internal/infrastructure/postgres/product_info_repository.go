package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.ProductInfoRepository = (*ProductInfoRepo)(nil)

const productInfoColumns = `pi.id, pi.company_id, COALESCE(pi.vendor_id::text, ''), pi.name, pi.description,
	pi.sku, pi.barcode, pi.price, pi.cost_price, pi.quantity, pi.low_quantity_trigger,
	pi.tax_percentage, pi.created_at, pi.updated_at`

// ProductInfoRepo catálogo sobre PostgreSQL. Los montos NUMERIC se leen como decimal.Decimal
// gracias al codec registrado en el pool.
type ProductInfoRepo struct {
	db Querier
}

func NewProductInfoRepository(db Querier) *ProductInfoRepo {
	return &ProductInfoRepo{db: db}
}

// Create persiste una entrada de catálogo.
func (r *ProductInfoRepo) Create(ctx context.Context, p *entity.ProductInfo) error {
	query := `
		INSERT INTO product_infos (id, company_id, vendor_id, name, description, sku, barcode,
			price, cost_price, quantity, low_quantity_trigger, tax_percentage, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.CompanyID, p.VendorID, p.Name, p.Description, p.SKU, p.Barcode,
		p.Price, p.CostPrice, p.Quantity, p.LowQuantityTrigger, p.TaxPercentage,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product info: %w", err)
	}
	return nil
}

func (r *ProductInfoRepo) GetByID(ctx context.Context, companyID, id string) (*entity.ProductInfo, error) {
	query := `SELECT ` + productInfoColumns + ` FROM product_infos pi WHERE pi.company_id = $1 AND pi.id = $2`
	p, err := scanProductInfo(r.db.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product info: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables.
func (r *ProductInfoRepo) Update(ctx context.Context, p *entity.ProductInfo) error {
	query := `
		UPDATE product_infos SET vendor_id = NULLIF($3, '')::uuid, name = $4, description = $5, sku = $6,
			barcode = $7, price = $8, cost_price = $9, quantity = $10, low_quantity_trigger = $11,
			tax_percentage = $12, updated_at = $13
		WHERE company_id = $1 AND id = $2`
	cmd, err := r.db.Exec(ctx, query,
		p.CompanyID, p.ID, p.VendorID, p.Name, p.Description, p.SKU, p.Barcode,
		p.Price, p.CostPrice, p.Quantity, p.LowQuantityTrigger, p.TaxPercentage, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product info: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List catálogo de la empresa; con bodega/zona solo las entradas que tienen unidades ahí.
func (r *ProductInfoRepo) List(ctx context.Context, f repository.ProductInfoFilter, p pagination.Page) ([]*entity.ProductInfo, error) {
	var w where
	w.add("pi.company_id = ?", f.CompanyID)
	if len(f.IDs) > 0 {
		w.add("pi.id::text = ANY(?)", f.IDs)
	}
	switch {
	case f.ZoneID != "":
		w.add(`EXISTS (SELECT 1 FROM products p WHERE p.product_info_id = pi.id
			AND p.company_id = pi.company_id AND p.warehouse_id = ? AND p.zone_id = ?)`, f.WarehouseID, f.ZoneID)
	case f.WarehouseID != "":
		w.add(`EXISTS (SELECT 1 FROM products p WHERE p.product_info_id = pi.id
			AND p.company_id = pi.company_id AND p.warehouse_id = ?)`, f.WarehouseID)
	}
	query := `SELECT ` + productInfoColumns + ` FROM product_infos pi` + w.sql() + w.page("pi.created_at", "pi.id", p)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list product infos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductInfo
	for rows.Next() {
		item, err := scanProductInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product info: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanProductInfo(row rowScanner) (*entity.ProductInfo, error) {
	var p entity.ProductInfo
	err := row.Scan(&p.ID, &p.CompanyID, &p.VendorID, &p.Name, &p.Description, &p.SKU, &p.Barcode,
		&p.Price, &p.CostPrice, &p.Quantity, &p.LowQuantityTrigger, &p.TaxPercentage,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
