package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productDetailSelect unidad con catálogo, proveedor, bodega y zona. Todas las uniones
// repiten la empresa para que un id ajeno nunca traiga datos de otro tenant.
const productDetailSelect = `
	SELECT p.id, p.epc_number, p.company_id, p.warehouse_id, p.zone_id, p.product_info_id,
	       COALESCE(p.shipment_id::text, ''), p.created_at, p.updated_at,
	       pi.id::text, COALESCE(pi.vendor_id::text, ''), COALESCE(pi.name, ''), COALESCE(pi.description, ''),
	       COALESCE(pi.sku, ''), COALESCE(pi.barcode, ''), COALESCE(pi.price, 0), COALESCE(pi.cost_price, 0),
	       COALESCE(pi.quantity, 0), COALESCE(pi.low_quantity_trigger, 0), COALESCE(pi.tax_percentage, 0),
	       v.id::text, COALESCE(v.name, ''), COALESCE(v.email, ''), COALESCE(v.phone, ''), COALESCE(v.address, ''),
	       w.id::text, COALESCE(w.name, ''), COALESCE(w.main_person_name, ''), COALESCE(w.email, ''),
	       COALESCE(w.phone, ''), COALESCE(w.address, ''),
	       z.id::text
	FROM products p
	LEFT JOIN product_infos pi ON pi.id = p.product_info_id AND pi.company_id = p.company_id
	LEFT JOIN vendors v ON v.id = pi.vendor_id AND v.company_id = p.company_id
	LEFT JOIN warehouses w ON w.id = p.warehouse_id AND w.company_id = p.company_id
	LEFT JOIN zones z ON z.id = p.zone_id AND z.company_id = p.company_id`

// ProductRepo unidades físicas (EPC) sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// CreateMany envía un INSERT por producto en un solo batch. Los EPC ya existentes
// (ON CONFLICT DO NOTHING) se devuelven en Duplicates y no detienen el resto.
// pgx manda el batch con un único Sync, así que Postgres lo ejecuta como una
// transacción implícita: si un INSERT falla no queda ninguna fila del lote.
func (r *ProductRepo) CreateMany(ctx context.Context, products []*entity.Product) (repository.BulkInsertResult, error) {
	res := repository.BulkInsertResult{Duplicates: []string{}}
	if len(products) == 0 {
		return res, nil
	}
	query := `
		INSERT INTO products (id, epc_number, company_id, warehouse_id, zone_id, product_info_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (epc_number) DO NOTHING`
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.ID, p.EPCNumber, p.CompanyID, p.WarehouseID, p.ZoneID, p.ProductInfoID, p.CreatedAt, p.UpdatedAt)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for _, p := range products {
		cmd, err := br.Exec()
		if err != nil {
			return res, fmt.Errorf("insert product %s: %w", p.EPCNumber, err)
		}
		if cmd.RowsAffected() == 0 {
			res.Duplicates = append(res.Duplicates, p.EPCNumber)
			continue
		}
		res.Inserted++
	}
	return res, nil
}

// List unidades con su detalle, filtradas por empresa y opcionalmente bodega/EPC.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter, p pagination.Page) ([]*entity.ProductDetail, error) {
	var w where
	w.add("p.company_id = ?", f.CompanyID)
	if f.WarehouseID != "" {
		w.add("p.warehouse_id = ?", f.WarehouseID)
	}
	if len(f.EPCNumbers) > 0 {
		w.add("p.epc_number = ANY(?)", f.EPCNumbers)
	}
	return r.query(ctx, productDetailSelect+w.sql()+w.page("p.created_at", "p.id", p), w.args...)
}

// FindDetailsByEPC detalle de los EPC indicados, ordenados por EPC.
func (r *ProductRepo) FindDetailsByEPC(ctx context.Context, companyID string, epcs []string) ([]*entity.ProductDetail, error) {
	if len(epcs) == 0 {
		return nil, nil
	}
	query := productDetailSelect + ` WHERE p.company_id = $1 AND p.epc_number = ANY($2) ORDER BY p.epc_number`
	return r.query(ctx, query, companyID, epcs)
}

// AssignShipment marca los EPC de la empresa como parte del envío. Solo toma los que
// no viajan ya en otro envío; RowsAffected dice cuántos se asignaron.
func (r *ProductRepo) AssignShipment(ctx context.Context, companyID, shipmentID string, epcs []string) (int64, error) {
	if len(epcs) == 0 {
		return 0, nil
	}
	cmd, err := r.db.Exec(ctx, `
		UPDATE products SET shipment_id = $2, updated_at = now()
		WHERE company_id = $1 AND epc_number = ANY($3) AND shipment_id IS NULL`, companyID, shipmentID, epcs)
	if err != nil {
		return 0, fmt.Errorf("assign shipment: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// MoveShipment reubica en la bodega destino todo lo que viaja en el envío.
// La zona de origen ya no aplica: queda en NULL hasta que se reubique.
func (r *ProductRepo) MoveShipment(ctx context.Context, companyID, shipmentID, warehouseID string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `
		UPDATE products SET warehouse_id = $3, zone_id = NULL, shipment_id = NULL, updated_at = now()
		WHERE company_id = $1 AND shipment_id = $2`, companyID, shipmentID, warehouseID)
	if err != nil {
		return 0, fmt.Errorf("move shipment products: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProductRepo) query(ctx context.Context, query string, args ...any) ([]*entity.ProductDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductDetail
	for rows.Next() {
		d, err := scanProductDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanProductDetail(row rowScanner) (*entity.ProductDetail, error) {
	var (
		d                                  entity.ProductDetail
		zoneID                             *string
		infoID, vendorID, whID, joinedZone *string
		info                               entity.ProductInfo
		vendor                             entity.Vendor
		wh                                 entity.Warehouse
		price, cost, tax                   decimal.Decimal
		createdAt, updatedAt               time.Time
	)
	err := row.Scan(
		&d.ID, &d.EPCNumber, &d.CompanyID, &d.WarehouseID, &zoneID, &d.ProductInfoID,
		&d.ShipmentID, &createdAt, &updatedAt,
		&infoID, &info.VendorID, &info.Name, &info.Description, &info.SKU, &info.Barcode,
		&price, &cost, &info.Quantity, &info.LowQuantityTrigger, &tax,
		&vendorID, &vendor.Name, &vendor.Email, &vendor.Phone, &vendor.Address,
		&whID, &wh.Name, &wh.MainPersonName, &wh.Email, &wh.Phone, &wh.Address,
		&joinedZone,
	)
	if err != nil {
		return nil, err
	}
	d.CreatedAt, d.UpdatedAt = createdAt, updatedAt
	if zoneID != nil {
		d.ZoneID = *zoneID
	}
	if infoID != nil {
		info.ID, info.CompanyID = *infoID, d.CompanyID
		info.Price, info.CostPrice, info.TaxPercentage = price, cost, tax
		d.Info = &info
	}
	if vendorID != nil {
		vendor.ID, vendor.CompanyID = *vendorID, d.CompanyID
		d.Vendor = &vendor
	}
	if whID != nil {
		wh.ID, wh.CompanyID = *whID, d.CompanyID
		d.Warehouse = &wh
	}
	if joinedZone != nil {
		d.Zone = &entity.Zone{ID: *joinedZone, CompanyID: d.CompanyID, WarehouseID: d.WarehouseID}
	}
	return &d, nil
}
