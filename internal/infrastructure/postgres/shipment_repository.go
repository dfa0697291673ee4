package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

const shipmentSelect = `
	SELECT s.id, s.company_id, s.warehouse_id, s.destination_warehouse_id, s.status, s.schedule,
	       s.created_at, s.updated_at,
	       (SELECT count(*) FROM shipment_products sp WHERE sp.shipment_id = s.id)
	FROM shipments s`

// ShipmentRepo envíos y sus EPC sobre PostgreSQL.
type ShipmentRepo struct {
	db Querier
}

func NewShipmentRepository(db Querier) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shipments (id, company_id, warehouse_id, destination_warehouse_id, status, schedule, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.CompanyID, s.WarehouseID, s.DestinationWarehouseID, s.Status, s.Schedule, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Shipment, error) {
	s, err := scanShipment(r.db.QueryRow(ctx, shipmentSelect+` WHERE s.company_id = $1 AND s.id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

func (r *ShipmentRepo) Update(ctx context.Context, s *entity.Shipment) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE shipments SET destination_warehouse_id = $3, schedule = $4, updated_at = $5
		WHERE company_id = $1 AND id = $2`,
		s.CompanyID, s.ID, s.DestinationWarehouseID, s.Schedule, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShipmentRepo) UpdateStatus(ctx context.Context, companyID, id, status string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE shipments SET status = $3, updated_at = now()
		WHERE company_id = $1 AND id = $2`, companyID, id, status)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddProducts inserta los EPC del envío; los repetidos en el mismo envío se omiten.
func (r *ShipmentRepo) AddProducts(ctx context.Context, items []*entity.ShipmentProduct) (repository.BulkInsertResult, error) {
	res := repository.BulkInsertResult{Duplicates: []string{}}
	if len(items) == 0 {
		return res, nil
	}
	query := `
		INSERT INTO shipment_products (id, shipment_id, epc_number, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shipment_id, epc_number) DO NOTHING`
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query, it.ID, it.ShipmentID, it.EPCNumber, it.CreatedAt)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for _, it := range items {
		cmd, err := br.Exec()
		if err != nil {
			return res, fmt.Errorf("insert shipment product %s: %w", it.EPCNumber, err)
		}
		if cmd.RowsAffected() == 0 {
			res.Duplicates = append(res.Duplicates, it.EPCNumber)
			continue
		}
		res.Inserted++
	}
	return res, nil
}

// List envíos de la empresa; con bodega, los que salen o llegan a ella.
func (r *ShipmentRepo) List(ctx context.Context, f repository.ShipmentFilter, p pagination.Page) ([]*entity.Shipment, error) {
	var w where
	w.add("s.company_id = ?", f.CompanyID)
	if f.WarehouseID != "" {
		w.add("(s.warehouse_id = ? OR s.destination_warehouse_id = ?)", f.WarehouseID, f.WarehouseID)
	}
	if f.Status != "" {
		w.add("s.status = ?", f.Status)
	}
	rows, err := r.db.Query(ctx, shipmentSelect+w.sql()+w.page("s.created_at", "s.id", p), w.args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanShipment(row rowScanner) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(&s.ID, &s.CompanyID, &s.WarehouseID, &s.DestinationWarehouseID, &s.Status, &s.Schedule,
		&s.CreatedAt, &s.UpdatedAt, &s.ProductCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
