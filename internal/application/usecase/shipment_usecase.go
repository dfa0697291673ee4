package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	reconcile "github.com/jhoicas/epc-inventory-api/internal/domain/audit"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

var shipmentOrder = map[string]int{
	entity.ShipmentReadyToShip: 0,
	entity.ShipmentOutbound:    1,
	entity.ShipmentInbound:     2,
	entity.ShipmentCompleted:   3,
}

// ShipmentUseCase envíos entre bodegas de la misma empresa.
// Los estados solo avanzan: ready to ship → outbound → inbound → completed.
type ShipmentUseCase struct {
	tx         repository.TxRunner
	shipments  repository.ShipmentRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	scope      *access.ScopeResolver
	reader     audit.TagReader
	epcColumn  string
	log        *logger.Logger
}

func NewShipmentUseCase(
	tx repository.TxRunner,
	shipments repository.ShipmentRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	scope *access.ScopeResolver,
	reader audit.TagReader,
	epcColumn string,
	log *logger.Logger,
) *ShipmentUseCase {
	if epcColumn == "" {
		epcColumn = "epcNumber"
	}
	return &ShipmentUseCase{
		tx:         tx,
		shipments:  shipments,
		products:   products,
		warehouses: warehouses,
		scope:      scope,
		reader:     reader,
		epcColumn:  epcColumn,
		log:        log.Component("shipment"),
	}
}

// Create el origen pasa por el alcance del usuario; el destino solo debe existir en la empresa.
func (uc *ShipmentUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if err := required("warehouse_id", in.WarehouseID); err != nil {
		return nil, err
	}
	if in.Schedule.IsZero() {
		return nil, domain.NewValidation("schedule", "schedule is required")
	}
	if _, err := uc.scope.ResolveWarehouse(ctx, p, in.WarehouseID); err != nil {
		return nil, err
	}
	if err := uc.checkDestination(ctx, p, in.WarehouseID, in.DestinationWarehouseID); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Shipment{
		ID:                     uuid.New().String(),
		CompanyID:              p.CompanyID,
		WarehouseID:            in.WarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Status:                 entity.ShipmentReadyToShip,
		Schedule:               in.Schedule,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.shipments.Create(ctx, s); err != nil {
		return nil, upstream(err, "Failed to create shipment.", "shipment insert failed for company %s", p.CompanyID)
	}
	uc.log.Info().
		Str("company_id", p.CompanyID).
		Str("shipment_id", s.ID).
		Str("warehouse_id", s.WarehouseID).
		Str("destination_warehouse_id", s.DestinationWarehouseID).
		Msg("shipment created")
	out := dto.FromShipment(s)
	return &out, nil
}

// List un usuario de bodega ve los envíos que salen o llegan a su bodega.
func (uc *ShipmentUseCase) List(ctx context.Context, p access.Principal, q dto.ShipmentListQuery, page pagination.Page) ([]dto.ShipmentResponse, error) {
	if q.Status != "" && !entity.ValidShipmentStatus(q.Status) {
		return nil, domain.NewValidation("status", "unknown shipment status")
	}
	warehouseID, err := uc.scope.WarehouseFilter(p)
	if err != nil {
		return nil, err
	}
	items, err := uc.shipments.List(ctx, repository.ShipmentFilter{
		CompanyID: p.CompanyID, WarehouseID: warehouseID, Status: q.Status,
	}, page)
	if err != nil {
		return nil, upstream(err, "Failed to list shipments.", "shipment list failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromShipment), nil
}

func (uc *ShipmentUseCase) Get(ctx context.Context, p access.Principal, id string) (*dto.ShipmentResponse, error) {
	s, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromShipment(s)
	return &out, nil
}

// Update cambia destino o fecha mientras el envío no esté completado.
func (uc *ShipmentUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateShipmentRequest) (*dto.ShipmentResponse, error) {
	s, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := uc.scope.Authorize(p, s.WarehouseID); err != nil {
		return nil, err
	}
	if s.Status == entity.ShipmentCompleted {
		return nil, domain.NewConflict("Shipment already completed")
	}
	if in.DestinationWarehouseID != nil {
		if err := uc.checkDestination(ctx, p, s.WarehouseID, *in.DestinationWarehouseID); err != nil {
			return nil, err
		}
		s.DestinationWarehouseID = *in.DestinationWarehouseID
	}
	if in.Schedule != nil {
		if in.Schedule.IsZero() {
			return nil, domain.NewValidation("schedule", "schedule is required")
		}
		s.Schedule = *in.Schedule
	}
	s.UpdatedAt = time.Now()
	if err := uc.shipments.Update(ctx, s); err != nil {
		return nil, upstream(err, "Failed to update shipment.", "shipment update failed for %s", id)
	}
	out := dto.FromShipment(s)
	return &out, nil
}

// AddProducts agrega al envío los EPC del archivo que están en la bodega de origen y no
// viajan en otro envío. Los demás se devuelven en Rejected y no se agregan.
func (uc *ShipmentUseCase) AddProducts(ctx context.Context, p access.Principal, id string, file *audit.Upload) (*dto.BulkAddResponse, error) {
	if file == nil || file.Body == nil {
		return nil, domain.NewValidation("file", "No file uploaded")
	}
	s, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := uc.scope.Authorize(p, s.WarehouseID); err != nil {
		return nil, err
	}
	if s.Status != entity.ShipmentReadyToShip {
		return nil, domain.NewConflict("Shipment is no longer accepting products")
	}
	epcs, err := uc.reader.Parse(file.Body, file.Filename, uc.epcColumn)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Unable to read file.",
			fmt.Sprintf("parse failed for %q", file.Filename))
	}
	epcs = reconcile.Normalize(epcs)
	if len(epcs) == 0 {
		return nil, domain.NewValidation("file", "File has no EPC numbers")
	}

	details, err := uc.products.FindDetailsByEPC(ctx, p.CompanyID, epcs)
	if err != nil {
		return nil, upstream(err, "Failed to add products.", "product lookup failed for shipment %s", id)
	}
	byEPC := make(map[string]*entity.ProductDetail, len(details))
	for _, d := range details {
		byEPC[d.EPCNumber] = d
	}
	now := time.Now()
	var (
		items      []*entity.ShipmentProduct
		accepted   []string
		rejected   = []string{}
		duplicates = []string{}
	)
	for _, epc := range epcs {
		d := byEPC[epc]
		switch {
		case d == nil || d.WarehouseID != s.WarehouseID:
			rejected = append(rejected, epc)
		case d.ShipmentID == s.ID:
			duplicates = append(duplicates, epc)
		case d.ShipmentID != "":
			// ya viaja en otro envío
			rejected = append(rejected, epc)
		default:
			accepted = append(accepted, epc)
			items = append(items, &entity.ShipmentProduct{
				ID: uuid.New().String(), ShipmentID: s.ID, EPCNumber: epc, CreatedAt: now,
			})
		}
	}

	var res repository.BulkInsertResult
	err = uc.tx.Run(ctx, func(tx repository.Stores) error {
		var err error
		if res, err = tx.Shipments.AddProducts(ctx, items); err != nil {
			return err
		}
		assigned, err := tx.Products.AssignShipment(ctx, p.CompanyID, s.ID, accepted)
		if err != nil {
			return err
		}
		if assigned != int64(len(accepted)) {
			return &domain.Error{
				Kind:    domain.KindConflict,
				Message: "Some products were added to another shipment meanwhile, try again",
				Log:     fmt.Sprintf("shipment %s: assigned %d of %d products", s.ID, assigned, len(accepted)),
			}
		}
		return nil
	})
	if err != nil {
		return nil, upstream(err, "Failed to add products.", "shipment %s add products failed", id)
	}
	duplicates = append(duplicates, res.Duplicates...)

	uc.log.Info().
		Str("company_id", p.CompanyID).
		Str("shipment_id", s.ID).
		Int("inserted", res.Inserted).
		Int("duplicates", len(duplicates)).
		Int("rejected", len(rejected)).
		Msg("shipment products added")

	return &dto.BulkAddResponse{
		Success:    true,
		Message:    fmt.Sprintf("%d products added to shipment", res.Inserted),
		Inserted:   res.Inserted,
		Duplicates: duplicates,
		Rejected:   rejected,
	}, nil
}

// UpdateStatus avanza el estado. Al completar, los productos pasan a la bodega destino
// en la misma transacción que el cambio de estado.
func (uc *ShipmentUseCase) UpdateStatus(ctx context.Context, p access.Principal, id string, in dto.UpdateShipmentStatusRequest) (*dto.ShipmentStatusResponse, error) {
	if !entity.ValidShipmentStatus(in.Status) {
		return nil, domain.NewValidation("status", "unknown shipment status")
	}
	s, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if shipmentOrder[in.Status] <= shipmentOrder[s.Status] {
		return nil, domain.NewConflict(fmt.Sprintf("Cannot change status from %q to %q", s.Status, in.Status))
	}

	var moved int64
	err = uc.tx.Run(ctx, func(tx repository.Stores) error {
		if err := tx.Shipments.UpdateStatus(ctx, p.CompanyID, s.ID, in.Status); err != nil {
			return err
		}
		if in.Status != entity.ShipmentCompleted {
			return nil
		}
		var err error
		moved, err = tx.Products.MoveShipment(ctx, p.CompanyID, s.ID, s.DestinationWarehouseID)
		return err
	})
	if err != nil {
		return nil, upstream(err, "Failed to update shipment.", "shipment %s status change to %s failed", id, in.Status)
	}

	uc.log.Info().
		Str("company_id", p.CompanyID).
		Str("shipment_id", s.ID).
		Str("from", s.Status).
		Str("to", in.Status).
		Int64("moved", moved).
		Msg("shipment status changed")

	return &dto.ShipmentStatusResponse{
		Success: true,
		Message: "Shipment status updated",
		Status:  in.Status,
		Moved:   moved,
	}, nil
}

// load busca el envío y exige que el usuario vea el origen o el destino.
func (uc *ShipmentUseCase) load(ctx context.Context, p access.Principal, id string) (*entity.Shipment, error) {
	s, err := uc.shipments.GetByID(ctx, p.CompanyID, id)
	if err != nil {
		return nil, upstream(err, "Failed to get shipment.", "shipment lookup failed for %s", id)
	}
	if s == nil {
		return nil, domain.NewNotFound("Shipment not found")
	}
	if err := uc.scope.Authorize(p, s.WarehouseID); err != nil {
		if err := uc.scope.Authorize(p, s.DestinationWarehouseID); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (uc *ShipmentUseCase) checkDestination(ctx context.Context, p access.Principal, sourceID, destID string) error {
	if err := required("destination_warehouse_id", destID); err != nil {
		return err
	}
	if destID == sourceID {
		return domain.NewValidation("destination_warehouse_id", "destination must differ from the source warehouse")
	}
	w, err := uc.warehouses.GetByID(ctx, p.CompanyID, destID)
	if err != nil {
		return upstream(err, "Failed to get warehouse.", "destination lookup failed for %s", destID)
	}
	if w == nil {
		return domain.NewNotFound("Destination warehouse not found")
	}
	return nil
}
