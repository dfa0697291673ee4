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

// Tipos de búsqueda del catálogo.
const (
	SearchByCompany   = "company"
	SearchByWarehouse = "warehouse"
	SearchByZone      = "zone"
)

// ProductUseCase catálogo (ProductInfo) y unidades físicas (EPC).
type ProductUseCase struct {
	infos     repository.ProductInfoRepository
	products  repository.ProductRepository
	vendors   repository.VendorRepository
	scope     *access.ScopeResolver
	reader    audit.TagReader
	epcColumn string
	log       *logger.Logger
}

// NewProductUseCase epcColumn es la columna del archivo de alta masiva.
func NewProductUseCase(
	infos repository.ProductInfoRepository,
	products repository.ProductRepository,
	vendors repository.VendorRepository,
	scope *access.ScopeResolver,
	reader audit.TagReader,
	epcColumn string,
	log *logger.Logger,
) *ProductUseCase {
	if epcColumn == "" {
		epcColumn = "epcNumber"
	}
	return &ProductUseCase{
		infos:     infos,
		products:  products,
		vendors:   vendors,
		scope:     scope,
		reader:    reader,
		epcColumn: epcColumn,
		log:       log.Component("product"),
	}
}

// CreateInfo crea una entrada de catálogo; el proveedor, si viene, debe ser de la empresa.
func (uc *ProductUseCase) CreateInfo(ctx context.Context, p access.Principal, in dto.CreateProductInfoRequest) (*dto.ProductInfoResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	if err := uc.checkVendor(ctx, p, in.VendorID); err != nil {
		return nil, err
	}
	now := time.Now()
	info := &entity.ProductInfo{
		ID:                 uuid.New().String(),
		CompanyID:          p.CompanyID,
		VendorID:           in.VendorID,
		Name:               in.Name,
		Description:        in.Description,
		SKU:                in.SKU,
		Barcode:            in.Barcode,
		Price:              in.Price,
		CostPrice:          in.CostPrice,
		Quantity:           in.Quantity,
		LowQuantityTrigger: in.LowQuantityTrigger,
		TaxPercentage:      in.TaxPercentage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.infos.Create(ctx, info); err != nil {
		return nil, upstream(err, "Failed to create product.", "product info insert failed for company %s", p.CompanyID)
	}
	uc.log.Info().Str("company_id", p.CompanyID).Str("product_info_id", info.ID).Msg("product info created")
	out := dto.FromProductInfo(info)
	return &out, nil
}

// UpdateInfo aplica solo los campos presentes.
func (uc *ProductUseCase) UpdateInfo(ctx context.Context, p access.Principal, id string, in dto.UpdateProductInfoRequest) (*dto.ProductInfoResponse, error) {
	info, err := uc.infos.GetByID(ctx, p.CompanyID, id)
	if err != nil {
		return nil, upstream(err, "Failed to update product.", "product info lookup failed for %s", id)
	}
	if info == nil {
		return nil, domain.NewNotFound("Product not found")
	}
	if in.VendorID != nil {
		if err := uc.checkVendor(ctx, p, *in.VendorID); err != nil {
			return nil, err
		}
		info.VendorID = *in.VendorID
	}
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		info.Name = *in.Name
	}
	setIf(&info.Description, in.Description)
	setIf(&info.SKU, in.SKU)
	setIf(&info.Barcode, in.Barcode)
	setIf(&info.Price, in.Price)
	setIf(&info.CostPrice, in.CostPrice)
	setIf(&info.Quantity, in.Quantity)
	setIf(&info.LowQuantityTrigger, in.LowQuantityTrigger)
	setIf(&info.TaxPercentage, in.TaxPercentage)
	info.UpdatedAt = time.Now()

	if err := uc.infos.Update(ctx, info); err != nil {
		return nil, upstream(err, "Failed to update product.", "product info update failed for %s", id)
	}
	out := dto.FromProductInfo(info)
	return &out, nil
}

// SearchInfo catálogo por alcance. company usa la bodega del usuario si es de bodega;
// warehouse y zone pasan por el resolver de alcance.
func (uc *ProductUseCase) SearchInfo(ctx context.Context, p access.Principal, in dto.SearchProductInfoRequest, page pagination.Page) ([]dto.ProductInfoResponse, error) {
	filter := repository.ProductInfoFilter{CompanyID: p.CompanyID, IDs: in.ProductIDs}
	switch in.Type {
	case SearchByCompany, "":
		warehouseID, err := uc.scope.WarehouseFilter(p)
		if err != nil {
			return nil, err
		}
		filter.WarehouseID = warehouseID
	case SearchByWarehouse:
		if err := required("warehouse_id", in.WarehouseID); err != nil {
			return nil, err
		}
		if _, err := uc.scope.ResolveWarehouse(ctx, p, in.WarehouseID); err != nil {
			return nil, err
		}
		filter.WarehouseID = in.WarehouseID
	case SearchByZone:
		if err := required("zone_id", in.ZoneID); err != nil {
			return nil, err
		}
		zone, err := uc.scope.ResolveZone(ctx, p, in.ZoneID)
		if err != nil {
			return nil, err
		}
		filter.WarehouseID, filter.ZoneID = zone.WarehouseID, zone.ID
	default:
		return nil, domain.NewValidation("type", "type must be company, warehouse or zone")
	}
	items, err := uc.infos.List(ctx, filter, page)
	if err != nil {
		return nil, upstream(err, "Failed to get products.", "product info search failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromProductInfo), nil
}

// BulkAdd da de alta los EPC del archivo en la zona indicada. Los EPC ya registrados se
// omiten y se devuelven en Duplicates; cualquier otro error descarta el lote completo.
func (uc *ProductUseCase) BulkAdd(ctx context.Context, p access.Principal, zoneID, productInfoID string, file *audit.Upload) (*dto.BulkAddResponse, error) {
	if file == nil || file.Body == nil {
		return nil, domain.NewValidation("file", "No file uploaded")
	}
	if err := required("product_info_id", productInfoID); err != nil {
		return nil, err
	}
	zone, err := uc.scope.ResolveZone(ctx, p, zoneID)
	if err != nil {
		return nil, err
	}
	info, err := uc.infos.GetByID(ctx, p.CompanyID, productInfoID)
	if err != nil {
		return nil, upstream(err, "Failed to add products.", "product info lookup failed for %s", productInfoID)
	}
	if info == nil {
		return nil, domain.NewNotFound("Product not found")
	}
	epcs, err := uc.readEPCs(file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]*entity.Product, 0, len(epcs))
	for _, epc := range epcs {
		items = append(items, &entity.Product{
			ID:            uuid.New().String(),
			EPCNumber:     epc,
			CompanyID:     p.CompanyID,
			WarehouseID:   zone.WarehouseID,
			ZoneID:        zone.ID,
			ProductInfoID: info.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	res, err := uc.products.CreateMany(ctx, items)
	if err != nil {
		return nil, upstream(err, "Failed to add products.",
			"bulk insert of %d products into zone %s failed, batch rolled back", len(items), zone.ID)
	}

	uc.log.Info().
		Str("company_id", p.CompanyID).
		Str("warehouse_id", zone.WarehouseID).
		Str("zone_id", zone.ID).
		Int("inserted", res.Inserted).
		Int("duplicates", len(res.Duplicates)).
		Msg("products added")

	return &dto.BulkAddResponse{
		Success:    true,
		Message:    fmt.Sprintf("%d products added", res.Inserted),
		Inserted:   res.Inserted,
		Duplicates: res.Duplicates,
	}, nil
}

// ListEPC unidades visibles para el usuario.
func (uc *ProductUseCase) ListEPC(ctx context.Context, p access.Principal, page pagination.Page) ([]dto.ProductResponse, error) {
	return uc.listEPC(ctx, p, nil, page)
}

// LookupEPC detalle de los EPC indicados, limitado a la bodega del usuario si es de bodega.
func (uc *ProductUseCase) LookupEPC(ctx context.Context, p access.Principal, in dto.EPCLookupRequest, page pagination.Page) ([]dto.ProductResponse, error) {
	epcs := reconcile.Normalize(in.EPCNumbers)
	if len(epcs) == 0 {
		return nil, domain.NewValidation("epc_numbers", "epc_numbers is required")
	}
	return uc.listEPC(ctx, p, epcs, page)
}

func (uc *ProductUseCase) listEPC(ctx context.Context, p access.Principal, epcs []string, page pagination.Page) ([]dto.ProductResponse, error) {
	warehouseID, err := uc.scope.WarehouseFilter(p)
	if err != nil {
		return nil, err
	}
	items, err := uc.products.List(ctx, repository.ProductFilter{
		CompanyID: p.CompanyID, WarehouseID: warehouseID, EPCNumbers: epcs,
	}, page)
	if err != nil {
		return nil, upstream(err, "Failed to get products.", "product list failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromProductDetail), nil
}

func (uc *ProductUseCase) checkVendor(ctx context.Context, p access.Principal, vendorID string) error {
	if vendorID == "" {
		return nil
	}
	v, err := uc.vendors.GetByID(ctx, p.CompanyID, vendorID)
	if err != nil {
		return upstream(err, "Failed to get vendor.", "vendor lookup failed for %s", vendorID)
	}
	if v == nil {
		return domain.NewNotFound("Vendor not found")
	}
	return nil
}

func (uc *ProductUseCase) readEPCs(file *audit.Upload) ([]string, error) {
	epcs, err := uc.reader.Parse(file.Body, file.Filename, uc.epcColumn)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Unable to read file.",
			fmt.Sprintf("parse failed for %q", file.Filename))
	}
	epcs = reconcile.Normalize(epcs)
	if len(epcs) == 0 {
		return nil, domain.NewValidation("file", "File has no EPC numbers")
	}
	return epcs, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
