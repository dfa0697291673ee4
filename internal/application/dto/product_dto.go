package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductInfoRequest entrada para crear una entrada de catálogo.
type CreateProductInfoRequest struct {
	VendorID           string          `json:"vendor_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	SKU                string          `json:"sku"`
	Barcode            string          `json:"barcode"`
	Price              decimal.Decimal `json:"price"`
	CostPrice          decimal.Decimal `json:"cost_price"`
	Quantity           int             `json:"quantity"`
	LowQuantityTrigger int             `json:"low_quantity_trigger"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
}

// UpdateProductInfoRequest actualización parcial; los campos nil no se tocan.
type UpdateProductInfoRequest struct {
	VendorID           *string          `json:"vendor_id"`
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	SKU                *string          `json:"sku"`
	Barcode            *string          `json:"barcode"`
	Price              *decimal.Decimal `json:"price"`
	CostPrice          *decimal.Decimal `json:"cost_price"`
	Quantity           *int             `json:"quantity"`
	LowQuantityTrigger *int             `json:"low_quantity_trigger"`
	TaxPercentage      *decimal.Decimal `json:"tax_percentage"`
}

// SearchProductInfoRequest búsqueda de catálogo por alcance: company | warehouse | zone.
type SearchProductInfoRequest struct {
	Type        string   `json:"type"`
	WarehouseID string   `json:"warehouse_id"`
	ZoneID      string   `json:"zone_id"`
	ProductIDs  []string `json:"product_ids"`
}

// ProductInfoResponse salida de una entrada de catálogo.
type ProductInfoResponse struct {
	ID                 string          `json:"id"`
	CompanyID          string          `json:"company_id"`
	VendorID           string          `json:"vendor_id,omitempty"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	SKU                string          `json:"sku"`
	Barcode            string          `json:"barcode"`
	Price              decimal.Decimal `json:"price"`
	CostPrice          decimal.Decimal `json:"cost_price"`
	Quantity           int             `json:"quantity"`
	LowQuantityTrigger int             `json:"low_quantity_trigger"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// EPCLookupRequest búsqueda de unidades por EPC.
type EPCLookupRequest struct {
	EPCNumbers []string `json:"epc_numbers"`
}

// ProductResponse unidad física con su detalle resuelto.
type ProductResponse struct {
	ID          string               `json:"id"`
	EPCNumber   string               `json:"epc_number"`
	WarehouseID string               `json:"warehouse_id"`
	ZoneID      string               `json:"zone_id"`
	ShipmentID  string               `json:"shipment_id,omitempty"`
	ProductInfo *ProductInfoResponse `json:"product_info,omitempty"`
	Vendor      *VendorResponse      `json:"vendor,omitempty"`
	Warehouse   *WarehouseResponse   `json:"warehouse,omitempty"`
	Zone        *ZoneResponse        `json:"zone,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// BulkAddResponse resultado del alta masiva de EPC.
type BulkAddResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Inserted   int      `json:"inserted"`
	Duplicates []string `json:"duplicates"`
	// Rejected EPC que no existen en la bodega de origen (solo envíos).
	Rejected []string `json:"rejected,omitempty"`
}
