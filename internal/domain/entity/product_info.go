package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductInfo entrada de catálogo (nivel SKU). Cada Product físico apunta a una.
type ProductInfo struct {
	ID                 string
	CompanyID          string
	VendorID           string // vacío = sin proveedor
	Name               string
	Description        string
	SKU                string
	Barcode            string
	Price              decimal.Decimal
	CostPrice          decimal.Decimal
	Quantity           int
	LowQuantityTrigger int
	TaxPercentage      decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
