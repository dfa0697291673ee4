package repository

import (
	"context"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

type VendorFilter struct {
	CompanyID string
}

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Lister[entity.Vendor, VendorFilter]

	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Vendor, error)
	// Update devuelve domain.ErrNotFound si el proveedor no existe en la empresa.
	Update(ctx context.Context, vendor *entity.Vendor) error
}
