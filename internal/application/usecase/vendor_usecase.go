package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

// VendorUseCase proveedores de la empresa.
type VendorUseCase struct {
	vendors repository.VendorRepository
}

func NewVendorUseCase(vendors repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{vendors: vendors}
}

func (uc *VendorUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &entity.Vendor{
		ID:        uuid.New().String(),
		CompanyID: p.CompanyID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.vendors.Create(ctx, v); err != nil {
		return nil, upstream(err, "Failed to create vendor.", "vendor insert failed for company %s", p.CompanyID)
	}
	out := dto.FromVendor(v)
	return &out, nil
}

func (uc *VendorUseCase) List(ctx context.Context, p access.Principal, page pagination.Page) ([]dto.VendorResponse, error) {
	items, err := uc.vendors.List(ctx, repository.VendorFilter{CompanyID: p.CompanyID}, page)
	if err != nil {
		return nil, upstream(err, "Failed to list vendors.", "vendor list failed for company %s", p.CompanyID)
	}
	return dto.MapAll(items, dto.FromVendor), nil
}

func (uc *VendorUseCase) Get(ctx context.Context, p access.Principal, vendorID string) (*dto.VendorResponse, error) {
	v, err := uc.vendors.GetByID(ctx, p.CompanyID, vendorID)
	if err != nil {
		return nil, upstream(err, "Failed to get vendor.", "vendor lookup failed for %s", vendorID)
	}
	if v == nil {
		return nil, domain.NewNotFound("Vendor not found")
	}
	out := dto.FromVendor(v)
	return &out, nil
}

// Update aplica solo los campos presentes; el nombre no puede quedar vacío.
func (uc *VendorUseCase) Update(ctx context.Context, p access.Principal, vendorID string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	v, err := uc.vendors.GetByID(ctx, p.CompanyID, vendorID)
	if err != nil {
		return nil, upstream(err, "Failed to update vendor.", "vendor lookup failed for %s", vendorID)
	}
	if v == nil {
		return nil, domain.NewNotFound("Vendor not found")
	}
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		v.Name = *in.Name
	}
	setIf(&v.Email, in.Email)
	setIf(&v.Phone, in.Phone)
	setIf(&v.Address, in.Address)
	v.UpdatedAt = time.Now()

	if err := uc.vendors.Update(ctx, v); err != nil {
		return nil, upstream(err, "Failed to update vendor.", "vendor update failed for %s", vendorID)
	}
	out := dto.FromVendor(v)
	return &out, nil
}
