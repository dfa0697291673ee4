package dto

import "github.com/jhoicas/epc-inventory-api/internal/domain/entity"

func FromCompany(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID: c.ID, BrandName: c.BrandName, Organization: c.Organization, GSTIN: c.GSTIN,
		Phone: c.Phone, Email: c.Email, Address: c.Address, AdminID: c.AdminID,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func FromWarehouse(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID: w.ID, CompanyID: w.CompanyID, Name: w.Name, MainPersonName: w.MainPersonName,
		Email: w.Email, Phone: w.Phone, Address: w.Address,
		CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt,
	}
}

func FromZone(z *entity.Zone) ZoneResponse {
	return ZoneResponse{
		ID: z.ID, CompanyID: z.CompanyID, WarehouseID: z.WarehouseID,
		QuantityOfProducts: z.ProductCount, CreatedAt: z.CreatedAt, UpdatedAt: z.UpdatedAt,
	}
}

func FromVendor(v *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID: v.ID, CompanyID: v.CompanyID, Name: v.Name, Email: v.Email, Phone: v.Phone,
		Address: v.Address, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt,
	}
}

func FromProductInfo(p *entity.ProductInfo) ProductInfoResponse {
	return ProductInfoResponse{
		ID: p.ID, CompanyID: p.CompanyID, VendorID: p.VendorID, Name: p.Name,
		Description: p.Description, SKU: p.SKU, Barcode: p.Barcode,
		Price: p.Price, CostPrice: p.CostPrice, Quantity: p.Quantity,
		LowQuantityTrigger: p.LowQuantityTrigger, TaxPercentage: p.TaxPercentage,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// FromProductDetail las relaciones ausentes quedan en nil.
func FromProductDetail(d *entity.ProductDetail) ProductResponse {
	out := ProductResponse{
		ID: d.ID, EPCNumber: d.EPCNumber, WarehouseID: d.WarehouseID, ZoneID: d.ZoneID,
		ShipmentID: d.ShipmentID, CreatedAt: d.CreatedAt,
	}
	if d.Info != nil {
		info := FromProductInfo(d.Info)
		out.ProductInfo = &info
	}
	if d.Vendor != nil {
		v := FromVendor(d.Vendor)
		out.Vendor = &v
	}
	if d.Warehouse != nil {
		w := FromWarehouse(d.Warehouse)
		out.Warehouse = &w
	}
	if d.Zone != nil {
		z := FromZone(d.Zone)
		out.Zone = &z
	}
	return out
}

func FromRole(r *entity.Role) RoleResponse {
	return RoleResponse{
		ID: r.ID, CompanyID: r.CompanyID, Name: r.Name, Paths: r.Paths,
		Permissions: r.Permissions, AllowUpdate: r.AllowUpdate,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID: u.ID, CompanyID: u.CompanyID, Email: u.Email, Phone: u.Phone,
		BranchPath: string(u.Branch.Kind()), BranchID: u.Branch.ID(), Role: u.Role,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}

func FromShipment(s *entity.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID: s.ID, CompanyID: s.CompanyID, WarehouseID: s.WarehouseID,
		DestinationWarehouseID: s.DestinationWarehouseID, Status: s.Status,
		Schedule: s.Schedule, ProductCount: s.ProductCount,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

// MapAll aplica f a cada elemento; devuelve slice vacío (no nil) para listas vacías.
func MapAll[E any, R any](items []*E, f func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}
