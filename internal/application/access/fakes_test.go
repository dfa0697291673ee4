package access_test

import (
	"context"
	"errors"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var errDB = errors.New("conexión perdida")

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	repository.UserRepository
	byID map[string]*entity.User
	err  error
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

type fakeRoles struct {
	repository.RoleRepository
	roles []*entity.Role
	err   error
}

func (f *fakeRoles) GetByName(_ context.Context, companyID, name string) (*entity.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.roles {
		if r.CompanyID == companyID && r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

type fakeWarehouses struct {
	items []*entity.Warehouse
}

func (f *fakeWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	f.items = append(f.items, w)
	return nil
}

func (f *fakeWarehouses) GetByID(_ context.Context, companyID, id string) (*entity.Warehouse, error) {
	for _, w := range f.items {
		if w.CompanyID == companyID && w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouses) List(_ context.Context, filter repository.WarehouseFilter, _ pagination.Page) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.items {
		if w.CompanyID == filter.CompanyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeZones struct {
	items []*entity.Zone
	err   error
}

func (f *fakeZones) Create(_ context.Context, z *entity.Zone) error {
	f.items = append(f.items, z)
	return nil
}

func (f *fakeZones) GetByID(_ context.Context, companyID, id string) (*entity.Zone, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, z := range f.items {
		if z.CompanyID == companyID && z.ID == id {
			return z, nil
		}
	}
	return nil, nil
}

func (f *fakeZones) GetInWarehouse(_ context.Context, companyID, warehouseID, id string) (*entity.Zone, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, z := range f.items {
		if z.CompanyID == companyID && z.WarehouseID == warehouseID && z.ID == id {
			return z, nil
		}
	}
	return nil, nil
}

func (f *fakeZones) List(context.Context, repository.ZoneFilter, pagination.Page) ([]*entity.Zone, error) {
	return f.items, nil
}
