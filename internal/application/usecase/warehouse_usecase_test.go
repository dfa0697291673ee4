package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
)

func newWarehouseUC(db *memDB) *usecase.WarehouseUseCase {
	return usecase.NewWarehouseUseCase(&memWarehouses{db}, &memZones{db}, scopeOf(db), nop)
}

func TestWarehouseUseCase_Create(t *testing.T) {
	db := seeded()
	uc := newWarehouseUC(db)

	out, err := uc.Create(context.Background(), companyUser, dto.CreateWarehouseRequest{Name: "C"})
	require.NoError(t, err)
	assert.Equal(t, companyID, out.CompanyID)
	assert.Len(t, db.warehouses, 4)

	_, err = uc.Create(context.Background(), whAUser, dto.CreateWarehouseRequest{Name: "D"})
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = uc.Create(context.Background(), companyUser, dto.CreateWarehouseRequest{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestWarehouseUseCase_ListIsScoped(t *testing.T) {
	uc := newWarehouseUC(seeded())

	all, err := uc.List(context.Background(), companyUser, allPages)
	require.NoError(t, err)
	assert.Len(t, all, 2, "nunca aparecen bodegas de otra empresa")

	own, err := uc.List(context.Background(), whAUser, allPages)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, whA, own[0].ID)
}

func TestWarehouseUseCase_Get(t *testing.T) {
	db := seeded()
	uc := newWarehouseUC(db)

	out := uc.Get(db.warehouses[0])
	assert.Equal(t, whA, out.ID)
	assert.Equal(t, "A", out.Name)
}

func TestWarehouseUseCase_Zones(t *testing.T) {
	db := seeded()
	uc := newWarehouseUC(db)
	ctx := context.Background()
	wA, wB := db.warehouses[0], db.warehouses[1]

	z, err := uc.CreateZone(ctx, whAUser, wA)
	require.NoError(t, err)
	assert.Equal(t, whA, z.WarehouseID)
	assert.Equal(t, companyID, z.CompanyID)

	zones, err := uc.ListZones(ctx, companyUser, wA, allPages)
	require.NoError(t, err)
	assert.Len(t, zones, 2)

	_, err = uc.GetZone(wA, db.zones[1])
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err), "la zona pertenece a otra bodega")

	got, err := uc.GetZone(wB, db.zones[1])
	require.NoError(t, err)
	assert.Equal(t, zoneB, got.ID)
}

func TestVendorUseCase(t *testing.T) {
	db := seeded()
	uc := usecase.NewVendorUseCase(&memVendors{db})
	ctx := context.Background()

	v, err := uc.Create(ctx, companyUser, dto.CreateVendorRequest{Name: "Proveedor"})
	require.NoError(t, err)

	got, err := uc.Get(ctx, companyUser, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Proveedor", got.Name)

	other := companyUser
	other.CompanyID = otherCo
	_, err = uc.Get(ctx, other, v.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	list, err := uc.List(ctx, companyUser, allPages)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
