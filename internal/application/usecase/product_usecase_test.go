package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

func newProductUC(db *memDB, reader lineReader) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(&memInfos{db}, &memProducts{db}, &memVendors{db}, scopeOf(db), reader, "epcNumber", nop)
}

func withInfo(db *memDB) *memDB {
	db.infos = append(db.infos, &entity.ProductInfo{ID: "pi1", CompanyID: companyID, Name: "Camisa", Price: decimal.NewFromInt(10)})
	return db
}

func TestProductUseCase_BulkAdd(t *testing.T) {
	db := withInfo(seeded())
	db.products = append(db.products, &entity.ProductDetail{Product: entity.Product{
		ID: "p0", EPCNumber: "E2", CompanyID: companyID, WarehouseID: whA, ZoneID: zoneA, ProductInfoID: "pi1",
	}})
	uc := newProductUC(db, lineReader{})

	out, err := uc.BulkAdd(context.Background(), companyUser, zoneB, "pi1", upload("epcNumber", "E1", "E2", "E3", "E1", ""))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Inserted)
	assert.Equal(t, []string{"E2"}, out.Duplicates)

	var added []*entity.ProductDetail
	for _, p := range db.products {
		if p.ZoneID == zoneB {
			added = append(added, p)
		}
	}
	require.Len(t, added, 2)
	assert.Equal(t, whB, added[0].WarehouseID, "la bodega sale de la zona resuelta")
}

func TestProductUseCase_BulkAdd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		p      func() (string, string)
		file   bool
		reader lineReader
		kind   domain.Kind
	}{
		{"sin archivo", func() (string, string) { return zoneA, "pi1" }, false, lineReader{}, domain.KindValidation},
		{"zona de otra bodega", func() (string, string) { return zoneB, "pi1" }, true, lineReader{}, domain.KindNotFound},
		{"catálogo inexistente", func() (string, string) { return zoneA, "nope" }, true, lineReader{}, domain.KindNotFound},
		{"archivo ilegible", func() (string, string) { return zoneA, "pi1" }, true, lineReader{err: errDB}, domain.KindUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := withInfo(seeded())
			uc := newProductUC(db, tt.reader)
			zone, info := tt.p()
			var file = upload("epcNumber", "E9")
			if !tt.file {
				file = nil
			}
			_, err := uc.BulkAdd(context.Background(), whAUser, zone, info, file)
			assert.Equal(t, tt.kind, domain.KindOf(err))
			assert.Empty(t, db.products)
		})
	}
}

func TestProductUseCase_BulkAddFalloDescartaElLote(t *testing.T) {
	db := withInfo(seeded())
	db.failInsert = errDB
	uc := newProductUC(db, lineReader{})

	out, err := uc.BulkAdd(context.Background(), companyUser, zoneA, "pi1", upload("epcNumber", "E1", "E2"))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
	assert.ErrorIs(t, err, errDB)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "Failed to add products.", de.Message)
	assert.Contains(t, de.Log, "bulk insert of 2 products")
	assert.Contains(t, de.Log, "rolled back")
	assert.NotContains(t, de.Log, "after")
	assert.Empty(t, db.products)
}

func TestProductUseCase_InfoCreateUpdate(t *testing.T) {
	db := seeded()
	db.vendors = append(db.vendors, &entity.Vendor{ID: "v1", CompanyID: companyID, Name: "V"})
	uc := newProductUC(db, lineReader{})
	ctx := context.Background()

	_, err := uc.CreateInfo(ctx, companyUser, dto.CreateProductInfoRequest{Name: "X", VendorID: "ghost"})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	created, err := uc.CreateInfo(ctx, companyUser, dto.CreateProductInfoRequest{
		Name: "Pantalón", VendorID: "v1", Price: decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	name, qty := "Pantalón azul", 7
	updated, err := uc.UpdateInfo(ctx, companyUser, created.ID, dto.UpdateProductInfoRequest{Name: &name, Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, "Pantalón azul", updated.Name)
	assert.Equal(t, 7, updated.Quantity)
	assert.True(t, decimal.RequireFromString("19.99").Equal(updated.Price), "los campos ausentes no cambian")
	assert.Equal(t, "v1", updated.VendorID)

	_, err = uc.UpdateInfo(ctx, companyUser, "ghost", dto.UpdateProductInfoRequest{Name: &name})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestProductUseCase_SearchInfo(t *testing.T) {
	db := withInfo(seeded())
	db.infos = append(db.infos, &entity.ProductInfo{ID: "pi2", CompanyID: companyID, Name: "Zapato"})
	db.products = append(db.products,
		&entity.ProductDetail{Product: entity.Product{EPCNumber: "E1", CompanyID: companyID, WarehouseID: whA, ZoneID: zoneA, ProductInfoID: "pi1"}},
		&entity.ProductDetail{Product: entity.Product{EPCNumber: "E2", CompanyID: companyID, WarehouseID: whB, ZoneID: zoneB, ProductInfoID: "pi2"}},
	)
	uc := newProductUC(db, lineReader{})
	ctx := context.Background()

	all, err := uc.SearchInfo(ctx, companyUser, dto.SearchProductInfoRequest{Type: "company"}, allPages)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := uc.SearchInfo(ctx, whAUser, dto.SearchProductInfoRequest{Type: "company"}, allPages)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "pi1", own[0].ID)

	byZone, err := uc.SearchInfo(ctx, companyUser, dto.SearchProductInfoRequest{Type: "zone", ZoneID: zoneB}, allPages)
	require.NoError(t, err)
	require.Len(t, byZone, 1)
	assert.Equal(t, "pi2", byZone[0].ID)

	_, err = uc.SearchInfo(ctx, whAUser, dto.SearchProductInfoRequest{Type: "warehouse", WarehouseID: whB}, allPages)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = uc.SearchInfo(ctx, companyUser, dto.SearchProductInfoRequest{Type: "galaxy"}, allPages)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestProductUseCase_LookupEPC(t *testing.T) {
	db := withInfo(seeded())
	db.products = append(db.products,
		&entity.ProductDetail{Product: entity.Product{EPCNumber: "E1", CompanyID: companyID, WarehouseID: whA}},
		&entity.ProductDetail{Product: entity.Product{EPCNumber: "E2", CompanyID: companyID, WarehouseID: whB}},
		&entity.ProductDetail{Product: entity.Product{EPCNumber: "E3", CompanyID: otherCo, WarehouseID: "wX"}},
	)
	uc := newProductUC(db, lineReader{})
	ctx := context.Background()

	got, err := uc.LookupEPC(ctx, companyUser, dto.EPCLookupRequest{EPCNumbers: []string{"E1", "E2", "E3"}}, allPages)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = uc.LookupEPC(ctx, whAUser, dto.EPCLookupRequest{EPCNumbers: []string{"E1", "E2"}}, allPages)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "E1", got[0].EPCNumber)

	_, err = uc.LookupEPC(ctx, companyUser, dto.EPCLookupRequest{EPCNumbers: []string{" "}}, allPages)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	list, err := uc.ListEPC(ctx, whAUser, allPages)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
