package access_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

const (
	companyA = "company-a"
	companyB = "company-b"
	w1       = "warehouse-1"
	w2       = "warehouse-2"
)

func companyUser() access.Principal {
	return access.Principal{UserID: "u-admin", Role: "admin", CompanyID: companyA, Branch: entity.CompanyBranch(companyA)}
}

func warehouseUser(w string) access.Principal {
	return access.Principal{UserID: "u-w", Role: "picker", CompanyID: companyA, Branch: entity.WarehouseBranch(w)}
}

func newScope() *access.ScopeResolver {
	warehouses := &fakeWarehouses{items: []*entity.Warehouse{
		{ID: w1, CompanyID: companyA},
		{ID: w2, CompanyID: companyA},
		{ID: "warehouse-b", CompanyID: companyB},
	}}
	zones := &fakeZones{items: []*entity.Zone{
		{ID: "zone-1", CompanyID: companyA, WarehouseID: w1},
		{ID: "zone-2", CompanyID: companyA, WarehouseID: w2},
	}}
	return access.NewScopeResolver(warehouses, zones)
}

// ──────────────────────────────────────────────────────────────────────────────
// IdentityResolver
// ──────────────────────────────────────────────────────────────────────────────

func TestIdentityResolver_Resolve(t *testing.T) {
	users := &fakeUsers{byID: map[string]*entity.User{
		"u1": {ID: "u1", CompanyID: companyA, Role: "admin", Branch: entity.WarehouseBranch(w1)},
	}}
	r := access.NewIdentityResolver(users)

	p, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, companyA, p.CompanyID)
	assert.Equal(t, "admin", p.Role)
	assert.Equal(t, entity.WarehouseBranch(w1), p.Branch)
	assert.False(t, p.IsCompanyScoped())
}

func TestIdentityResolver_UnknownUser(t *testing.T) {
	r := access.NewIdentityResolver(&fakeUsers{})

	_, err := r.Resolve(context.Background(), "ghost")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))

	_, err = r.Resolve(context.Background(), "")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestIdentityResolver_StoreFailure(t *testing.T) {
	r := access.NewIdentityResolver(&fakeUsers{err: errDB})

	_, err := r.Resolve(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
	assert.ErrorIs(t, err, errDB)
}

// ──────────────────────────────────────────────────────────────────────────────
// PermissionGate
// ──────────────────────────────────────────────────────────────────────────────

func TestPermissionGate(t *testing.T) {
	roles := &fakeRoles{roles: []*entity.Role{
		{CompanyID: companyA, Name: "admin", Paths: []string{"*"}},
		{CompanyID: companyA, Name: "auditor", Paths: []string{"/a", "/api/audits/scan/:uuid"}},
		{CompanyID: companyB, Name: "clerk", Paths: []string{"*"}},
	}}
	gate := access.NewPermissionGate(roles)
	ctx := context.Background()

	tests := []struct {
		name    string
		company string
		role    string
		path    string
		allowed bool
	}{
		{"comodín permite cualquier ruta", companyA, "admin", "/api/cualquier/cosa", true},
		{"ruta exacta", companyA, "auditor", "/a", true},
		{"otra ruta denegada", companyA, "auditor", "/b", false},
		{"sin coincidencia por prefijo", companyA, "auditor", "/a/b", false},
		{"plantilla de ruta", companyA, "auditor", "/api/audits/scan/:uuid", true},
		{"rol de otra empresa", companyA, "clerk", "/a", false},
		{"rol inexistente", companyA, "nadie", "/a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Authorize(ctx, tt.company, tt.role, tt.path)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrForbidden)
		})
	}
}

func TestPermissionGate_RoleNotFoundKeepsInternalLog(t *testing.T) {
	gate := access.NewPermissionGate(&fakeRoles{})

	err := gate.Authorize(context.Background(), companyA, "ghost", "/a")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Forbidden", de.Message)
	assert.Contains(t, de.Log, "role not found")
}

func TestPermissionGate_StoreFailure(t *testing.T) {
	gate := access.NewPermissionGate(&fakeRoles{err: errDB})

	err := gate.Authorize(context.Background(), companyA, "admin", "/a")
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// ScopeResolver
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_Authorize(t *testing.T) {
	s := newScope()

	assert.NoError(t, s.Authorize(companyUser(), w2), "empresa puede pedir cualquier bodega")
	assert.NoError(t, s.Authorize(warehouseUser(w1), w1))

	err := s.Authorize(warehouseUser(w1), w2)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	invalid := access.Principal{UserID: "u", CompanyID: companyA}
	assert.ErrorIs(t, s.Authorize(invalid, w1), domain.ErrForbidden, "sucursal inválida nunca se permite")
}

func TestScope_ResolveWarehouse(t *testing.T) {
	s := newScope()
	ctx := context.Background()

	w, err := s.ResolveWarehouse(ctx, companyUser(), w2)
	require.NoError(t, err)
	assert.Equal(t, w2, w.ID)

	_, err = s.ResolveWarehouse(ctx, warehouseUser(w1), w2)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = s.ResolveWarehouse(ctx, companyUser(), "warehouse-b")
	assert.ErrorIs(t, err, domain.ErrNotFound, "bodega de otra empresa no existe para este tenant")
}

func TestScope_ResolveZone_WarehouseUserIsPinned(t *testing.T) {
	s := newScope()
	ctx := context.Background()

	z, err := s.ResolveZone(ctx, warehouseUser(w1), "zone-1")
	require.NoError(t, err)
	assert.Equal(t, w1, z.WarehouseID)

	_, err = s.ResolveZone(ctx, warehouseUser(w1), "zone-2")
	assert.ErrorIs(t, err, domain.ErrNotFound, "la zona de otra bodega no es visible")
}

func TestScope_ResolveZone_CompanyUserTrustsZoneWarehouse(t *testing.T) {
	s := newScope()

	z, err := s.ResolveZone(context.Background(), companyUser(), "zone-2")
	require.NoError(t, err)
	assert.Equal(t, w2, z.WarehouseID)
}

func TestScope_ResolveZone_InvalidBranch(t *testing.T) {
	s := newScope()

	_, err := s.ResolveZone(context.Background(), access.Principal{CompanyID: companyA}, "zone-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestScope_WarehouseFilter(t *testing.T) {
	s := newScope()

	w, err := s.WarehouseFilter(warehouseUser(w1))
	require.NoError(t, err)
	assert.Equal(t, w1, w)

	w, err = s.WarehouseFilter(companyUser())
	require.NoError(t, err)
	assert.Empty(t, w)

	_, err = s.WarehouseFilter(access.Principal{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
