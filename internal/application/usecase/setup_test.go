package usecase_test

import (
	"strings"
	"time"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

const (
	companyID = "c1"
	otherCo   = "c2"
	whA       = "wA"
	whB       = "wB"
	zoneA     = "zA"
	zoneB     = "zB"
)

var (
	jwtCfg   = usecase.JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "test"}
	allPages = pagination.DefaultConfig().Resolve("100", "1", "asc")

	companyUser = access.Principal{UserID: "u1", Role: entity.RoleAdmin, CompanyID: companyID, Branch: entity.CompanyBranch(companyID)}
	whAUser     = access.Principal{UserID: "u2", Role: "clerk", CompanyID: companyID, Branch: entity.WarehouseBranch(whA)}
)

// seeded empresa c1 con bodegas A y B (una zona cada una) y una bodega de otra empresa.
func seeded() *memDB {
	db := newMemDB()
	now := time.Now()
	db.companies = []*entity.Company{{ID: companyID, BrandName: "ACME"}, {ID: otherCo, BrandName: "Other"}}
	db.warehouses = []*entity.Warehouse{
		{ID: whA, CompanyID: companyID, Name: "A", CreatedAt: now},
		{ID: whB, CompanyID: companyID, Name: "B", CreatedAt: now},
		{ID: "wX", CompanyID: otherCo, Name: "X", CreatedAt: now},
	}
	db.zones = []*entity.Zone{
		{ID: zoneA, CompanyID: companyID, WarehouseID: whA},
		{ID: zoneB, CompanyID: companyID, WarehouseID: whB},
	}
	return db
}

func scopeOf(db *memDB) *access.ScopeResolver {
	return access.NewScopeResolver(&memWarehouses{db}, &memZones{db})
}

func upload(lines ...string) *audit.Upload {
	return &audit.Upload{Filename: "tags.csv", Body: strings.NewReader(strings.Join(lines, "\n"))}
}

var nop = logger.Nop()
