package usecase_test

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
)

var errDB = errors.New("conexión perdida")

// ──────────────────────────────────────────────────────────────────────────────
// Base de datos en memoria compartida por todos los repos fake
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	companies        []*entity.Company
	warehouses       []*entity.Warehouse
	zones            []*entity.Zone
	vendors          []*entity.Vendor
	infos            []*entity.ProductInfo
	products         []*entity.ProductDetail
	roles            []*entity.Role
	users            []*entity.User
	shipments        []*entity.Shipment
	shipmentProducts []*entity.ShipmentProduct

	failMove   error
	failInsert error
	// onAssign corre antes de AssignShipment (simula otra petición concurrente).
	onAssign func()
}

func newMemDB() *memDB { return &memDB{} }

func (db *memDB) stores() repository.Stores {
	return repository.Stores{
		Companies: &memCompanies{db},
		Roles:     &memRoles{db},
		Users:     &memUsers{db},
		Shipments: &memShipments{db},
		Products:  &memProducts{db},
	}
}

func clone[T any](items []*T) []*T {
	out := make([]*T, len(items))
	for i, it := range items {
		c := *it
		out[i] = &c
	}
	return out
}

// memTx restaura el estado previo si fn falla.
type memTx struct{ db *memDB }

func (t memTx) Run(_ context.Context, fn func(tx repository.Stores) error) error {
	db := t.db
	companies, roles, users := clone(db.companies), clone(db.roles), clone(db.users)
	shipments, sp, products := clone(db.shipments), clone(db.shipmentProducts), clone(db.products)
	if err := fn(db.stores()); err != nil {
		db.companies, db.roles, db.users = companies, roles, users
		db.shipments, db.shipmentProducts, db.products = shipments, sp, products
		return err
	}
	return nil
}

func window[T any](items []*T, p pagination.Page) []*T {
	if p.Limit == 0 {
		return items
	}
	if p.Skip >= len(items) {
		return nil
	}
	end := p.Skip + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Skip:end]
}

type memCompanies struct{ db *memDB }

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.db.companies = append(m.db.companies, c)
	return nil
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range m.db.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) SetAdmin(_ context.Context, companyID, userID string) error {
	for _, c := range m.db.companies {
		if c.ID == companyID {
			c.AdminID = userID
			return nil
		}
	}
	return domain.ErrNotFound
}

type memWarehouses struct{ db *memDB }

func (m *memWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	m.db.warehouses = append(m.db.warehouses, w)
	return nil
}

func (m *memWarehouses) GetByID(_ context.Context, companyID, id string) (*entity.Warehouse, error) {
	for _, w := range m.db.warehouses {
		if w.CompanyID == companyID && w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (m *memWarehouses) List(_ context.Context, f repository.WarehouseFilter, p pagination.Page) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range m.db.warehouses {
		if w.CompanyID == f.CompanyID && (f.WarehouseID == "" || w.ID == f.WarehouseID) {
			out = append(out, w)
		}
	}
	return window(out, p), nil
}

type memZones struct{ db *memDB }

func (m *memZones) Create(_ context.Context, z *entity.Zone) error {
	m.db.zones = append(m.db.zones, z)
	return nil
}

func (m *memZones) GetByID(_ context.Context, companyID, id string) (*entity.Zone, error) {
	for _, z := range m.db.zones {
		if z.CompanyID == companyID && z.ID == id {
			return z, nil
		}
	}
	return nil, nil
}

func (m *memZones) GetInWarehouse(_ context.Context, companyID, warehouseID, id string) (*entity.Zone, error) {
	for _, z := range m.db.zones {
		if z.CompanyID == companyID && z.WarehouseID == warehouseID && z.ID == id {
			return z, nil
		}
	}
	return nil, nil
}

func (m *memZones) List(_ context.Context, f repository.ZoneFilter, p pagination.Page) ([]*entity.Zone, error) {
	var out []*entity.Zone
	for _, z := range m.db.zones {
		if z.CompanyID == f.CompanyID && z.WarehouseID == f.WarehouseID {
			out = append(out, z)
		}
	}
	return window(out, p), nil
}

type memVendors struct{ db *memDB }

func (m *memVendors) Create(_ context.Context, v *entity.Vendor) error {
	m.db.vendors = append(m.db.vendors, v)
	return nil
}

func (m *memVendors) GetByID(_ context.Context, companyID, id string) (*entity.Vendor, error) {
	for _, v := range m.db.vendors {
		if v.CompanyID == companyID && v.ID == id {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memVendors) Update(_ context.Context, v *entity.Vendor) error {
	for i, it := range m.db.vendors {
		if it.CompanyID == v.CompanyID && it.ID == v.ID {
			m.db.vendors[i] = v
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memVendors) List(_ context.Context, f repository.VendorFilter, p pagination.Page) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range m.db.vendors {
		if v.CompanyID == f.CompanyID {
			out = append(out, v)
		}
	}
	return window(out, p), nil
}

type memInfos struct{ db *memDB }

func (m *memInfos) Create(_ context.Context, p *entity.ProductInfo) error {
	m.db.infos = append(m.db.infos, p)
	return nil
}

func (m *memInfos) GetByID(_ context.Context, companyID, id string) (*entity.ProductInfo, error) {
	for _, p := range m.db.infos {
		if p.CompanyID == companyID && p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memInfos) Update(_ context.Context, p *entity.ProductInfo) error {
	for i, it := range m.db.infos {
		if it.CompanyID == p.CompanyID && it.ID == p.ID {
			m.db.infos[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

// List con bodega/zona solo devuelve entradas con unidades en esa ubicación.
func (m *memInfos) List(_ context.Context, f repository.ProductInfoFilter, p pagination.Page) ([]*entity.ProductInfo, error) {
	ids := map[string]bool{}
	for _, id := range f.IDs {
		ids[id] = true
	}
	var out []*entity.ProductInfo
	for _, info := range m.db.infos {
		if info.CompanyID != f.CompanyID || (len(ids) > 0 && !ids[info.ID]) {
			continue
		}
		if f.WarehouseID != "" && !m.stocked(info.ID, f.WarehouseID, f.ZoneID) {
			continue
		}
		out = append(out, info)
	}
	return window(out, p), nil
}

func (m *memInfos) stocked(infoID, warehouseID, zoneID string) bool {
	for _, p := range m.db.products {
		if p.ProductInfoID == infoID && p.WarehouseID == warehouseID && (zoneID == "" || p.ZoneID == zoneID) {
			return true
		}
	}
	return false
}

type memProducts struct{ db *memDB }

func (m *memProducts) CreateMany(_ context.Context, items []*entity.Product) (repository.BulkInsertResult, error) {
	res := repository.BulkInsertResult{Duplicates: []string{}}
	if m.db.failInsert != nil {
		return repository.BulkInsertResult{}, m.db.failInsert
	}
	for _, p := range items {
		if m.exists(p.EPCNumber) {
			res.Duplicates = append(res.Duplicates, p.EPCNumber)
			continue
		}
		m.db.products = append(m.db.products, &entity.ProductDetail{Product: *p})
		res.Inserted++
	}
	return res, nil
}

func (m *memProducts) exists(epc string) bool {
	for _, p := range m.db.products {
		if p.EPCNumber == epc {
			return true
		}
	}
	return false
}

func (m *memProducts) List(_ context.Context, f repository.ProductFilter, p pagination.Page) ([]*entity.ProductDetail, error) {
	want := map[string]bool{}
	for _, e := range f.EPCNumbers {
		want[e] = true
	}
	var out []*entity.ProductDetail
	for _, d := range m.db.products {
		if d.CompanyID != f.CompanyID || (f.WarehouseID != "" && d.WarehouseID != f.WarehouseID) {
			continue
		}
		if len(want) > 0 && !want[d.EPCNumber] {
			continue
		}
		out = append(out, d)
	}
	return window(out, p), nil
}

func (m *memProducts) FindDetailsByEPC(ctx context.Context, companyID string, epcs []string) ([]*entity.ProductDetail, error) {
	return m.List(ctx, repository.ProductFilter{CompanyID: companyID, EPCNumbers: epcs}, pagination.Page{})
}

func (m *memProducts) AssignShipment(_ context.Context, companyID, shipmentID string, epcs []string) (int64, error) {
	if m.db.onAssign != nil {
		m.db.onAssign()
	}
	want := map[string]bool{}
	for _, e := range epcs {
		want[e] = true
	}
	var n int64
	for _, d := range m.db.products {
		if d.CompanyID == companyID && want[d.EPCNumber] && d.ShipmentID == "" {
			d.ShipmentID = shipmentID
			n++
		}
	}
	return n, nil
}

func (m *memProducts) MoveShipment(_ context.Context, companyID, shipmentID, warehouseID string) (int64, error) {
	if m.db.failMove != nil {
		return 0, m.db.failMove
	}
	var n int64
	for _, d := range m.db.products {
		if d.CompanyID == companyID && d.ShipmentID == shipmentID {
			d.WarehouseID, d.ZoneID, d.ShipmentID = warehouseID, "", ""
			n++
		}
	}
	return n, nil
}

type memRoles struct{ db *memDB }

func (m *memRoles) Create(_ context.Context, r *entity.Role) error {
	for _, it := range m.db.roles {
		if it.CompanyID == r.CompanyID && it.Name == r.Name {
			return domain.ErrDuplicate
		}
	}
	m.db.roles = append(m.db.roles, r)
	return nil
}

func (m *memRoles) GetByName(_ context.Context, companyID, name string) (*entity.Role, error) {
	for _, r := range m.db.roles {
		if r.CompanyID == companyID && r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRoles) GetByID(_ context.Context, companyID, id string) (*entity.Role, error) {
	for _, r := range m.db.roles {
		if r.CompanyID == companyID && r.ID == id {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memRoles) Update(_ context.Context, r *entity.Role) error {
	for i, it := range m.db.roles {
		if it.CompanyID == r.CompanyID && it.ID == r.ID {
			m.db.roles[i] = r
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRoles) List(_ context.Context, f repository.RoleFilter, p pagination.Page) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range m.db.roles {
		if r.CompanyID == f.CompanyID {
			out = append(out, r)
		}
	}
	return window(out, p), nil
}

type memUsers struct{ db *memDB }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, it := range m.db.users {
		if strings.EqualFold(it.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.db.users = append(m.db.users, u)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.db.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetInCompany(_ context.Context, companyID, id string) (*entity.User, error) {
	for _, u := range m.db.users {
		if u.CompanyID == companyID && u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	for _, it := range m.db.users {
		if it.ID != u.ID && strings.EqualFold(it.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	for i, it := range m.db.users {
		if it.CompanyID == u.CompanyID && it.ID == u.ID {
			m.db.users[i] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memUsers) List(_ context.Context, f repository.UserFilter, p pagination.Page) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.db.users {
		if u.CompanyID != f.CompanyID || (f.Role != "" && u.Role != f.Role) {
			continue
		}
		if f.BranchKind != "" && u.Branch.Kind() != f.BranchKind {
			continue
		}
		if f.BranchID != "" && u.Branch.ID() != f.BranchID {
			continue
		}
		out = append(out, u)
	}
	return window(out, p), nil
}

type memShipments struct{ db *memDB }

func (m *memShipments) Create(_ context.Context, s *entity.Shipment) error {
	m.db.shipments = append(m.db.shipments, s)
	return nil
}

func (m *memShipments) GetByID(_ context.Context, companyID, id string) (*entity.Shipment, error) {
	for _, s := range m.db.shipments {
		if s.CompanyID == companyID && s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memShipments) Update(_ context.Context, s *entity.Shipment) error {
	for i, it := range m.db.shipments {
		if it.CompanyID == s.CompanyID && it.ID == s.ID {
			m.db.shipments[i] = s
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memShipments) UpdateStatus(_ context.Context, companyID, id, status string) error {
	for _, s := range m.db.shipments {
		if s.CompanyID == companyID && s.ID == id {
			s.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memShipments) AddProducts(_ context.Context, items []*entity.ShipmentProduct) (repository.BulkInsertResult, error) {
	res := repository.BulkInsertResult{Duplicates: []string{}}
	for _, it := range items {
		dup := false
		for _, sp := range m.db.shipmentProducts {
			if sp.ShipmentID == it.ShipmentID && sp.EPCNumber == it.EPCNumber {
				dup = true
				break
			}
		}
		if dup {
			res.Duplicates = append(res.Duplicates, it.EPCNumber)
			continue
		}
		m.db.shipmentProducts = append(m.db.shipmentProducts, it)
		res.Inserted++
	}
	return res, nil
}

func (m *memShipments) List(_ context.Context, f repository.ShipmentFilter, p pagination.Page) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for _, s := range m.db.shipments {
		if s.CompanyID != f.CompanyID || (f.Status != "" && s.Status != f.Status) {
			continue
		}
		if f.WarehouseID != "" && s.WarehouseID != f.WarehouseID && s.DestinationWarehouseID != f.WarehouseID {
			continue
		}
		out = append(out, s)
	}
	return window(out, p), nil
}

// csvRecords primera línea = cabecera; valores separados por coma, sin comillas.
type csvRecords struct{}

func (csvRecords) Records(r io.Reader, _ string) ([]map[string]string, error) {
	var (
		header []string
		out    []map[string]string
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		cols := strings.Split(sc.Text(), ",")
		if header == nil {
			header = cols
			continue
		}
		rec := map[string]string{}
		for i, h := range header {
			if i < len(cols) {
				rec[strings.ToLower(strings.TrimSpace(h))] = strings.TrimSpace(cols[i])
			}
		}
		out = append(out, rec)
	}
	return out, sc.Err()
}

// lineReader primera línea = encabezado, resto = un valor por línea.
type lineReader struct{ err error }

func (l lineReader) Parse(r io.Reader, _, _ string) ([]string, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []string
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		if first {
			first = false
			continue
		}
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}
