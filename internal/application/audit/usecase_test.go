package audit_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	appaudit "github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memAudits struct {
	items   []*entity.Audit
	failGet error
}

func (m *memAudits) Create(_ context.Context, a *entity.Audit) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memAudits) GetByUUID(_ context.Context, companyID, id string) (*entity.Audit, error) {
	if m.failGet != nil {
		return nil, m.failGet
	}
	for _, a := range m.items {
		if a.CompanyID == companyID && a.UUID == id {
			return a, nil
		}
	}
	return nil, nil
}

type memProducts struct {
	repository.ProductRepository
	items  []*entity.ProductDetail
	called int
}

func (m *memProducts) FindDetailsByEPC(_ context.Context, companyID string, epcs []string) ([]*entity.ProductDetail, error) {
	m.called++
	want := map[string]bool{}
	for _, e := range epcs {
		want[e] = true
	}
	var out []*entity.ProductDetail
	for _, p := range m.items {
		if p.CompanyID == companyID && want[p.EPCNumber] {
			out = append(out, p)
		}
	}
	return out, nil
}

type memCompanies struct {
	repository.CompanyRepository
}

func (memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return &entity.Company{ID: id, BrandName: "ACME"}, nil
}

type memWarehouses struct{ items []*entity.Warehouse }

func (m *memWarehouses) Create(context.Context, *entity.Warehouse) error { return nil }
func (m *memWarehouses) GetByID(_ context.Context, companyID, id string) (*entity.Warehouse, error) {
	for _, w := range m.items {
		if w.CompanyID == companyID && w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}
func (m *memWarehouses) List(context.Context, repository.WarehouseFilter, pagination.Page) ([]*entity.Warehouse, error) {
	return m.items, nil
}

type noZones struct{ repository.ZoneRepository }

// lineReader lee un EPC por línea, la primera línea es la cabecera.
type lineReader struct{}

func (lineReader) Parse(r io.Reader, _ string, column string) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != column {
		return nil, domain.NewValidation("file", "missing column "+column)
	}
	return lines[1:], nil
}

type fakePDF struct{ got *appaudit.Report }

func (f *fakePDF) Generate(_ context.Context, r *appaudit.Report) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

type fakeEPCIS struct{ err error }

func (f fakeEPCIS) Export(*appaudit.Report) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<epcis/>"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID = "c-1"
	w1        = "w-1"
	w2        = "w-2"
)

type fixture struct {
	uc       *appaudit.UseCase
	audits   *memAudits
	products *memProducts
	pdf      *fakePDF
}

func newFixture(epcis appaudit.EPCISExporter) *fixture {
	audits := &memAudits{}
	products := &memProducts{items: []*entity.ProductDetail{
		{Product: entity.Product{ID: "p-b", EPCNumber: "B", CompanyID: companyID, WarehouseID: w1}},
		{Product: entity.Product{ID: "p-c", EPCNumber: "C", CompanyID: companyID, WarehouseID: w1}},
		{Product: entity.Product{ID: "p-x", EPCNumber: "D", CompanyID: "otra"}},
	}}
	warehouses := &memWarehouses{items: []*entity.Warehouse{
		{ID: w1, CompanyID: companyID},
		{ID: w2, CompanyID: companyID},
	}}
	scope := access.NewScopeResolver(warehouses, noZones{})
	pdf := &fakePDF{}
	if epcis == nil {
		epcis = fakeEPCIS{}
	}
	uc := appaudit.NewUseCase(audits, products, memCompanies{}, scope, lineReader{}, pdf, epcis,
		appaudit.Config{EPCColumn: "epc"}, logger.Nop())
	return &fixture{uc: uc, audits: audits, products: products, pdf: pdf}
}

func upload(epcs ...string) *appaudit.Upload {
	body := "epc\n" + strings.Join(epcs, "\n")
	return &appaudit.Upload{Filename: "tags.csv", Body: strings.NewReader(body)}
}

func companyPrincipal() access.Principal {
	return access.Principal{UserID: "u-1", CompanyID: companyID, Role: "admin", Branch: entity.CompanyBranch(companyID)}
}

func warehousePrincipal(w string) access.Principal {
	return access.Principal{UserID: "u-2", CompanyID: companyID, Role: "picker", Branch: entity.WarehouseBranch(w)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStageThenScan(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	staged, err := f.uc.Stage(ctx, warehousePrincipal(w1), w1, upload("A", "B", "C"))
	require.NoError(t, err)
	require.NotEmpty(t, staged.UUID)
	require.Len(t, f.audits.items, 1)
	assert.Equal(t, []string{"A", "B", "C"}, f.audits.items[0].EPCNumbers)

	scan, err := f.uc.Scan(ctx, warehousePrincipal(w1), staged.UUID, upload("B", "C", "D"))
	require.NoError(t, err)

	res := scan.Result
	assert.Equal(t, []string{"B", "C"}, res.FoundEPCs)
	assert.Equal(t, []string{"D"}, res.UnknownInScan)
	assert.Equal(t, []string{"A"}, res.UnknownInStage)
	assert.Equal(t, 2, res.FoundEPCsCount)
	assert.Equal(t, 1, res.UnknownInScanCount)
	assert.Equal(t, 1, res.UnknownInStageCount)
	assert.Equal(t, []string{"B", "C", "D"}, res.ScanEPCNumbers)
	require.Len(t, res.Products, 2, "el detalle solo incluye productos de la empresa")
}

func TestStage_NoFile(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Stage(context.Background(), companyPrincipal(), w1, nil)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Equal(t, "file", de.Field)
	assert.Empty(t, f.audits.items)
}

func TestStage_OtherWarehouseForbidden(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Stage(context.Background(), warehousePrincipal(w1), w2, upload("A"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.audits.items)
}

func TestStage_ParseFailureWritesNothing(t *testing.T) {
	f := newFixture(nil)
	bad := &appaudit.Upload{Filename: "tags.csv", Body: strings.NewReader("serial\nA\n")}

	_, err := f.uc.Stage(context.Background(), companyPrincipal(), w1, bad)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Empty(t, f.audits.items)
}

func TestScan_UnknownAuditIsNotFound(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Scan(context.Background(), companyPrincipal(), "no-existe", upload("A"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScan_OtherCompanyCannotSeeAudit(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	staged, err := f.uc.Stage(ctx, companyPrincipal(), w1, upload("A"))
	require.NoError(t, err)

	other := access.Principal{UserID: "x", CompanyID: "otra", Branch: entity.CompanyBranch("otra")}
	_, err = f.uc.Scan(ctx, other, staged.UUID, upload("A"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScan_WarehouseUserOfOtherWarehouseForbidden(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	staged, err := f.uc.Stage(ctx, companyPrincipal(), w1, upload("A"))
	require.NoError(t, err)

	_, err = f.uc.Scan(ctx, warehousePrincipal(w2), staged.UUID, upload("A"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestScan_EmptyScanMeansEverythingMissing(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	staged, err := f.uc.Stage(ctx, companyPrincipal(), w1, upload("A", "B"))
	require.NoError(t, err)

	scan, err := f.uc.Scan(ctx, companyPrincipal(), staged.UUID, upload())
	require.NoError(t, err)

	assert.Empty(t, scan.Result.FoundEPCs)
	assert.Empty(t, scan.Result.UnknownInScan)
	assert.Equal(t, []string{"A", "B"}, scan.Result.UnknownInStage)
	assert.Zero(t, f.products.called, "sin tags escaneados no se consulta el detalle")
}

func TestScan_IsRepeatableAndDoesNotMutateAudit(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	staged, err := f.uc.Stage(ctx, companyPrincipal(), w1, upload("C", "A", "B"))
	require.NoError(t, err)

	first, err := f.uc.Scan(ctx, companyPrincipal(), staged.UUID, upload("B", "E"))
	require.NoError(t, err)
	second, err := f.uc.Scan(ctx, companyPrincipal(), staged.UUID, upload("E", "B"))
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, []string{"C", "A", "B"}, f.audits.items[0].EPCNumbers)
}

func TestScan_StoreFailureIsUpstream(t *testing.T) {
	f := newFixture(nil)
	f.audits.failGet = errors.New("timeout")

	_, err := f.uc.Scan(context.Background(), companyPrincipal(), "u", upload("A"))
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, "Scanning failed.", de.Message)
	assert.NotContains(t, de.Message, "timeout")
}

func TestReport_PassesCompanyAndResult(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	staged, err := f.uc.Stage(ctx, companyPrincipal(), w1, upload("A", "B"))
	require.NoError(t, err)

	out, err := f.uc.Report(ctx, companyPrincipal(), staged.UUID, upload("B"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	require.NotNil(t, f.pdf.got)
	assert.Equal(t, "ACME", f.pdf.got.Company.BrandName)
	assert.Equal(t, []string{"B"}, f.pdf.got.Result.Found)
}

func TestExportEPCIS_WrapsExporterFailure(t *testing.T) {
	f := newFixture(fakeEPCIS{err: errors.New("xml roto")})
	ctx := context.Background()
	staged, err := f.uc.Stage(ctx, companyPrincipal(), w1, upload("A"))
	require.NoError(t, err)

	_, err = f.uc.ExportEPCIS(ctx, companyPrincipal(), staged.UUID, upload("A"))
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
