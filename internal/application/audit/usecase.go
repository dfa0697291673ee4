// Package audit orquesta el ciclo stage → scan de las auditorías de EPC.
package audit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	reconcile "github.com/jhoicas/epc-inventory-api/internal/domain/audit"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// Config columna del archivo que contiene los EPC.
type Config struct {
	EPCColumn string
}

// UseCase casos de uso de auditoría. Scan nunca modifica el Audit.
type UseCase struct {
	audits    repository.AuditRepository
	products  repository.ProductRepository
	companies repository.CompanyRepository
	scope     *access.ScopeResolver
	reader    TagReader
	pdf       ReportGenerator
	epcis     EPCISExporter
	cfg       Config
	log       *logger.Logger

	now     func() time.Time
	newUUID func() string
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	audits repository.AuditRepository,
	products repository.ProductRepository,
	companies repository.CompanyRepository,
	scope *access.ScopeResolver,
	reader TagReader,
	pdf ReportGenerator,
	epcis EPCISExporter,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	if cfg.EPCColumn == "" {
		cfg.EPCColumn = "epc"
	}
	return &UseCase{
		audits:    audits,
		products:  products,
		companies: companies,
		scope:     scope,
		reader:    reader,
		pdf:       pdf,
		epcis:     epcis,
		cfg:       cfg,
		log:       log.Component("audit"),
		now:       time.Now,
		newUUID:   func() string { return uuid.New().String() },
	}
}

// Stage parsea el archivo completo y luego persiste un único Audit con el conjunto esperado.
// Si el parseo falla no se escribe nada.
func (uc *UseCase) Stage(ctx context.Context, p access.Principal, warehouseID string, file *Upload) (*dto.StageResponse, error) {
	if file == nil || file.Body == nil {
		return nil, domain.NewValidation("file", "No file uploaded")
	}
	if _, err := uc.scope.ResolveWarehouse(ctx, p, warehouseID); err != nil {
		return nil, err
	}
	epcs, err := uc.readTags(file)
	if err != nil {
		return nil, err
	}

	a := &entity.Audit{
		UUID:        uc.newUUID(),
		CompanyID:   p.CompanyID,
		WarehouseID: warehouseID,
		EPCNumbers:  epcs,
		CreatedAt:   uc.now(),
	}
	if err := uc.audits.Create(ctx, a); err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Staging failed.",
			fmt.Sprintf("staging failed for company %s warehouse %s", p.CompanyID, warehouseID))
	}

	uc.log.Info().
		Str("company_id", p.CompanyID).
		Str("warehouse_id", warehouseID).
		Str("uuid", a.UUID).
		Int("epc_count", len(epcs)).
		Msg("audit staged")

	return &dto.StageResponse{Success: true, Message: "File staged for scanning", UUID: a.UUID}, nil
}

// Scan concilia el archivo escaneado contra el Audit (uuid, empresa).
// Un Audit inexistente es NotFound, nunca un resultado vacío.
func (uc *UseCase) Scan(ctx context.Context, p access.Principal, auditUUID string, file *Upload) (*dto.ScanResponse, error) {
	report, err := uc.reconcile(ctx, p, auditUUID, file)
	if err != nil {
		return nil, err
	}
	return &dto.ScanResponse{Success: true, Message: "Scanned data", Result: toScanResult(report)}, nil
}

// Report concilia igual que Scan y devuelve el PDF.
func (uc *UseCase) Report(ctx context.Context, p access.Principal, auditUUID string, file *Upload) ([]byte, error) {
	report, err := uc.reconcile(ctx, p, auditUUID, file)
	if err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, p.CompanyID)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Report generation failed.",
			fmt.Sprintf("company lookup failed for %s", p.CompanyID))
	}
	report.Company = company

	out, err := uc.pdf.Generate(ctx, report)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindInternal, "Report generation failed.",
			fmt.Sprintf("pdf generation failed for audit %s", auditUUID))
	}
	return out, nil
}

// ExportEPCIS concilia igual que Scan y devuelve el documento EPCIS.
func (uc *UseCase) ExportEPCIS(ctx context.Context, p access.Principal, auditUUID string, file *Upload) ([]byte, error) {
	report, err := uc.reconcile(ctx, p, auditUUID, file)
	if err != nil {
		return nil, err
	}
	out, err := uc.epcis.Export(report)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindInternal, "EPCIS export failed.",
			fmt.Sprintf("epcis export failed for audit %s", auditUUID))
	}
	return out, nil
}

func (uc *UseCase) reconcile(ctx context.Context, p access.Principal, auditUUID string, file *Upload) (*Report, error) {
	if file == nil || file.Body == nil {
		return nil, domain.NewValidation("file", "No file uploaded")
	}
	scanned, err := uc.readTags(file)
	if err != nil {
		return nil, err
	}

	a, err := uc.audits.GetByUUID(ctx, p.CompanyID, auditUUID)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Scanning failed.",
			fmt.Sprintf("audit lookup failed for %s", auditUUID))
	}
	if a == nil {
		return nil, domain.NewNotFound("Audit not found")
	}
	if err := uc.scope.Authorize(p, a.WarehouseID); err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(a.EPCNumbers, scanned)

	var products []*entity.ProductDetail
	if len(scanned) > 0 {
		products, err = uc.products.FindDetailsByEPC(ctx, p.CompanyID, scanned)
		if err != nil {
			return nil, domain.Wrap(err, domain.KindUpstream, "Scanning failed.",
				fmt.Sprintf("product enrichment failed for audit %s", auditUUID))
		}
	}

	uc.log.Info().
		Str("company_id", p.CompanyID).
		Str("uuid", auditUUID).
		Int("found", len(result.Found)).
		Int("unknown_in_scan", len(result.UnknownInScan)).
		Int("unknown_in_stage", len(result.UnknownInStage)).
		Msg("audit scanned")

	return &Report{Audit: a, Result: result, Products: products, GeneratedAt: uc.now()}, nil
}

func (uc *UseCase) readTags(file *Upload) ([]string, error) {
	epcs, err := uc.reader.Parse(file.Body, file.Filename, uc.cfg.EPCColumn)
	if err != nil {
		return nil, domain.Wrap(err, domain.KindUpstream, "Unable to read file.",
			fmt.Sprintf("parse failed for %q", file.Filename))
	}
	return reconcile.Normalize(epcs), nil
}

func toScanResult(r *Report) dto.ScanResult {
	staged := reconcile.Normalize(r.Audit.EPCNumbers)
	scanned := make([]string, 0, len(r.Result.Found)+len(r.Result.UnknownInScan))
	scanned = append(scanned, r.Result.Found...)
	scanned = append(scanned, r.Result.UnknownInScan...)
	sort.Strings(staged)
	sort.Strings(scanned)

	return dto.ScanResult{
		UUID:                r.Audit.UUID,
		WarehouseID:         r.Audit.WarehouseID,
		StagedEPCNumbers:    staged,
		ScanEPCNumbers:      scanned,
		FoundEPCs:           r.Result.Found,
		UnknownInScan:       r.Result.UnknownInScan,
		UnknownInStage:      r.Result.UnknownInStage,
		FoundEPCsCount:      len(r.Result.Found),
		UnknownInScanCount:  len(r.Result.UnknownInScan),
		UnknownInStageCount: len(r.Result.UnknownInStage),
		Products:            dto.MapAll(r.Products, dto.FromProductDetail),
	}
}
