// Package pdf genera el reporte PDF de una conciliación de auditoría.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + contacto    │  UUID auditoría + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: esperados / leídos / encontrados / faltantes      │
//	│  QR con el UUID de la auditoría                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: Encontrados | Sobrantes (scan) | Faltantes       │
//	│  DETALLE: EPC | Producto | SKU | Bodega | Zona              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: estado de la conciliación                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 170, Green: 40, Blue: 30}
)

// epcsPerRow EPC por fila en las secciones de listas.
const epcsPerRow = 3

// ── Generator ─────────────────────────────────────────────────────────────────

var _ audit.ReportGenerator = (*MarotoAuditReport)(nil)

// MarotoAuditReport implementa audit.ReportGenerator usando Maroto v2.
type MarotoAuditReport struct{}

// NewMarotoAuditReport construye el generador.
func NewMarotoAuditReport() *MarotoAuditReport { return &MarotoAuditReport{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoAuditReport) Generate(_ context.Context, r *audit.Report) ([]byte, error) {
	if r == nil || r.Audit == nil {
		return nil, fmt.Errorf("pdf: reporte sin auditoría")
	}
	company := r.Company
	if company == nil {
		company = &entity.Company{ID: r.Audit.CompanyID}
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Audit "+r.Audit.UUID, true).
		WithAuthor(nonEmpty(company.BrandName, company.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(listRows("ENCONTRADOS", r.Result.Found, colorPrimary)...)
	m.AddRows(listRows("LEÍDOS SIN ESTAR ESPERADOS", r.Result.UnknownInScan, colorWarn)...)
	m.AddRows(listRows("ESPERADOS NO LEÍDOS", r.Result.UnknownInStage, colorWarn)...)

	if len(r.Products) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(r.Products)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y UUID + fecha (der).
func headerRow(r *audit.Report, company *entity.Company) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(company.BrandName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s",
				nonEmpty(company.Email, "—"),
				nonEmpty(company.Phone, "—"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("AUDITORÍA DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(r.Audit.UUID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Bodega: "+r.Audit.WarehouseID, props.Text{
				Size: 7, Align: align.Right, Top: 11, Color: colorGray,
			}),
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteos + QR con el UUID para ubicar la auditoría.
func summaryRow(r *audit.Report) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Top: top})
	}
	value := func(n int, top float64, c *props.Color) core.Component {
		return text.New(fmt.Sprintf("%d", n), props.Text{Size: 9, Align: align.Right, Top: top, Color: c})
	}
	return row.New(34).Add(
		col.New(5).Add(
			label("Esperados (stage):", 2),
			label("Leídos (scan):", 8),
			label("Encontrados:", 14),
			label("Leídos sin estar esperados:", 20),
			label("Esperados no leídos:", 26),
		),
		col.New(2).Add(
			value(r.Result.StagedCount, 2, nil),
			value(r.Result.ScannedCount, 8, nil),
			value(len(r.Result.Found), 14, colorPrimary),
			value(len(r.Result.UnknownInScan), 20, colorWarn),
			value(len(r.Result.UnknownInStage), 26, colorWarn),
		),
		col.New(1),
		col.New(4).Add(code.NewQr(r.Audit.UUID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// listRows: título + EPC en columnas.
func listRows(title string, epcs []string, c *props.Color) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s (%d)", title, len(epcs)), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: c, Top: 2,
			}),
		)),
	}
	if len(epcs) == 0 {
		return append(rows, row.New(5).Add(col.New(12).Add(
			text.New("—", props.Text{Size: 8, Color: colorGray, Left: 2}),
		)))
	}
	for _, chunk := range chunks(epcs, epcsPerRow) {
		cols := make([]core.Col, 0, epcsPerRow)
		for _, epc := range chunk {
			cols = append(cols, col.New(12/epcsPerRow).Add(
				text.New(epc, props.Text{Size: 7, Left: 2}),
			))
		}
		rows = append(rows, row.New(4).Add(cols...))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		}))
	}
	return row.New(8).Add(
		h("EPC", 4),
		h("Producto", 3),
		h("SKU", 2),
		h("Bodega", 2),
		h("Zona", 1),
	)
}

// tableDetailRows: una fila por producto leído que existe en el catálogo.
func tableDetailRows(products []*entity.ProductDetail) []core.Row {
	result := make([]core.Row, 0, len(products))
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Top: 1, Left: 1}))
	}
	for _, p := range products {
		name, sku, warehouse, zone := "—", "—", p.WarehouseID, nonEmpty(p.ZoneID, "—")
		if p.Info != nil {
			name, sku = nonEmpty(p.Info.Name, "—"), nonEmpty(p.Info.SKU, "—")
		}
		if p.Warehouse != nil {
			warehouse = nonEmpty(p.Warehouse.Name, p.WarehouseID)
		}
		result = append(result, row.New(6).Add(
			cell(p.EPCNumber, 4),
			cell(name, 3),
			cell(sku, 2),
			cell(warehouse, 2),
			cell(shorten(zone, 8), 1),
		))
	}
	return result
}

func footerRow(r *audit.Report) core.Row {
	msg, c := "Conciliación completa: todos los EPC esperados fueron leídos.", colorPrimary
	if !r.Result.Complete() {
		msg, c = "Conciliación con diferencias: revise las secciones de sobrantes y faltantes.", colorWarn
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: c, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// chunks divide items en grupos de max n.
func chunks(items []string, n int) [][]string {
	var parts [][]string
	for len(items) > n {
		parts = append(parts, items[:n])
		items = items[n:]
	}
	if len(items) > 0 {
		parts = append(parts, items)
	}
	return parts
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
