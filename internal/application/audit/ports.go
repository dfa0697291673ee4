package audit

import (
	"context"
	"io"
	"time"

	reconcile "github.com/jhoicas/epc-inventory-api/internal/domain/audit"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

// TagReader extrae los valores de una columna de un archivo tabular (CSV o XLSX).
type TagReader interface {
	Parse(r io.Reader, filename, column string) ([]string, error)
}

// Upload archivo recibido en la petición. Un *Upload nil significa que no se envió archivo.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Report todo lo necesario para exportar una conciliación.
type Report struct {
	Company     *entity.Company
	Audit       *entity.Audit
	Result      reconcile.Result
	Products    []*entity.ProductDetail
	GeneratedAt time.Time
}

// ReportGenerator produce el PDF de una conciliación.
type ReportGenerator interface {
	Generate(ctx context.Context, report *Report) ([]byte, error)
}

// EPCISExporter produce el documento EPCIS (XML) de una conciliación.
type EPCISExporter interface {
	Export(report *Report) ([]byte, error)
}
