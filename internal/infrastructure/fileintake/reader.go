// Package fileintake lee archivos tabulares subidos por el cliente (CSV o XLSX).
// La primera fila no vacía es la cabecera; Parse devuelve los valores de una columna
// y Records cada fila como mapa cabecera → valor.
package fileintake

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/epc-inventory-api/internal/domain"
)

// Config opciones de lectura.
type Config struct {
	Charset string // utf-8 | latin1 | windows-1252; solo aplica a CSV
}

// Reader implementa audit.TagReader y usecase.RecordReader.
type Reader struct {
	enc encoding.Encoding
}

// NewReader construye el lector. Un charset desconocido cae a UTF-8.
func NewReader(cfg Config) *Reader {
	return &Reader{enc: encodingFor(cfg.Charset)}
}

func encodingFor(charset string) encoding.Encoding {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	default:
		return unicode.UTF8
	}
}

// Parse devuelve los valores no vacíos de column en el orden del archivo.
// El formato se decide por la extensión de filename (.xlsx → Excel, cualquier otra → CSV).
func (r *Reader) Parse(src io.Reader, filename, column string) ([]string, error) {
	idx := -1
	var out []string
	err := r.walk(src, filename, func(_ int, cols []string) error {
		if idx < 0 {
			if idx = columnIndex(cols, column); idx < 0 {
				return domain.NewValidation("file", fmt.Sprintf("Column %q not found", column))
			}
			return nil
		}
		if idx >= len(cols) {
			return nil
		}
		if v := strings.TrimSpace(cols[idx]); v != "" {
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Records devuelve cada fila no vacía como mapa cabecera → valor. Las cabeceras se
// normalizan a minúsculas; las celdas que faltan no aparecen en el mapa.
func (r *Reader) Records(src io.Reader, filename string) ([]map[string]string, error) {
	var (
		header []string
		out    []map[string]string
	)
	err := r.walk(src, filename, func(_ int, cols []string) error {
		if header == nil {
			header = make([]string, len(cols))
			for i, h := range cols {
				header[i] = strings.ToLower(strings.TrimSpace(h))
			}
			return nil
		}
		if isBlank(cols) {
			return nil
		}
		rec := make(map[string]string, len(header))
		for i, h := range header {
			if h != "" && i < len(cols) {
				rec[h] = strings.TrimSpace(cols[i])
			}
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk entrega a visit cada fila a partir de la cabecera (las filas en blanco anteriores
// se saltan). Sin cabecera devuelve "File is empty".
func (r *Reader) walk(src io.Reader, filename string, visit func(line int, cols []string) error) error {
	if src == nil {
		return domain.NewValidation("file", "No file uploaded")
	}
	seen := false
	guarded := func(line int, cols []string) error {
		if !seen {
			if isBlank(cols) {
				return nil
			}
			seen = true
		}
		return visit(line, cols)
	}
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		err = r.walkXLSX(src, guarded)
	} else {
		err = r.walkCSV(src, guarded)
	}
	if err != nil {
		return err
	}
	if !seen {
		return domain.NewValidation("file", "File is empty")
	}
	return nil
}

func (r *Reader) walkCSV(src io.Reader, visit func(int, []string) error) error {
	// BOMOverride descarta el BOM UTF-8/UTF-16 si existe y si no usa el charset configurado.
	decoded := transform.NewReader(src, unicode.BOMOverride(r.enc.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return domain.Wrap(err, domain.KindUpstream, "Unable to read CSV", "csv row")
		}
		line, _ := cr.FieldPos(0)
		// el decoder sustituye los bytes inválidos por U+FFFD
		for _, v := range rec {
			if strings.ContainsRune(v, utf8.RuneError) {
				return domain.NewValidation("file", fmt.Sprintf("Invalid character encoding at line %d", line))
			}
		}
		if err := visit(line, rec); err != nil {
			return err
		}
	}
}

func (r *Reader) walkXLSX(src io.Reader, visit func(int, []string) error) error {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return domain.Wrap(err, domain.KindUpstream, "Unable to read Excel file", "xlsx open")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.NewValidation("file", "Excel file has no sheets")
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		return domain.Wrap(err, domain.KindUpstream, "Unable to read Excel file", "xlsx rows")
	}
	defer rows.Close()

	for line := 1; rows.Next(); line++ {
		cols, err := rows.Columns()
		if err != nil {
			return domain.Wrap(err, domain.KindUpstream, "Unable to read Excel file", "xlsx columns")
		}
		if err := visit(line, cols); err != nil {
			return err
		}
	}
	return nil
}

func columnIndex(header []string, column string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			return i
		}
	}
	return -1
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
