package entity

import (
	"errors"
	"fmt"
)

// BranchKind discrimina el dueño de una rama: toda la empresa o una bodega.
type BranchKind string

const (
	BranchCompany   BranchKind = "Company"
	BranchWarehouse BranchKind = "Warehouse"
)

// ErrInvalidBranch la referencia no es Company ni Warehouse (error de configuración, nunca se permite).
var ErrInvalidBranch = errors.New("referencia de sucursal inválida")

// BranchRef es una variante etiquetada: Company(id) | Warehouse(id).
// Los campos son privados para que kind e id no puedan quedar desalineados;
// el valor cero es inválido.
type BranchRef struct {
	kind BranchKind
	id   string
}

// CompanyBranch rama a nivel de empresa.
func CompanyBranch(companyID string) BranchRef {
	return BranchRef{kind: BranchCompany, id: companyID}
}

// WarehouseBranch rama fijada a una bodega.
func WarehouseBranch(warehouseID string) BranchRef {
	return BranchRef{kind: BranchWarehouse, id: warehouseID}
}

// ParseBranch construye la variante a partir de su forma persistida (branch_path, branch_id).
func ParseBranch(kind, id string) (BranchRef, error) {
	if id == "" {
		return BranchRef{}, fmt.Errorf("%w: id vacío", ErrInvalidBranch)
	}
	switch BranchKind(kind) {
	case BranchCompany:
		return CompanyBranch(id), nil
	case BranchWarehouse:
		return WarehouseBranch(id), nil
	}
	return BranchRef{}, fmt.Errorf("%w: %q", ErrInvalidBranch, kind)
}

func (b BranchRef) Kind() BranchKind { return b.kind }
func (b BranchRef) ID() string       { return b.id }

// Valid indica si la referencia es una de las dos variantes conocidas.
func (b BranchRef) Valid() bool {
	return b.id != "" && (b.kind == BranchCompany || b.kind == BranchWarehouse)
}

// Match despacha a la función de la variante; una referencia inválida devuelve ErrInvalidBranch.
func (b BranchRef) Match(companyCase func(companyID string) error, warehouseCase func(warehouseID string) error) error {
	if !b.Valid() {
		return ErrInvalidBranch
	}
	if b.kind == BranchWarehouse {
		return warehouseCase(b.id)
	}
	return companyCase(b.id)
}

func (b BranchRef) String() string {
	if !b.Valid() {
		return "invalid"
	}
	return string(b.kind) + "(" + b.id + ")"
}
