// Package usecase casos de uso CRUD de la API: empresa, bodegas y zonas, proveedores,
// catálogo, productos EPC, roles, usuarios, login y envíos.
package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
)

// upstream envuelve un fallo de persistencia con un mensaje estable para el cliente.
func upstream(err error, message, format string, args ...any) error {
	return domain.Wrap(err, domain.KindUpstream, message, fmt.Sprintf(format, args...))
}

// requireCompanyScope operaciones reservadas a usuarios de empresa (crear bodegas, roles...).
func requireCompanyScope(p access.Principal, action string) error {
	if !p.IsCompanyScoped() {
		return domain.NewForbidden("Forbidden",
			fmt.Sprintf("user %s with branch %s cannot %s", p.UserID, p.Branch, action))
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidation(field, field+" is required")
	}
	return nil
}
