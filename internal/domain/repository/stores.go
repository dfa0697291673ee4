package repository

import "context"

// Stores agrupa los repositorios atados a una misma transacción.
type Stores struct {
	Companies CompanyRepository
	Roles     RoleRepository
	Users     UserRepository
	Shipments ShipmentRepository
	Products  ProductRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si devuelve nil, rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Stores) error) error
}
