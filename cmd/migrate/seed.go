package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/infrastructure/postgres"
)

// defaultRolePaths rutas de solo lectura más stage y scan; el registro de empresa copia
// esta plantilla como rol "default" de cada empresa nueva.
var defaultRolePaths = []string{
	"/api/companies/me",
	"/api/warehouses",
	"/api/warehouses/:warehouseId",
	"/api/warehouses/:warehouseId/zones",
	"/api/warehouses/:warehouseId/zones/:zoneId",
	"/api/vendors",
	"/api/vendors/:vendorId",
	"/api/products/search",
	"/api/products/epc",
	"/api/shipments",
	"/api/shipments/:shipmentId",
	"/api/audits/stage",
	"/api/audits/scan/:uuid",
	"/api/audits/scan/:uuid/report",
	"/api/audits/scan/:uuid/epcis",
}

var seedRefresh bool

var seedCmd = &cobra.Command{
	Use:   "seed-default-role",
	Short: `Crea (o con --refresh actualiza) el rol global "default"`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&seedRefresh, "refresh", "r", false, "reemplaza las rutas si el rol ya existe")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	pool, err := postgres.NewPool(ctx, appCfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	roles := postgres.NewRoleRepository(pool)
	existing, err := roles.GetByName(ctx, "", entity.RoleDefault)
	if err != nil {
		return err
	}

	now := time.Now()
	if existing == nil {
		role := &entity.Role{
			ID:          uuid.New().String(),
			Name:        entity.RoleDefault,
			Paths:       defaultRolePaths,
			Permissions: defaultRolePaths,
			AllowUpdate: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := roles.Create(ctx, role); err != nil {
			return err
		}
		log.Info().Str("role_id", role.ID).Int("paths", len(defaultRolePaths)).Msg("rol default creado")
		return nil
	}

	if !seedRefresh {
		log.Info().Str("role_id", existing.ID).Msg("rol default ya existe; use --refresh para actualizarlo")
		return nil
	}
	if _, err := pool.Exec(ctx, `
		UPDATE roles SET paths = $2, permissions = $2, updated_at = $3
		WHERE company_id IS NULL AND id = $1`,
		existing.ID, defaultRolePaths, now,
	); err != nil {
		return fmt.Errorf("actualizar rol default: %w", err)
	}
	log.Info().Str("role_id", existing.ID).Int("paths", len(defaultRolePaths)).Msg("rol default actualizado")
	return nil
}
