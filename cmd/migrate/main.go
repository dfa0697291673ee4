// migrate administra el esquema de la base de datos y los datos semilla.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate status
//	go run ./cmd/migrate seed-default-role
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/epc-inventory-api/pkg/config"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones y datos semilla de EPC Inventory",
	Long:  `Aplica las migraciones SQL (goose) embebidas en el binario y siembra el rol plantilla "default".`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		appCfg = cfg
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
		return nil
	},
	SilenceUsage: true,
}

var (
	appCfg *config.Config
	log    *logger.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&migrationsDir, "dir", "d", "",
		"directorio de migraciones SQL; vacío usa las embebidas (o MIGRATIONS_DIR)")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
