package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/jhoicas/epc-inventory-api/migrations"
)

const migrationsTable = "schema_migrations"

var migrationsDir string

var (
	upCmd = &cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		RunE:  runGoose("up"),
	}
	downCmd = &cobra.Command{
		Use:   "down",
		Short: "Revierte la última migración aplicada",
		RunE:  runGoose("down"),
	}
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Muestra el estado de cada migración",
		RunE:  runGoose("status"),
	}
)

func runGoose(command string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		db, dir, err := openGoose()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := goose.RunContext(cmd.Context(), command, db, dir); err != nil {
			return fmt.Errorf("goose %s: %w", command, err)
		}
		log.Info().Str("command", command).Str("dir", dir).Msg("migraciones ejecutadas")
		return nil
	}
}

// openGoose abre la base con el driver pgx de database/sql y prepara goose. Sin
// directorio explícito se leen las migraciones embebidas en el binario.
func openGoose() (*sql.DB, string, error) {
	dir := migrationsDir
	if dir == "" {
		dir = appCfg.App.MigrationsDir
	}
	if dir == "" {
		goose.SetBaseFS(migrations.FS)
		dir = "."
	} else if _, err := os.Stat(dir); err != nil {
		return nil, "", fmt.Errorf("directorio de migraciones: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, "", err
	}
	goose.SetTableName(migrationsTable)

	db, err := goose.OpenDBWithDriver("pgx", appCfg.DB.ConnectionString())
	if err != nil {
		return nil, "", fmt.Errorf("goose: abrir DB: %w", err)
	}
	return db, dir, nil
}
