package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/epc-inventory-api/docs"
	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	infraepcis "github.com/jhoicas/epc-inventory-api/internal/infrastructure/epcis"
	"github.com/jhoicas/epc-inventory-api/internal/infrastructure/fileintake"
	infrapdf "github.com/jhoicas/epc-inventory-api/internal/infrastructure/pdf"
	"github.com/jhoicas/epc-inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/epc-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/epc-inventory-api/pkg/config"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// @title                       EPC Inventory API
// @version                     1.0
// @description                 Inventario multiempresa por EPC: bodegas, zonas, catálogo, envíos y auditorías.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	infoRepo := postgres.NewProductInfoRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	identities := access.NewIdentityResolver(userRepo)
	gate := access.NewPermissionGate(roleRepo)
	scope := access.NewScopeResolver(warehouseRepo, zoneRepo)

	reader := fileintake.NewReader(fileintake.Config{Charset: cfg.Upload.Charset})
	jwtCfg := usecase.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}

	authUC := usecase.NewAuthUseCase(userRepo, jwtCfg)
	companyUC := usecase.NewCompanyUseCase(txRunner, companyRepo, jwtCfg, log)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, zoneRepo, scope, log)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	productUC := usecase.NewProductUseCase(infoRepo, productRepo, vendorRepo, scope, reader, cfg.Upload.ProductEPCColumn, log)
	roleUC := usecase.NewRoleUseCase(roleRepo, log)
	userUC := usecase.NewUserUseCase(txRunner, userRepo, roleRepo, scope, reader, log)
	shipmentUC := usecase.NewShipmentUseCase(txRunner, shipmentRepo, productRepo, warehouseRepo, scope, reader, cfg.Upload.EPCColumn, log)

	// Exportaciones de la conciliación: PDF (maroto) y EPCIS 1.2 (etree)
	auditUC := audit.NewUseCase(
		auditRepo, productRepo, companyRepo, scope, reader,
		infrapdf.NewMarotoAuditReport(), infraepcis.NewExporter(),
		audit.Config{EPCColumn: cfg.Upload.EPCColumn}, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Upload.MaxBytes(),
		ErrorHandler: httpRouter.NewErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "EPC Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		WarehouseUC: warehouseUC,
		VendorUC:    vendorUC,
		ProductUC:   productUC,
		RoleUC:      roleUC,
		UserUC:      userUC,
		ShipmentUC:  shipmentUC,
		AuditUC:     auditUC,
		Identities:  identities,
		Gate:        gate,
		Scope:       scope,
		JWTSecret:   cfg.JWT.Secret,
		Pagination:  pageConfig(cfg.Pagination),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func pageConfig(c config.PaginationConfig) pagination.Config {
	pc := pagination.DefaultConfig()
	pc.DefaultLimit = c.DefaultLimit
	pc.MaxLimit = c.MaxLimit
	pc.DefaultSort = pagination.ParseDirection(c.DefaultSort)
	return pc
}
