package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *usecase.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	VendorUC    *usecase.VendorUseCase
	ProductUC   *usecase.ProductUseCase
	RoleUC      *usecase.RoleUseCase
	UserUC      *usecase.UserUseCase
	ShipmentUC  *usecase.ShipmentUseCase
	AuditUC     *audit.UseCase

	Identities *access.IdentityResolver
	Gate       *access.PermissionGate
	Scope      *access.ScopeResolver

	JWTSecret  string
	Pagination pagination.Config
}

// Router registra las rutas de la API. Las rutas protegidas pasan por AuthMiddleware
// (Use del grupo) y por RequirePermission en la propia ruta. Las rutas multipart
// resuelven bodega y zona en el caso de uso, después de validar el archivo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Públicas
	authHandler := NewAuthHandler(deps.AuthUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/companies/register", companyHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret, deps.Identities))
	guard := RequirePermission(deps.Gate)
	inWarehouse := RequireWarehouse(deps.Scope, Param("warehouseId"))

	protected.Get("/companies/me", guard, companyHandler.Me)

	wh := NewWarehouseHandler(deps.WarehouseUC, deps.Pagination)
	protected.Post("/warehouses", guard, wh.Create)
	protected.Get("/warehouses", guard, wh.List)
	protected.Get("/warehouses/:warehouseId", guard, inWarehouse, wh.Get)
	protected.Post("/warehouses/:warehouseId/zones", guard, inWarehouse, wh.CreateZone)
	protected.Get("/warehouses/:warehouseId/zones", guard, inWarehouse, wh.ListZones)
	protected.Get("/warehouses/:warehouseId/zones/:zoneId", guard, inWarehouse, RequireZone(deps.Scope, Param("zoneId")), wh.GetZone)

	vendors := NewVendorHandler(deps.VendorUC, deps.Pagination)
	protected.Post("/vendors", guard, vendors.Create)
	protected.Get("/vendors", guard, vendors.List)
	protected.Get("/vendors/:vendorId", guard, vendors.Get)
	protected.Patch("/vendors/:vendorId", guard, vendors.Update)

	products := NewProductHandler(deps.ProductUC, deps.Pagination)
	protected.Post("/products", guard, products.CreateInfo)
	protected.Post("/products/search", guard, products.Search)
	protected.Get("/products/epc", guard, products.ListEPC)
	protected.Post("/products/epc", guard, products.LookupEPC)
	protected.Post("/products/epc/add", guard, products.BulkAdd)
	protected.Patch("/products/:productId", guard, products.UpdateInfo)

	roles := NewRoleHandler(deps.RoleUC, deps.Pagination)
	protected.Post("/roles", guard, roles.Create)
	protected.Get("/roles", guard, roles.List)
	protected.Get("/roles/:roleId", guard, roles.Get)
	protected.Patch("/roles/:roleId", guard, roles.Update)

	users := NewUserHandler(deps.UserUC, deps.Pagination)
	protected.Post("/users", guard, users.Create)
	protected.Get("/users", guard, users.List)
	protected.Get("/users/:userId", guard, users.Get)
	protected.Patch("/users/:userId", guard, users.Update)
	protected.Post("/users/register/json", guard, users.RegisterJSON)
	protected.Post("/users/register/csv", guard, users.RegisterCSV)
	protected.Post("/users/register/file/csv", guard, users.RegisterFile)

	shipments := NewShipmentHandler(deps.ShipmentUC, deps.Pagination)
	protected.Post("/shipments", guard, shipments.Create)
	protected.Get("/shipments", guard, shipments.List)
	protected.Get("/shipments/:shipmentId", guard, shipments.Get)
	protected.Patch("/shipments/:shipmentId", guard, shipments.Update)
	protected.Patch("/shipments/:shipmentId/status", guard, shipments.UpdateStatus)
	protected.Post("/shipments/:shipmentId/products", guard, shipments.AddProducts)

	audits := NewAuditHandler(deps.AuditUC)
	protected.Post("/audits/stage", guard, audits.Stage)
	protected.Post("/audits/scan/:uuid", guard, audits.Scan)
	protected.Post("/audits/scan/:uuid/report", guard, audits.Report)
	protected.Post("/audits/scan/:uuid/epcis", guard, audits.EPCIS)
}
