package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// WarehouseHandler bodegas y sus zonas.
type WarehouseHandler struct {
	uc    *usecase.WarehouseUseCase
	pages pagination.Config
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, pages pagination.Config) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, pages: pages}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.DataResponse[dto.WarehouseResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Create(c.UserContext(), p, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(data(out))
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Tamaño de página"
// @Param        page   query  int     false  "Página (desde 1)"
// @Param        sort   query  string  false  "asc | desc"
// @Success      200    {object}  dto.ListResponse[dto.WarehouseResponse]
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), p, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// Get godoc
// @Summary      Obtener bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.DataResponse[dto.WarehouseResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{warehouseId} [get]
func (h *WarehouseHandler) Get(c *fiber.Ctx) error {
	w, err := mustWarehouse(c)
	if err != nil {
		return err
	}
	return c.JSON(data(h.uc.Get(w)))
}

// CreateZone godoc
// @Summary      Crear zona en una bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      201  {object}  dto.DataResponse[dto.ZoneResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{warehouseId}/zones [post]
func (h *WarehouseHandler) CreateZone(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	w, err := mustWarehouse(c)
	if err != nil {
		return err
	}
	out, err := h.uc.CreateZone(c.UserContext(), p, w)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(data(out))
}

// ListZones godoc
// @Summary      Listar zonas de una bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path   string  true   "ID de la bodega"
// @Param        limit        query  int     false  "Tamaño de página"
// @Param        page         query  int     false  "Página (desde 1)"
// @Param        sort         query  string  false  "asc | desc"
// @Success      200  {object}  dto.ListResponse[dto.ZoneResponse]
// @Router       /api/warehouses/{warehouseId}/zones [get]
func (h *WarehouseHandler) ListZones(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	w, err := mustWarehouse(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListZones(c.UserContext(), p, w, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// GetZone godoc
// @Summary      Obtener zona
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Param        zoneId       path  string  true  "ID de la zona"
// @Success      200  {object}  dto.DataResponse[dto.ZoneResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{warehouseId}/zones/{zoneId} [get]
func (h *WarehouseHandler) GetZone(c *fiber.Ctx) error {
	w, err := mustWarehouse(c)
	if err != nil {
		return err
	}
	z, err := mustZone(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetZone(w, z)
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}
