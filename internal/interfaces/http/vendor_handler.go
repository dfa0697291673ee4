package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// VendorHandler proveedores de la empresa.
type VendorHandler struct {
	uc    *usecase.VendorUseCase
	pages pagination.Config
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase, pages pagination.Config) *VendorHandler {
	return &VendorHandler{uc: uc, pages: pages}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.DataResponse[dto.VendorResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.CreateVendorRequest
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
// @Summary      Listar proveedores
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Tamaño de página"
// @Param        page   query  int     false  "Página (desde 1)"
// @Param        sort   query  string  false  "asc | desc"
// @Success      200    {object}  dto.ListResponse[dto.VendorResponse]
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener proveedor
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        vendorId  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.DataResponse[dto.VendorResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{vendorId} [get]
func (h *VendorHandler) Get(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), p, c.Params("vendorId"))
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        vendorId  path  string                   true  "ID del proveedor"
// @Param        body      body  dto.UpdateVendorRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.DataResponse[dto.VendorResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{vendorId} [patch]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.UpdateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Update(c.UserContext(), p, c.Params("vendorId"), in)
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}
