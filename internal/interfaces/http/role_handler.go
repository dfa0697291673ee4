package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// RoleHandler roles y sus rutas permitidas.
type RoleHandler struct {
	uc    *usecase.RoleUseCase
	pages pagination.Config
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase, pages pagination.Config) *RoleHandler {
	return &RoleHandler{uc: uc, pages: pages}
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "Nombre, rutas y permisos"
// @Success      201   {object}  dto.DataResponse[dto.RoleResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.CreateRoleRequest
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
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Tamaño de página"
// @Param        page   query  int     false  "Página (desde 1)"
// @Param        sort   query  string  false  "asc | desc"
// @Success      200    {object}  dto.ListResponse[dto.RoleResponse]
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        roleId  path  string  true  "ID del rol"
// @Success      200  {object}  dto.DataResponse[dto.RoleResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{roleId} [get]
func (h *RoleHandler) Get(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), p, c.Params("roleId"))
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        roleId  path  string                 true  "ID del rol"
// @Param        body    body  dto.UpdateRoleRequest  true  "Rutas y permisos"
// @Success      200  {object}  dto.DataResponse[dto.RoleResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{roleId} [patch]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Update(c.UserContext(), p, c.Params("roleId"), in)
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}
