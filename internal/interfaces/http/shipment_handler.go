package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// ShipmentHandler envíos entre bodegas.
type ShipmentHandler struct {
	uc    *usecase.ShipmentUseCase
	pages pagination.Config
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *usecase.ShipmentUseCase, pages pagination.Config) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, pages: pages}
}

// Create godoc
// @Summary      Crear envío
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "Bodegas de origen y destino"
// @Success      201   {object}  dto.DataResponse[dto.ShipmentResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.CreateShipmentRequest
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
// @Summary      Listar envíos
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado del envío"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        page    query  int     false  "Página (desde 1)"
// @Param        sort    query  string  false  "asc | desc"
// @Success      200  {object}  dto.ListResponse[dto.ShipmentResponse]
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var q dto.ShipmentListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody()
	}
	out, err := h.uc.List(c.UserContext(), p, q, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// Get godoc
// @Summary      Obtener envío
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        shipmentId  path  string  true  "ID del envío"
// @Success      200  {object}  dto.DataResponse[dto.ShipmentResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{shipmentId} [get]
func (h *ShipmentHandler) Get(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), p, c.Params("shipmentId"))
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// Update godoc
// @Summary      Actualizar destino o fecha del envío
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        shipmentId  path  string                     true  "ID del envío"
// @Param        body        body  dto.UpdateShipmentRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.DataResponse[dto.ShipmentResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shipments/{shipmentId} [patch]
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.UpdateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Update(c.UserContext(), p, c.Params("shipmentId"), in)
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// UpdateStatus godoc
// @Summary      Avanzar el estado del envío
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        shipmentId  path  string                           true  "ID del envío"
// @Param        body        body  dto.UpdateShipmentStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.ShipmentStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shipments/{shipmentId}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.UpdateShipmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), p, c.Params("shipmentId"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AddProducts godoc
// @Summary      Cargar EPC al envío (CSV o XLSX)
// @Tags         shipments
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        shipmentId  path      string  true  "ID del envío"
// @Param        file        formData  file    true  "Archivo con la columna de EPC"
// @Success      201  {object}  dto.BulkAddResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shipments/{shipmentId}/products [post]
func (h *ShipmentHandler) AddProducts(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	out, err := h.uc.AddProducts(c.UserContext(), p, c.Params("shipmentId"), file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
