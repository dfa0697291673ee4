package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// ProductHandler catálogo (product info) y unidades EPC.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	pages pagination.Config
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase, pages pagination.Config) *ProductHandler {
	return &ProductHandler{uc: uc, pages: pages}
}

// CreateInfo godoc
// @Summary      Crear entrada de catálogo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductInfoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.DataResponse[dto.ProductInfoResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) CreateInfo(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.CreateProductInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.CreateInfo(c.UserContext(), p, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(data(out))
}

// UpdateInfo godoc
// @Summary      Actualizar entrada de catálogo (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string                         true  "ID del producto"
// @Param        body       body  dto.UpdateProductInfoRequest   true  "Campos a modificar"
// @Success      200  {object}  dto.DataResponse[dto.ProductInfoResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId} [patch]
func (h *ProductHandler) UpdateInfo(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.UpdateProductInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.UpdateInfo(c.UserContext(), p, c.Params("productId"), in)
	if err != nil {
		return err
	}
	return c.JSON(data(out))
}

// Search godoc
// @Summary      Buscar catálogo por empresa, bodega o zona
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body   body   dto.SearchProductInfoRequest  true   "Alcance de la búsqueda"
// @Param        limit  query  int                           false  "Tamaño de página"
// @Param        page   query  int                           false  "Página (desde 1)"
// @Param        sort   query  string                        false  "asc | desc"
// @Success      200  {object}  dto.ListResponse[dto.ProductInfoResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/search [post]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.SearchProductInfoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody()
		}
	}
	out, err := h.uc.SearchInfo(c.UserContext(), p, in, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// ListEPC godoc
// @Summary      Listar unidades EPC
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Tamaño de página"
// @Param        page   query  int     false  "Página (desde 1)"
// @Param        sort   query  string  false  "asc | desc"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products/epc [get]
func (h *ProductHandler) ListEPC(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListEPC(c.UserContext(), p, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// LookupEPC godoc
// @Summary      Buscar unidades por número EPC
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EPCLookupRequest  true  "epc_numbers"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/epc [post]
func (h *ProductHandler) LookupEPC(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var in dto.EPCLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.LookupEPC(c.UserContext(), p, in, pageOf(c, h.pages))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewList(out))
}

// BulkAdd godoc
// @Summary      Alta masiva de EPC en una zona (CSV o XLSX)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        zone_id          formData  string  true  "Zona destino"
// @Param        product_info_id  formData  string  true  "Entrada de catálogo"
// @Param        file             formData  file    true  "Archivo con la columna de EPC"
// @Success      201  {object}  dto.BulkAddResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/epc/add [post]
func (h *ProductHandler) BulkAdd(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	out, err := h.uc.BulkAdd(c.UserContext(), p, c.FormValue("zone_id"), c.FormValue("product_info_id"), file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
