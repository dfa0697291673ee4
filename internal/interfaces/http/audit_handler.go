package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
)

// AuditHandler stage y scan de auditorías de inventario.
type AuditHandler struct {
	uc *audit.UseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Stage godoc
// @Summary      Registrar el conjunto esperado de EPC de una bodega
// @Tags         audits
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        warehouse_id  formData  string  true  "Bodega auditada"
// @Param        file          formData  file    true  "Archivo con la columna de EPC"
// @Success      201  {object}  dto.StageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audits/stage [post]
func (h *AuditHandler) Stage(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	out, err := h.uc.Stage(c.UserContext(), p, c.FormValue("warehouse_id"), file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Scan godoc
// @Summary      Conciliar un escaneo contra lo registrado en stage
// @Tags         audits
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        uuid  path      string  true  "UUID devuelto por stage"
// @Param        file  formData  file    true  "Archivo con la columna de EPC"
// @Success      200  {object}  dto.ScanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/audits/scan/{uuid} [post]
func (h *AuditHandler) Scan(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	out, err := h.uc.Scan(c.UserContext(), p, c.Params("uuid"), file)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Conciliación en PDF
// @Tags         audits
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        uuid  path      string  true  "UUID devuelto por stage"
// @Param        file  formData  file    true  "Archivo con la columna de EPC"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/audits/scan/{uuid}/report [post]
func (h *AuditHandler) Report(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	id := c.Params("uuid")
	out, err := h.uc.Report(c.UserContext(), p, id, file)
	if err != nil {
		return err
	}
	return sendFile(c, "application/pdf", "audit-"+id+".pdf", out)
}

// EPCIS godoc
// @Summary      Conciliación como documento EPCIS 1.2
// @Tags         audits
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      application/xml
// @Param        uuid  path      string  true  "UUID devuelto por stage"
// @Param        file  formData  file    true  "Archivo con la columna de EPC"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/audits/scan/{uuid}/epcis [post]
func (h *AuditHandler) EPCIS(c *fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	file, closeFile, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFile()
	id := c.Params("uuid")
	out, err := h.uc.ExportEPCIS(c.UserContext(), p, id, file)
	if err != nil {
		return err
	}
	return sendFile(c, fiber.MIMEApplicationXMLCharsetUTF8, "audit-"+id+".xml", out)
}
