package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
	"github.com/valyala/fasthttp"
)

// UploadField nombre del campo multipart con el archivo de EPC.
const UploadField = "file"

// pageOf resuelve limit, page y sort de la query string.
func pageOf(c *fiber.Ctx, cfg pagination.Config) pagination.Page {
	var q dto.PageQuery
	_ = c.QueryParser(&q)
	return cfg.Resolve(q.Limit, q.Page, q.Sort)
}

// formUpload abre el archivo del campo UploadField. Sin archivo devuelve (nil, no-op, nil)
// y el caso de uso decide el mensaje. close siempre es invocable.
func formUpload(c *fiber.Ctx) (*audit.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(UploadField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, noop, nil
		}
		return nil, noop, &domain.Error{
			Kind:    domain.KindValidation,
			Field:   UploadField,
			Message: "Invalid file upload",
			Log:     fmt.Sprintf("multipart read failed: %v", err),
			Err:     err,
		}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, domain.Wrap(err, domain.KindInternal, "Failed to read the uploaded file.", "open multipart file "+fh.Filename)
	}
	return &audit.Upload{Filename: fh.Filename, Body: f}, func() { _ = f.Close() }, nil
}

// data envuelve un recurso único.
func data[T any](v T) dto.DataResponse[T] {
	return dto.DataResponse[T]{Success: true, Data: v}
}

// sendFile escribe un adjunto binario (PDF o XML).
func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(body)
}
