package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

var statusByKind = map[domain.Kind]int{
	domain.KindValidation:   fiber.StatusBadRequest,
	domain.KindNotFound:     fiber.StatusNotFound,
	domain.KindForbidden:    fiber.StatusForbidden,
	domain.KindUnauthorized: fiber.StatusUnauthorized,
	domain.KindConflict:     fiber.StatusConflict,
	domain.KindUpstream:     fiber.StatusBadGateway,
	domain.KindInternal:     fiber.StatusInternalServerError,
}

// StatusOf código HTTP para el Kind de err.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if s, ok := statusByKind[domain.KindOf(err)]; ok {
		return s
	}
	return fiber.StatusInternalServerError
}

// NewErrorHandler ErrorHandler de Fiber: todo error que devuelva un handler o middleware
// termina aquí. El cliente recibe solo el Message; el Log va al logger.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeOfStatus(fe.Code), Message: fe.Message})
		}

		kind := domain.KindOf(err)
		status := StatusOf(err)
		body := dto.ErrorResponse{Code: string(kind), Message: "Internal server error"}

		var de *domain.Error
		if errors.As(err, &de) {
			body.Message = de.Message
			body.Field = de.Field
		} else if kind != domain.KindInternal {
			body.Message = err.Error()
		}

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Msgf("%s %s - %s", c.Method(), c.Path(), err.Error())

		return c.Status(status).JSON(body)
	}
}

func codeOfStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return string(domain.KindNotFound)
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return string(domain.KindValidation)
	}
	if status >= fiber.StatusInternalServerError {
		return string(domain.KindInternal)
	}
	return "ERROR"
}

func invalidBody() error {
	return domain.NewValidation("body", "Invalid request body")
}
