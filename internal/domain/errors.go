package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUpstream           = errors.New("fallo en un servicio subyacente")
)

// Kind clasifica un Error para el mapeo a códigos HTTP.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindConflict     Kind = "CONFLICT"
	KindUpstream     Kind = "UPSTREAM"
	KindInternal     Kind = "INTERNAL"
)

// Error separa el mensaje que ve el cliente (Message) del detalle interno que solo va al log (Log).
type Error struct {
	Kind    Kind
	Message string
	Log     string
	Field   string // campo inválido (solo KindValidation)
	Err     error  // causa original, nunca se serializa
}

func (e *Error) Error() string {
	if e.Log != "" && e.Log != e.Message {
		return e.Log
	}
	return e.Message
}

// Unwrap devuelve el sentinel del Kind para que errors.Is(err, ErrNotFound) siga funcionando.
func (e *Error) Unwrap() []error {
	errs := []error{sentinelOf(e.Kind)}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func sentinelOf(k Kind) error {
	switch k {
	case KindValidation:
		return ErrInvalidInput
	case KindNotFound:
		return ErrNotFound
	case KindForbidden:
		return ErrForbidden
	case KindUnauthorized:
		return ErrUnauthorized
	case KindConflict:
		return ErrConflict
	case KindUpstream:
		return ErrUpstream
	default:
		return errInternal
	}
}

var errInternal = errors.New("error interno")

// NewValidation error de validación sobre un campo concreto.
func NewValidation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message, Log: fmt.Sprintf("validación: %s: %s", field, message)}
}

// NewNotFound recurso referenciado inexistente.
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Log: message}
}

// NewForbidden acceso denegado; log puede llevar el motivo real (ej. "role not found").
func NewForbidden(message, log string) *Error {
	if log == "" {
		log = message
	}
	return &Error{Kind: KindForbidden, Message: message, Log: log}
}

// NewUnauthorized credencial ausente o inválida.
func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message, Log: message}
}

// NewConflict campo único duplicado.
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Log: message}
}

// Wrap envuelve un fallo interno con un mensaje estable para el cliente y un log enriquecido.
// Si err ya es *Error se devuelve tal cual (no se pierde el Kind original).
func Wrap(err error, kind Kind, message, log string) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{
		Kind:    kind,
		Message: message,
		Log:     fmt.Sprintf("[Kind]: %s | [Message]: %s | [Error]: %v", kind, log, err),
		Err:     err,
	}
}

// KindOf devuelve el Kind de err; los errores sentinel sueltos también se clasifican.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUpstream):
		return KindUpstream
	}
	return KindInternal
}
