// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP layer can map it to a status code
// without inspecting message strings.
type Kind int

const (
	KindInesperado Kind = iota
	KindValidacion
	KindNoAutenticado
	KindNoEncontrado
	KindEstadoInvalido
	KindConflicto
	KindAlmacenamiento
)

// Error is the canonical service-layer error. Mensaje is user-facing and safe
// to serialize; Causa (optional) is the underlying error, logged but never
// exposed.
type Error struct {
	Kind    Kind
	Mensaje string
	Causa   error
}

func (e *Error) Error() string { return e.Mensaje }

func (e *Error) Unwrap() error { return e.Causa }

func Validacion(format string, args ...any) *Error {
	return &Error{Kind: KindValidacion, Mensaje: fmt.Sprintf(format, args...)}
}

func NoAutenticado(mensaje string) *Error {
	return &Error{Kind: KindNoAutenticado, Mensaje: mensaje}
}

func NoEncontrado(format string, args ...any) *Error {
	return &Error{Kind: KindNoEncontrado, Mensaje: fmt.Sprintf(format, args...)}
}

func EstadoInvalido(format string, args ...any) *Error {
	return &Error{Kind: KindEstadoInvalido, Mensaje: fmt.Sprintf(format, args...)}
}

func Conflicto(format string, args ...any) *Error {
	return &Error{Kind: KindConflicto, Mensaje: fmt.Sprintf(format, args...)}
}

func Almacenamiento(causa error) *Error {
	return &Error{Kind: KindAlmacenamiento, Mensaje: "Error de base de datos", Causa: causa}
}

func Inesperado(causa error) *Error {
	return &Error{Kind: KindInesperado, Mensaje: "Error inesperado", Causa: causa}
}

// HTTPStatus maps an error to its response status. Unknown errors are 500.
func HTTPStatus(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case KindValidacion, KindEstadoInvalido, KindConflicto:
		return http.StatusBadRequest
	case KindNoAutenticado:
		return http.StatusUnauthorized
	case KindNoEncontrado:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Envelope is the JSON error body: {"error": "..."}.
type Envelope struct {
	Error string `json:"error"`
}

func New(mensaje string) *Envelope {
	return &Envelope{Error: mensaje}
}
