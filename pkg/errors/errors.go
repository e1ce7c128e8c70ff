package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. Message carries
// the user-facing text (Spanish); Err holds the internal cause and is never
// serialized.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the gateway taxonomy.
var (
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "No autenticado")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "No tienes permisos para esta acción")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "Datos inválidos")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "Recurso no encontrado")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "Conflicto con el estado actual")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "Correo o contraseña incorrectos")
	ErrInactiveAccount    = New("ACCOUNT_INACTIVE", http.StatusForbidden, "La cuenta está desactivada")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "Error interno del servidor")
)

// FromError normalises any error into an *Error. Unknown errors collapse into
// the generic internal error so internal detail never reaches the caller.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
