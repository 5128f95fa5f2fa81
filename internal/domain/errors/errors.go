package errors

import (
	"net/http"

	"vetclinic/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Resource lookup errors
	ErrUsuarioNotFound = NewBaseError(
		http.StatusNotFound,
		"USUARIO_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrMascotaNotFound = NewBaseError(
		http.StatusNotFound,
		"MASCOTA_NOT_FOUND",
		"Mascota no encontrada",
		"",
	)

	ErrCitaNotFound = NewBaseError(
		http.StatusNotFound,
		"CITA_NOT_FOUND",
		"Cita no encontrada",
		"",
	)

	ErrVacunaNotFound = NewBaseError(
		http.StatusNotFound,
		"VACUNA_NOT_FOUND",
		"Vacuna no encontrada",
		"",
	)

	ErrFacturaNotFound = NewBaseError(
		http.StatusNotFound,
		"FACTURA_NOT_FOUND",
		"Factura no encontrada",
		"",
	)

	ErrRecetaNotFound = NewBaseError(
		http.StatusNotFound,
		"RECETA_NOT_FOUND",
		"Receta no encontrada",
		"",
	)

	// Authentication errors
	ErrCredencialesInvalidas = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o contraseña incorrectos",
		"",
	)

	ErrNoAutenticado = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"No autenticado",
		"",
	)

	ErrTokenInvalido = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token inválido o expirado",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	// Authorization errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tiene permisos para realizar esta acción",
		"",
	)

	// Soft-deleted records reject every mutation until restored.
	ErrRegistroEliminado = NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_RULE_VIOLATION",
		"El registro está eliminado y no puede ser utilizado",
		"",
	)

	// Duplicates map to 400 so clients treat them as correctable input.
	ErrUsernameDuplicado = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USERNAME",
		"El nombre de usuario ya está registrado",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)
)

// NewValidationError builds a field-level validation error (HTTP 422).
// The offending field name travels in the details so clients can highlight it.
func NewValidationError(field, message string) AppError {
	return NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_ERROR",
		message,
		field,
	)
}

// NewBusinessRuleError builds a domain rule violation error (HTTP 400).
func NewBusinessRuleError(message string) AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_RULE_VIOLATION",
		message,
		"",
	)
}

// NewForbiddenError builds a permission error with a specific message.
func NewForbiddenError(message string) AppError {
	return NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		message,
		"",
	)
}

// NewDuplicateError builds a duplicate-resource error (HTTP 400).
func NewDuplicateError(message string) AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE",
		message,
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the wrapped database error for errors.Is/As checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error de base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
