package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrStorage      = errors.New("fallo del almacenamiento")
)

// ValidationError parámetros de consulta mal formados o inconsistentes.
// Message se devuelve tal cual al cliente (HTTP 400), por eso debe ser estable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un ValidationError con el mensaje indicado.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// StorageError envuelve cualquier fallo del colaborador de almacenamiento.
// No se recupera: sube hasta el handler, que lo registra y responde 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStorage) sin perder el error original.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// WrapStorage devuelve nil si err es nil; si no, un *StorageError para la operación op.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
