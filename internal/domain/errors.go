package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas, comparables con errors.Is).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidOperation  = errors.New("operación inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCapacityExceeded  = errors.New("capacidad de bodega excedida")
)

// NotFoundError indica que una entidad concreta no existe.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidOperationError indica una operación rechazada por reglas de negocio
// (traslado a la misma bodega, bodega inactiva, cantidad negativa resultante, etc.).
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("operación inválida: %s", e.Reason)
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// DuplicateError indica un conflicto de unicidad (ej. SKU repetido en la misma bodega).
type DuplicateError struct {
	Entity string
	Key    string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s duplicado: %s", e.Entity, e.Key)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// InsufficientStockError indica que la bodega origen no tiene la cantidad solicitada.
type InsufficientStockError struct {
	SKU       string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: disponible %d, solicitado %d",
		e.SKU, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// CapacityExceededError indica que el volumen solicitado no cabe en la bodega destino.
type CapacityExceededError struct {
	WarehouseName   string
	AvailableVolume decimal.Decimal
	RequestedVolume decimal.Decimal
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacidad excedida en %s: disponible %s, solicitado %s",
		e.WarehouseName, e.AvailableVolume.String(), e.RequestedVolume.String())
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }
