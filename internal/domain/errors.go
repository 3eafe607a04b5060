package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores del motor de inventario. Todos son corregibles por el caller
// salvo ErrInvariantViolation.
var (
	// ErrInsufficientStock: la operación dejaría on_hand negativo.
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrInsufficientAvailable: la cantidad supera on_hand - reserved.
	ErrInsufficientAvailable = errors.New("stock disponible insuficiente")
	// ErrOverRelease: se intenta liberar o despachar más de lo reservado.
	ErrOverRelease = errors.New("cantidad mayor a lo reservado")
	// ErrInvariantViolation: el estado persistido ya rompe un invariante del
	// inventario. No es corregible por el caller; la fila inconsistente se
	// conserva tal cual para investigación.
	ErrInvariantViolation = errors.New("estado de inventario inconsistente")
)

// Errores del flujo de recepción de órdenes de compra.
var (
	// ErrOrderClosed: la orden está RECEIVED o CANCELLED.
	ErrOrderClosed = errors.New("orden de compra cerrada")
	// ErrInvalidLine: la línea no existe o no pertenece a la orden.
	ErrInvalidLine = errors.New("línea inválida para la orden")
	// ErrOverReceipt: la cantidad recibida supera lo pendiente de la línea.
	ErrOverReceipt = errors.New("cantidad recibida mayor a lo pendiente")
)
