package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockItemDetail es una fila del snapshot con datos de referencia del
// producto y la ubicación (para reportes).
type StockItemDetail struct {
	Item         entity.StockItem
	SKU          string
	ProductName  string
	LocationCode string
	LocationName string
}

// StockItemRepository define el puerto de persistencia para los saldos
// por (producto, ubicación). Las mutaciones del ledger lo usan siempre
// dentro de una transacción.
type StockItemRepository interface {
	// Get devuelve el saldo o nil si la fila no existe aún.
	Get(productID, locationID string) (*entity.StockItem, error)
	// EnsureAndLock crea la fila si falta (INSERT .. ON CONFLICT DO NOTHING,
	// el constraint único arbitra el primer toque concurrente) y la
	// bloquea con SELECT .. FOR UPDATE hasta el fin de la transacción.
	EnsureAndLock(productID, locationID string) (*entity.StockItem, error)
	// Save persiste on_hand, reserved y version de una fila ya bloqueada.
	Save(item *entity.StockItem) error
	// List devuelve los saldos existentes; productID y locationID vacíos
	// actúan como "sin filtro".
	List(productID, locationID string) ([]*entity.StockItem, error)
	// ListDetailed igual que List pero con SKU/nombres para reportes.
	ListDetailed(productID, locationID string) ([]*StockItemDetail, error)
}
