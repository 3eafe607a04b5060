package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes
// de compra y sus líneas.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) para
	// serializar recepciones concurrentes sobre la misma orden.
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)

	CreateLine(line *entity.PurchaseOrderLine) error
	GetLineByID(id string) (*entity.PurchaseOrderLine, error)
	UpdateLineReceived(lineID string, qtyReceived decimal.Decimal) error
	ListLines(purchaseOrderID string) ([]*entity.PurchaseOrderLine, error)
}
