package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusDraft     = "DRAFT"
	POStatusOpen      = "OPEN"
	POStatusReceived  = "RECEIVED"
	POStatusCancelled = "CANCELLED"
)

// PurchaseOrder es una orden de compra a un proveedor.
// Transiciones: {DRAFT, OPEN} -> RECEIVED solo vía recepción completa;
// {DRAFT, OPEN} -> CANCELLED vía cancelación explícita.
// RECEIVED y CANCELLED son terminales.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	Status     string
	CreatedAt  time.Time
}

// IsEditable indica si se pueden agregar líneas o cancelar la orden.
func (p *PurchaseOrder) IsEditable() bool {
	return p.Status == POStatusDraft || p.Status == POStatusOpen
}

// IsClosed indica si la orden está en un estado terminal.
func (p *PurchaseOrder) IsClosed() bool {
	return p.Status == POStatusReceived || p.Status == POStatusCancelled
}

// PurchaseOrderLine es una posición de la orden.
// Invariante: 0 <= QtyReceived <= QtyOrdered, y QtyReceived nunca decrece.
type PurchaseOrderLine struct {
	ID              string
	PurchaseOrderID string
	ProductID       string
	QtyOrdered      decimal.Decimal
	QtyReceived     decimal.Decimal
	UnitCost        *decimal.Decimal
}

// Remaining devuelve lo pendiente por recibir de la línea.
func (l *PurchaseOrderLine) Remaining() decimal.Decimal {
	return l.QtyOrdered.Sub(l.QtyReceived)
}

// IsComplete indica si la línea ya fue recibida en su totalidad.
func (l *PurchaseOrderLine) IsComplete() bool {
	return l.QtyReceived.GreaterThanOrEqual(l.QtyOrdered)
}
