package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest body para POST /api/purchase/orders.
type CreatePurchaseOrderRequest struct {
	SupplierID string `json:"supplier_id"`
}

// AddOrderLineRequest body para POST /api/purchase/orders/:id/lines.
type AddOrderLineRequest struct {
	ProductID  string           `json:"product_id"`
	QtyOrdered decimal.Decimal  `json:"qty_ordered"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
}

// ReceiveLineRequest una línea del body de recepción.
type ReceiveLineRequest struct {
	LineID     string          `json:"line_id"`
	Qty        decimal.Decimal `json:"qty"`
	LocationID string          `json:"location_id"`
}

// ReceiveOrderRequest body para POST /api/purchase/orders/:id/receive.
// La recepción es todo-o-nada: si una línea falla, ninguna se aplica.
type ReceiveOrderRequest struct {
	Lines []ReceiveLineRequest `json:"lines"`
}

// OrderLineResponse una línea de la orden en respuestas.
type OrderLineResponse struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id"`
	QtyOrdered  decimal.Decimal  `json:"qty_ordered"`
	QtyReceived decimal.Decimal  `json:"qty_received"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
}

// PurchaseOrderResponse una orden de compra con sus líneas.
type PurchaseOrderResponse struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplier_id"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	Lines      []OrderLineResponse `json:"lines,omitempty"`
}

// PurchaseOrderListResponse listado paginado de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
