package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/adjust.
// Delta puede ser positivo (recepción) o negativo (consumo).
type AdjustStockRequest struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Delta      decimal.Decimal `json:"delta"`
	Reason     string          `json:"reason,omitempty"`
}

// MoveStockRequest body para POST /api/inventory/move.
type MoveStockRequest struct {
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Qty            decimal.Decimal `json:"qty"`
	Reason         string          `json:"reason,omitempty"`
}

// ReserveStockRequest body para POST /api/inventory/reserve, /release y /ship.
type ReserveStockRequest struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Qty        decimal.Decimal `json:"qty"`
	Reference  string          `json:"reference,omitempty"`
}

// StockItemResponse estado de un saldo después de una mutación.
type StockItemResponse struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	OnHand     decimal.Decimal `json:"on_hand"`
	Reserved   decimal.Decimal `json:"reserved"`
	Available  decimal.Decimal `json:"available"`
	Version    int             `json:"version"`
}

// SnapshotQuery filtros para GET /api/inventory/snapshot.
type SnapshotQuery struct {
	ProductID  string `query:"product_id"`
	LocationID string `query:"location_id"`
}

// MovementsQuery filtros para GET /api/inventory/movements.
// Se exige product_id o location_id; From/To acotan por fecha.
type MovementsQuery struct {
	ProductID  string     `query:"product_id"`
	LocationID string     `query:"location_id"`
	From       *time.Time `query:"from"`
	To         *time.Time `query:"to"`
	Limit      int        `query:"limit"`
	Offset     int        `query:"offset"`
}

// MovementResponse un registro del log de movimientos.
type MovementResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	FromLocationID *string         `json:"from_location_id,omitempty"`
	ToLocationID   *string         `json:"to_location_id,omitempty"`
	Qty            decimal.Decimal `json:"qty"`
	Type           string          `json:"type"`
	Reason         string          `json:"reason,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
