package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa el saldo de un producto en una ubicación.
// La pareja (ProductID, LocationID) es única; la fila se crea de forma
// perezosa con OnHand=0, Reserved=0, Version=1 la primera vez que una
// operación del ledger la referencia.
//
// Invariantes en reposo: OnHand >= 0 y 0 <= Reserved <= OnHand.
// Version sube exactamente en 1 por cada mutación confirmada.
type StockItem struct {
	ID         string
	ProductID  string
	LocationID string
	OnHand     decimal.Decimal
	Reserved   decimal.Decimal
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Available devuelve la cantidad que aún puede reservarse o moverse:
// OnHand - Reserved.
func (s *StockItem) Available() decimal.Decimal {
	return s.OnHand.Sub(s.Reserved)
}
