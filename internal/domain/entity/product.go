package entity

import "time"

// Product representa un producto o SKU del catálogo.
// El saldo por ubicación vive en StockItem; aquí solo datos de referencia.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Unit        string // unidad de medida, ej. "pcs"
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
