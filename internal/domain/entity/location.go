package entity

import "time"

// Location representa una bodega, sucursal o celda de almacenamiento.
// La pareja (producto, ubicación) forma la llave del saldo.
type Location struct {
	ID        string
	Code      string // código único
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
