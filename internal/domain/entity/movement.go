package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual (+/-)
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida (despacho de reservado)
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones
	MovementTypeRESERVE    = "RESERVE"    // apartado contra despacho futuro
	MovementTypeRELEASE    = "RELEASE"    // liberación de un apartado
)

// Movement es el registro de auditoría de un evento que afecta saldos.
// Es append-only: el ledger lo inserta en la misma transacción que la
// mutación del StockItem y nunca lo modifica ni lo borra.
//
// Qty es siempre estrictamente positiva; la dirección la dan
// FromLocationID / ToLocationID (en un ADJUSTMENT el signo del delta
// decide cuál de los dos se llena).
type Movement struct {
	ID             string
	ProductID      string
	FromLocationID *string
	ToLocationID   *string
	Qty            decimal.Decimal
	Type           string
	Reason         string
	Reference      string
	CreatedAt      time.Time
}
