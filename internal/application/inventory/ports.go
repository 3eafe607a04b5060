package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger:
// Commit si fn retorna nil, Rollback si retorna error o el ctx se cancela.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// SnapshotReportRow una fila del reporte PDF de existencias.
type SnapshotReportRow struct {
	SKU          string
	ProductName  string
	LocationCode string
	OnHand       decimal.Decimal
	Reserved     decimal.Decimal
	Available    decimal.Decimal
}

// SnapshotPDFGenerator genera la representación PDF del snapshot de
// existencias (puerto implementado en infrastructure/pdf).
type SnapshotPDFGenerator interface {
	GenerateSnapshotPDF(ctx context.Context, rows []SnapshotReportRow) ([]byte, error)
}
