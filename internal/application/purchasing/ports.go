package purchasing

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita la recepción: stock y movimientos (para el
// ledger) más órdenes de compra. Un solo Commit/Rollback cubre la
// recepción completa: las líneas y los ajustes de stock confirman
// juntos o ninguno.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
		poRepo repository.PurchaseOrderRepository,
	) error) error
}
