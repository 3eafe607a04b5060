package purchasing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appinventory "github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReceiveOrderUseCase aplica la recepción (parcial o total) de una orden
// de compra. Todo el request corre en una sola transacción: por cada
// línea solicitada sube qty_received y ajusta el stock vía el ledger
// (AdjustInTx); si alguna línea falla, ninguna queda aplicada.
type ReceiveOrderUseCase struct {
	txRunner TxRunner
	ledger   *appinventory.StockLedgerUseCase
}

// NewReceiveOrderUseCase construye el caso de uso.
func NewReceiveOrderUseCase(txRunner TxRunner, ledger *appinventory.StockLedgerUseCase) *ReceiveOrderUseCase {
	return &ReceiveOrderUseCase{txRunner: txRunner, ledger: ledger}
}

// Receive recibe cantidades contra líneas de la orden poID.
// Si tras aplicar todas las líneas la orden queda completa, pasa a RECEIVED.
func (uc *ReceiveOrderUseCase) Receive(ctx context.Context, poID string, lines []dto.ReceiveLineRequest) error {
	if poID == "" || len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.LineID == "" || l.LocationID == "" || !l.Qty.IsPositive() {
			return domain.ErrInvalidInput
		}
	}
	return uc.txRunner.RunPurchase(ctx, func(
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
		poRepo repository.PurchaseOrderRepository,
	) error {
		// Bloquea la orden: dos recepciones concurrentes sobre la misma
		// orden se serializan aquí y no pierden qty_received.
		po, err := poRepo.GetForUpdate(poID)
		if err != nil {
			return err
		}
		if po == nil {
			return fmt.Errorf("%w: orden %s", domain.ErrNotFound, poID)
		}
		if po.IsClosed() {
			return fmt.Errorf("%w: estado %s", domain.ErrOrderClosed, po.Status)
		}

		for _, l := range lines {
			line, err := poRepo.GetLineByID(l.LineID)
			if err != nil {
				return err
			}
			if line == nil || line.PurchaseOrderID != po.ID {
				return fmt.Errorf("%w: %s", domain.ErrInvalidLine, l.LineID)
			}
			if l.Qty.GreaterThan(line.Remaining()) {
				return fmt.Errorf("%w: pendiente %s, recibido %s en línea %s",
					domain.ErrOverReceipt, line.Remaining(), l.Qty, line.ID)
			}
			line.QtyReceived = line.QtyReceived.Add(l.Qty)
			if err := poRepo.UpdateLineReceived(line.ID, line.QtyReceived); err != nil {
				return err
			}
			// Entrada de stock en la misma transacción que la línea
			if _, err := uc.ledger.AdjustInTx(stockRepo, movRepo, appinventory.AdjustInput{
				ProductID:  line.ProductID,
				LocationID: l.LocationID,
				Delta:      l.Qty,
				Reason:     "PO " + po.ID,
			}); err != nil {
				return err
			}
		}

		// Relee todas las líneas: si ya no queda nada pendiente, la
		// orden pasa a RECEIVED dentro de la misma transacción.
		all, err := poRepo.ListLines(po.ID)
		if err != nil {
			return err
		}
		for _, ln := range all {
			if !ln.IsComplete() {
				return nil
			}
		}
		return poRepo.UpdateStatus(po.ID, entity.POStatusReceived)
	})
}
