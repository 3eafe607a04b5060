package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InventoryQueryUseCase consultas de solo lectura sobre saldos y
// movimientos (fuera de transacción, repos atados al pool).
type InventoryQueryUseCase struct {
	stockRepo repository.StockItemRepository
	movRepo   repository.MovementRepository
}

// NewInventoryQueryUseCase construye el caso de uso.
func NewInventoryQueryUseCase(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// Snapshot devuelve los saldos actuales, con filtros opcionales por
// producto y ubicación.
func (uc *InventoryQueryUseCase) Snapshot(_ context.Context, q dto.SnapshotQuery) ([]dto.StockItemResponse, error) {
	items, err := uc.stockRepo.List(q.ProductID, q.LocationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToStockItemResponse(it))
	}
	return out, nil
}

// Movements lista el log de movimientos por producto o por ubicación.
// Se exige exactamente uno de los dos filtros.
func (uc *InventoryQueryUseCase) Movements(_ context.Context, q dto.MovementsQuery) ([]dto.MovementResponse, error) {
	if (q.ProductID == "") == (q.LocationID == "") {
		return nil, domain.ErrInvalidInput
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	var (
		list []*entity.Movement
		err  error
	)
	if q.ProductID != "" {
		list, err = uc.movRepo.ListByProduct(q.ProductID, q.From, q.To, q.Limit, q.Offset)
	} else {
		list, err = uc.movRepo.ListByLocation(q.LocationID, q.From, q.To, q.Limit, q.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			FromLocationID: m.FromLocationID,
			ToLocationID:   m.ToLocationID,
			Qty:            m.Qty,
			Type:           m.Type,
			Reason:         m.Reason,
			Reference:      m.Reference,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out, nil
}

// ToStockItemResponse mapea la entidad al DTO de respuesta.
func ToStockItemResponse(it *entity.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		ProductID:  it.ProductID,
		LocationID: it.LocationID,
		OnHand:     it.OnHand,
		Reserved:   it.Reserved,
		Available:  it.Available(),
		Version:    it.Version,
	}
}
