package purchasing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PurchaseOrderUseCase CRUD de órdenes de compra y sus líneas.
// La recepción vive aparte en ReceiveOrderUseCase.
type PurchaseOrderUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{poRepo: poRepo, supplierRepo: supplierRepo, productRepo: productRepo}
}

// Create crea una orden en estado OPEN para un proveedor existente.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, in.SupplierID)
	}
	po := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Status:     entity.POStatusOpen,
		CreatedAt:  time.Now(),
	}
	if err := uc.poRepo.Create(po); err != nil {
		return nil, err
	}
	return toOrderResponse(po, nil), nil
}

// AddLine agrega una línea a una orden editable (DRAFT u OPEN).
func (uc *PurchaseOrderUseCase) AddLine(poID string, in dto.AddOrderLineRequest) (*dto.OrderLineResponse, error) {
	if poID == "" || in.ProductID == "" || !in.QtyOrdered.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	po, err := uc.poRepo.GetByID(poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, poID)
	}
	if !po.IsEditable() {
		return nil, fmt.Errorf("%w: estado %s", domain.ErrOrderClosed, po.Status)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	line := &entity.PurchaseOrderLine{
		ID:              uuid.New().String(),
		PurchaseOrderID: po.ID,
		ProductID:       product.ID,
		QtyOrdered:      in.QtyOrdered,
		QtyReceived:     decimal.Zero,
		UnitCost:        in.UnitCost,
	}
	if err := uc.poRepo.CreateLine(line); err != nil {
		return nil, err
	}
	resp := toLineResponse(line)
	return &resp, nil
}

// GetByID devuelve la orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(poID string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, poID)
	}
	lines, err := uc.poRepo.ListLines(po.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(po, lines), nil
}

// List lista órdenes con paginación (sin líneas).
func (uc *PurchaseOrderUseCase) List(limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.poRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toOrderResponse(po, nil))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Cancel cancela una orden aún editable. RECEIVED y CANCELLED son
// terminales: cancelar dos veces retorna ErrOrderClosed.
func (uc *PurchaseOrderUseCase) Cancel(poID string) error {
	po, err := uc.poRepo.GetByID(poID)
	if err != nil {
		return err
	}
	if po == nil {
		return fmt.Errorf("%w: orden %s", domain.ErrNotFound, poID)
	}
	if !po.IsEditable() {
		return fmt.Errorf("%w: estado %s", domain.ErrOrderClosed, po.Status)
	}
	return uc.poRepo.UpdateStatus(po.ID, entity.POStatusCancelled)
}

func toOrderResponse(po *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		Status:     po.Status,
		CreatedAt:  po.CreatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, toLineResponse(l))
	}
	return resp
}

func toLineResponse(l *entity.PurchaseOrderLine) dto.OrderLineResponse {
	return dto.OrderLineResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		QtyOrdered:  l.QtyOrdered,
		QtyReceived: l.QtyReceived,
		UnitCost:    l.UnitCost,
	}
}
