package purchasing_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/purchasing"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el flujo de compras. El fakePurchaseTxRunner
// emula la transacción de recepción: todo el estado (orden, líneas,
// stock, movimientos) confirma o se revierte junto.
// ──────────────────────────────────────────────────────────────────────────────

type purchaseState struct {
	stock     map[string]*entity.StockItem // key: productID|locationID
	movements []*entity.Movement
	orders    map[string]*entity.PurchaseOrder
	lines     map[string]*entity.PurchaseOrderLine
	lineOrder []string // orden de inserción para ListLines estable
}

func newPurchaseState() *purchaseState {
	return &purchaseState{
		stock:  make(map[string]*entity.StockItem),
		orders: make(map[string]*entity.PurchaseOrder),
		lines:  make(map[string]*entity.PurchaseOrderLine),
	}
}

func (s *purchaseState) clone() *purchaseState {
	c := newPurchaseState()
	for k, v := range s.stock {
		copia := *v
		c.stock[k] = &copia
	}
	for k, v := range s.orders {
		copia := *v
		c.orders[k] = &copia
	}
	for k, v := range s.lines {
		copia := *v
		c.lines[k] = &copia
	}
	c.movements = append([]*entity.Movement(nil), s.movements...)
	c.lineOrder = append([]string(nil), s.lineOrder...)
	return c
}

func stockKey(productID, locationID string) string {
	return productID + "|" + locationID
}

type fakeStockRepo struct{ state *purchaseState }

var _ repository.StockItemRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) Get(productID, locationID string) (*entity.StockItem, error) {
	if it, ok := r.state.stock[stockKey(productID, locationID)]; ok {
		copia := *it
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) EnsureAndLock(productID, locationID string) (*entity.StockItem, error) {
	key := stockKey(productID, locationID)
	if it, ok := r.state.stock[key]; ok {
		copia := *it
		return &copia, nil
	}
	it := &entity.StockItem{
		ID: key, ProductID: productID, LocationID: locationID, Version: 1,
	}
	r.state.stock[key] = it
	copia := *it
	return &copia, nil
}

func (r *fakeStockRepo) Save(item *entity.StockItem) error {
	copia := *item
	r.state.stock[stockKey(item.ProductID, item.LocationID)] = &copia
	return nil
}

func (r *fakeStockRepo) List(productID, locationID string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.state.stock {
		if productID != "" && it.ProductID != productID {
			continue
		}
		if locationID != "" && it.LocationID != locationID {
			continue
		}
		copia := *it
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeStockRepo) ListDetailed(string, string) ([]*repository.StockItemDetail, error) {
	return nil, nil
}

type fakeMovementRepo struct{ state *purchaseState }

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	copia := *m
	r.state.movements = append(r.state.movements, &copia)
	return nil
}

func (r *fakeMovementRepo) GetByID(string) (*entity.Movement, error) { return nil, nil }

func (r *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) ListByLocation(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

type fakePORepo struct{ state *purchaseState }

var _ repository.PurchaseOrderRepository = (*fakePORepo)(nil)

func (r *fakePORepo) Create(po *entity.PurchaseOrder) error {
	copia := *po
	r.state.orders[po.ID] = &copia
	return nil
}

func (r *fakePORepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	if po, ok := r.state.orders[id]; ok {
		copia := *po
		return &copia, nil
	}
	return nil, nil
}

func (r *fakePORepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

func (r *fakePORepo) UpdateStatus(id, status string) error {
	if po, ok := r.state.orders[id]; ok {
		po.Status = status
	}
	return nil
}

func (r *fakePORepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.state.orders {
		copia := *po
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakePORepo) CreateLine(line *entity.PurchaseOrderLine) error {
	copia := *line
	r.state.lines[line.ID] = &copia
	r.state.lineOrder = append(r.state.lineOrder, line.ID)
	return nil
}

func (r *fakePORepo) GetLineByID(id string) (*entity.PurchaseOrderLine, error) {
	if l, ok := r.state.lines[id]; ok {
		copia := *l
		return &copia, nil
	}
	return nil, nil
}

func (r *fakePORepo) UpdateLineReceived(lineID string, qtyReceived decimal.Decimal) error {
	if l, ok := r.state.lines[lineID]; ok {
		l.QtyReceived = qtyReceived
	}
	return nil
}

func (r *fakePORepo) ListLines(purchaseOrderID string) ([]*entity.PurchaseOrderLine, error) {
	var out []*entity.PurchaseOrderLine
	for _, id := range r.state.lineOrder {
		l := r.state.lines[id]
		if l.PurchaseOrderID == purchaseOrderID {
			copia := *l
			out = append(out, &copia)
		}
	}
	return out, nil
}

// fakePurchaseTxRunner ejecuta fn bajo mutex y revierte el estado
// completo si fn retorna error.
type fakePurchaseTxRunner struct {
	mu    sync.Mutex
	state *purchaseState
}

var _ purchasing.TxRunner = (*fakePurchaseTxRunner)(nil)

func newFakePurchaseTxRunner() *fakePurchaseTxRunner {
	return &fakePurchaseTxRunner{state: newPurchaseState()}
}

func (r *fakePurchaseTxRunner) RunPurchase(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	poRepo repository.PurchaseOrderRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	backup := r.state.clone()
	err := fn(
		&fakeStockRepo{state: r.state},
		&fakeMovementRepo{state: r.state},
		&fakePORepo{state: r.state},
	)
	if err != nil {
		*r.state = *backup
		return err
	}
	return nil
}
